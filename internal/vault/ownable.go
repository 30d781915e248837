package vault

import (
	"github.com/mollybeach/honeyvaiult/internal/models"
)

// ownable is single-step ownership shared by the factory and its vaults
type ownable struct {
	self  models.Address
	owner models.Address
	emit  Emitter
}

func (o *ownable) Owner() models.Address {
	return o.owner
}

func (o *ownable) checkOwner(caller models.Address) error {
	if caller != o.owner {
		return ErrUnauthorized
	}
	return nil
}

// TransferOwnership hands control to newOwner. Only the current owner may call it.
func (o *ownable) TransferOwnership(caller, newOwner models.Address) error {
	if err := o.checkOwner(caller); err != nil {
		return err
	}
	if newOwner.IsZero() {
		return ErrInvalidOwner
	}
	o.setOwner(newOwner)
	return nil
}

func (o *ownable) setOwner(newOwner models.Address) {
	previous := o.owner
	o.owner = newOwner
	o.emit.Emit(OwnershipTransferred{Source: o.self, PreviousOwner: previous, NewOwner: newOwner})
}
