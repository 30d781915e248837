package services

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/mollybeach/honeyvaiult/internal/models"
)

type warningsKey struct{}

// Warnings collects the non-fatal findings of one request. Handlers read it
// after the service call and attach the result to the response body.
type Warnings struct {
	mu    sync.Mutex
	items []models.Warning
}

func NewWarningContext(ctx context.Context) (context.Context, *Warnings) {
	w := &Warnings{}
	return context.WithValue(ctx, warningsKey{}, w), w
}

// Warnf records a formatted warning on the request in ctx. Calls without a
// collector are dropped and identical warnings are kept once.
func Warnf(ctx context.Context, code models.WarningCode, format string, args ...any) {
	w, _ := ctx.Value(warningsKey{}).(*Warnings)
	if w == nil {
		return
	}
	item := models.Warning{Code: code, Message: fmt.Sprintf(format, args...)}

	w.mu.Lock()
	defer w.mu.Unlock()
	if !slices.Contains(w.items, item) {
		w.items = append(w.items, item)
	}
}

// List returns a snapshot of the collected warnings, nil when there are none
func (w *Warnings) List() []models.Warning {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.items)
}

func (w *Warnings) Has(code models.WarningCode) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.ContainsFunc(w.items, func(item models.Warning) bool { return item.Code == code })
}
