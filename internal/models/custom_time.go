package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// maturityLayouts are tried in order when decoding a MaturityDate
var maturityLayouts = []string{time.RFC3339, "2006-01-02"}

// MaturityDate is an RWA product's maturity. It accepts RFC3339 timestamps or
// plain "YYYY-MM-DD" dates; an empty string or null means no fixed term.
type MaturityDate struct {
	time.Time
}

// UnmarshalText parses the accepted layouts, so the type also works in query
// strings and form fields
func (m *MaturityDate) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" {
		m.Time = time.Time{}
		return nil
	}
	for _, layout := range maturityLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			m.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("maturity %q must be RFC3339 or YYYY-MM-DD", s)
}

func (m *MaturityDate) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		m.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("maturity must be a string: %w", err)
	}
	return m.UnmarshalText([]byte(s))
}

func (m MaturityDate) MarshalJSON() ([]byte, error) {
	if m.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(m.Time)
}

// Ptr returns the maturity as stored in RWA metadata: nil when there is none
func (m MaturityDate) Ptr() *time.Time {
	if m.IsZero() {
		return nil
	}
	t := m.Time
	return &t
}
