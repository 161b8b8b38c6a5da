// Package selection tracks which spending categories are active on the
// dashboard.
package selection

import (
	"errors"
	"fmt"
)

// MinSelected is the smallest number of categories that may be active.
const MinSelected = 2

var (
	// ErrMinSelection is returned when a toggle would leave fewer than
	// MinSelected categories active. Its text is shown to the user as-is.
	ErrMinSelection = errors.New("Select at least two categories at all times.") //nolint:staticcheck // user-facing sentence

	// ErrUnknownCategory is returned when toggling a category that is not in
	// the fixed list.
	ErrUnknownCategory = errors.New("unknown category")
)

// Set is the set of active categories over a fixed, ordered category list.
// It is created with every category active and changed only through Toggle.
type Set struct {
	categories []string
	on         map[string]bool
}

// New returns a Set with every category selected.
func New(categories []string) *Set {
	s := &Set{
		categories: append([]string(nil), categories...),
		on:         make(map[string]bool, len(categories)),
	}
	for _, c := range categories {
		s.on[c] = true
	}
	return s
}

// Toggle flips a category's membership. Deselecting is refused with
// ErrMinSelection when it would drop the set below MinSelected; the set is
// left unchanged in that case.
func (s *Set) Toggle(cat string) error {
	on, known := s.on[cat]
	if !known {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, cat)
	}
	if on {
		if s.Len() <= MinSelected {
			return ErrMinSelection
		}
		s.on[cat] = false
		return nil
	}
	s.on[cat] = true
	return nil
}

// Has reports whether a category is active.
func (s *Set) Has(cat string) bool {
	return s.on[cat]
}

// Len returns the number of active categories.
func (s *Set) Len() int {
	n := 0
	for _, on := range s.on {
		if on {
			n++
		}
	}
	return n
}

// Selected returns the active categories in fixed category order.
func (s *Set) Selected() []string {
	out := make([]string, 0, len(s.categories))
	for _, c := range s.categories {
		if s.on[c] {
			out = append(out, c)
		}
	}
	return out
}

// All returns the full category list in display order.
func (s *Set) All() []string {
	return append([]string(nil), s.categories...)
}
