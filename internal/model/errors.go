package model

import (
	"errors"
	"sort"
	"strings"
)

// ErrNotFound is returned when an operation references an unknown device id.
var ErrNotFound = errors.New("device not found")

// FieldErrors maps input field names to validation messages. It satisfies the
// error interface so validation failures travel through ordinary error
// returns; callers render the map as field-level feedback rather than
// treating it as a fault.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return strings.Join(parts, "; ")
}
