package cli

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

var ErrConflictingFlags = errors.New("conflicting flags")

// opt returns a pointer to v when flag was given, and nil otherwise.
func opt[T any](isSet func(string) bool, flag string, v T) *T {
	if !isSet(flag) {
		return nil
	}
	return lo.ToPtr(v)
}

// switchFlag folds a pair of opposite boolean flags such as --public and
// --private into one optional value.
func switchFlag(onName string, on bool, offName string, off bool) (*bool, error) {
	switch {
	case on && off:
		return nil, fmt.Errorf("%w: %s and %s cannot both be set", ErrConflictingFlags, onName, offName)
	case on:
		return lo.ToPtr(true), nil
	case off:
		return lo.ToPtr(false), nil
	}
	return nil, nil
}
