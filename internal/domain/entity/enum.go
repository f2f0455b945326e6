// Package entity contains the core business objects of the project.
package entity

import "hivewatch/internal/errors"

// ErrUnknownEnumValue is returned by the Parse functions for tags outside the closed set.
var ErrUnknownEnumValue = errors.New("unknown enum value")

type enumValue interface {
	~string
	IsValid() bool
}

func parseEnum[T enumValue](raw, kind string) (T, error) {
	v := T(raw)
	if !v.IsValid() {
		var zero T

		return zero, errors.Wrapf(ErrUnknownEnumValue, "%s %q", kind, raw)
	}

	return v, nil
}
