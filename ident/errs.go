package ident

import "errors"

var (
	ErrInvalidFormat  = errors.New("invalid identifier format")
	ErrSameIdentifier = errors.New("old and new identifiers are the same")
)
