package nbt

import "errors"

var (
	ErrDecoding = errors.New("nbt decoding error")
	ErrEncoding = errors.New("nbt encoding error")
)
