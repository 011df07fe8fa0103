package util

import "errors"

var (
	ErrInvalidRange   = errors.New("invalid range")
	ErrRangeExhausted = errors.New("range cannot supply enough distinct values")
	ErrUnknownUnit    = errors.New("unknown time unit")
)

func ErrOnly[T any](data T, err error) error {
	return err
}
