package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminated = errors.New("unterminated string")
	ErrBadHash      = errors.New("unrecognized #-form")
	ErrUnget        = errors.New("unget without intervening read")
)

type ScanErr struct {
	Err error
	Pos Pos
}

func NewScanErr(err error, pos Pos) error {
	return &ScanErr{Err: err, Pos: pos}
}

func (e *ScanErr) Unwrap() error {
	return e.Err
}

func (e *ScanErr) Error() string {
	return fmt.Sprintf("%v at %s", e.Err, e.Pos)
}
