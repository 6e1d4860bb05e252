package openf1

import (
	"fmt"

	"github.com/Temutjin2k/lapla/internal/domain/types"
)

// ErrorKind classifies a failed provider call.
type ErrorKind string

const (
	KindUnavailable ErrorKind = "unavailable"
	KindNotFound    ErrorKind = "not_found"
	KindDecode      ErrorKind = "decode"
)

// ProviderError is returned by every failed gateway call.
type ProviderError struct {
	Op         string
	Kind       ErrorKind
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	msg := fmt.Sprintf("openf1 %s: %s", e.Op, e.Kind)
	if e.StatusCode > 0 {
		msg += fmt.Sprintf(" (status=%d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match the domain sentinel for the error kind.
func (e *ProviderError) Is(target error) bool {
	switch e.Kind {
	case KindUnavailable:
		return target == types.ErrProviderUnavailable
	case KindNotFound:
		return target == types.ErrNotFound
	case KindDecode:
		return target == types.ErrDecode
	}
	return false
}

func unavailable(op string, status int, err error) error {
	return &ProviderError{Op: op, Kind: KindUnavailable, StatusCode: status, Err: err}
}

func notFound(op string, format string, args ...any) error {
	return &ProviderError{Op: op, Kind: KindNotFound, Err: fmt.Errorf(format, args...)}
}

func decodeFailed(op string, err error) error {
	return &ProviderError{Op: op, Kind: KindDecode, Err: err}
}
