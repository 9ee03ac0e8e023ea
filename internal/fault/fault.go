// Package fault defines the closed set of failure kinds shared by the
// decoding, transform and view packages.
package fault

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind uint8

const (
	KindNone Kind = iota
	KindMalformedInput
	KindUnsupportedFormat
	KindInsufficientSamples
	KindInvalidLevels
	KindInvalidDimensions
	KindChannelIndex
	KindInvariant
)

var (
	ErrMalformedInput      = errors.New("malformed input")
	ErrUnsupportedFormat   = errors.New("unsupported sample format")
	ErrInsufficientSamples = errors.New("insufficient samples")
	ErrInvalidLevels       = errors.New("invalid number of levels")
	ErrInvalidDimensions   = errors.New("invalid dimensions")
	ErrChannelIndex        = errors.New("channel index out of range")
	ErrInvariant           = errors.New("internal invariant violated")
)

var sentinels = map[Kind]error{
	KindMalformedInput:      ErrMalformedInput,
	KindUnsupportedFormat:   ErrUnsupportedFormat,
	KindInsufficientSamples: ErrInsufficientSamples,
	KindInvalidLevels:       ErrInvalidLevels,
	KindInvalidDimensions:   ErrInvalidDimensions,
	KindChannelIndex:        ErrChannelIndex,
	KindInvariant:           ErrInvariant,
}

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMalformedInput:
		return "malformed-input"
	case KindUnsupportedFormat:
		return "unsupported-format"
	case KindInsufficientSamples:
		return "insufficient-samples"
	case KindInvalidLevels:
		return "invalid-levels"
	case KindInvalidDimensions:
		return "invalid-dimensions"
	case KindChannelIndex:
		return "channel-index"
	case KindInvariant:
		return "invariant"
	default:
		return "none"
	}
}

// Error is a failure of a known kind with a detail message.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	base := e.Unwrap()
	if base == nil {
		return e.Detail
	}
	if e.Detail == "" {
		return base.Error()
	}
	return fmt.Sprintf("%s: %s", base.Error(), e.Detail)
}

// Unwrap returns the sentinel for the error's kind so errors.Is works
// against the package-level Err values.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return sentinels[e.Kind]
}

// Newf builds an *Error of kind k.
func Newf(k Kind, format string, args ...any) error {
	return &Error{Kind: k, Detail: fmt.Sprintf(format, args...)}
}

// KindOf reports the kind carried by err, or KindNone.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	for k, s := range sentinels {
		if errors.Is(err, s) {
			return k
		}
	}
	return KindNone
}
