package fault

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorUnwrapsToSentinel(t *testing.T) {
	err := Newf(KindInsufficientSamples, "want %d points from %d samples", 10, 4)
	if !errors.Is(err, ErrInsufficientSamples) {
		t.Fatalf("errors.Is(%v, ErrInsufficientSamples) = false", err)
	}
	if errors.Is(err, ErrInvalidLevels) {
		t.Fatal("expected error not to match ErrInvalidLevels")
	}
	want := "insufficient samples: want 10 points from 4 samples"
	if got := err.Error(); got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestKindOfWrappedError(t *testing.T) {
	base := Newf(KindMalformedInput, "1 byte")
	wrapped := fmt.Errorf("loading song.raw: %w", base)
	if got := KindOf(wrapped); got != KindMalformedInput {
		t.Fatalf("KindOf() = %v, want %v", got, KindMalformedInput)
	}
	if got := KindOf(fmt.Errorf("ctx: %w", ErrUnsupportedFormat)); got != KindUnsupportedFormat {
		t.Fatalf("KindOf(sentinel) = %v, want %v", got, KindUnsupportedFormat)
	}
	if got := KindOf(errors.New("other")); got != KindNone {
		t.Fatalf("KindOf(other) = %v, want %v", got, KindNone)
	}
}
