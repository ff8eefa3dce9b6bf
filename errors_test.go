package citypop

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	cause := errors.New("boom")
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{"IO", ioError("open", "cities.csv", cause), "open cities.csv: boom"},
		{"IOStdin", ioError("read", "", cause), "read: boom"},
		{"Decode", decodeError("cities.csv", 7, cause), "decode cities.csv (record 7): boom"},
		{"NotFound", notFound("cities.csv"), "no matching cities found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorClassification(t *testing.T) {
	cause := errors.New("boom")
	wrapped := fmt.Errorf("searching: %w", decodeError("", 1, cause))

	if !IsKind(wrapped, KindDecode) {
		t.Error("IsKind(wrapped, KindDecode) = false")
	}
	if IsKind(wrapped, KindIO) {
		t.Error("IsKind(wrapped, KindIO) = true")
	}
	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is(wrapped, cause) = false")
	}
	if errors.Is(wrapped, ErrNotFound) {
		t.Error("decode error matched ErrNotFound")
	}
	if IsKind(cause, KindDecode) {
		t.Error("plain error classified as decode")
	}

	nf := notFound("")
	if !errors.Is(nf, ErrNotFound) {
		t.Error("errors.Is(notFound, ErrNotFound) = false")
	}
	if nf.Unwrap() != nil {
		t.Error("not-found error should carry no cause")
	}
}

func TestKindString(t *testing.T) {
	for k, want := range map[Kind]string{
		KindIO:       "io",
		KindDecode:   "decode",
		KindNotFound: "not_found",
		Kind(0):      "Kind(0)",
	} {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", uint8(k), got, want)
		}
	}
}

func TestNilError(t *testing.T) {
	var e *Error
	if e.Error() != "<nil>" {
		t.Errorf("nil Error() = %q", e.Error())
	}
	if e.Unwrap() != nil {
		t.Error("nil Unwrap() != nil")
	}
}
