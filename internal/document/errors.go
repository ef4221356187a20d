package document

import (
	"errors"
	"fmt"
)

// Kind classifies why a document could not be loaded.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindDecode:
		return "DecodeError"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

var (
	// ErrNotFound matches load failures where the source is missing or cannot be opened.
	ErrNotFound = errors.New("document not found")
	// ErrDecode matches load failures where the bytes are not valid UTF-8.
	ErrDecode = errors.New("document is not valid UTF-8")
)

// LoadError is returned by Load. Nothing is scanned once it occurs.
type LoadError struct {
	Kind Kind
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match a LoadError against ErrNotFound and ErrDecode.
func (e *LoadError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrDecode:
		return e.Kind == KindDecode
	}
	return false
}
