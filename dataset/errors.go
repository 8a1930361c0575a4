package dataset

import (
	"errors"
	"fmt"
)

// ErrLoad is the sentinel matched by every *LoadError.
var ErrLoad = errors.New("dataset: load failed")

// Operations reported in LoadError.Op.
const (
	OpOpen       = "open"
	OpDecompress = "decompress"
	OpRead       = "read"
	OpParse      = "parse"
	OpShape      = "shape"
)

// LoadError describes why a table could not be loaded.
type LoadError struct {
	Name  string
	Op    string
	cause error
}

func (e *LoadError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("load: %s: %v", e.Op, e.cause)
	}
	return fmt.Sprintf("load %s: %s: %v", e.Name, e.Op, e.cause)
}

// Is reports whether target is ErrLoad.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.cause
}

func loadError(name, op string, cause error) *LoadError {
	return &LoadError{Name: name, Op: op, cause: cause}
}
