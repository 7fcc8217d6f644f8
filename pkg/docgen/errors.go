package docgen

import (
	"errors"
	"fmt"
)

var (
	// ErrExtraction matches every *ExtractionError via errors.Is.
	ErrExtraction = errors.New("extraction failed")

	// ErrInvalidPattern is returned when the inclusion pattern does not compile.
	ErrInvalidPattern = errors.New("invalid inclusion pattern")
)

// ExtractionError reports an I/O failure that aborted a run.
type ExtractionError struct {
	// Op is the failed operation: "walk", "read" or "write".
	Op string
	// Path is the file or directory involved.
	Path string
	// Err is the underlying cause.
	Err error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction failed: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrExtraction.
func (e *ExtractionError) Is(target error) bool {
	return target == ErrExtraction
}

// Recognition outcomes for files that are not documented.
var (
	errNoPrimaryType = errors.New("no type declaration")
	errNotEnum       = errors.New("not an enum")
	errNoCapability  = errors.New("capability not declared")
	errNoVariants    = errors.New("enum is empty")
)
