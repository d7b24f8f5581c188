package omnifolio

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by a load matches exactly one of them with errors.Is.
var (
	// ErrIO is a file missing or unreadable.
	ErrIO = errors.New("io error")
	// ErrFormat is a JSON or CSV file structurally wrong at the top level.
	ErrFormat = errors.New("format error")
	// ErrValidation is a required field missing or of the wrong type.
	ErrValidation = errors.New("validation error")
	// ErrInvalidValue is a field present but outside its allowed set.
	ErrInvalidValue = errors.New("invalid value")
	// ErrDuplicateID is an identifier collision within a scope.
	ErrDuplicateID = errors.New("duplicate identifier")
)

// FileError reports a failure to read or parse a whole file.
type FileError struct {
	Kind error // ErrIO or ErrFormat
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%v in %q: %v", e.Kind, e.Path, e.Err)
}

func (e *FileError) Is(target error) bool { return target == e.Kind }
func (e *FileError) Unwrap() error        { return e.Err }

// FieldError reports an invalid field in a JSON object or a CSV row.
type FieldError struct {
	Kind    error  // ErrValidation or ErrInvalidValue
	Path    string // file containing the record
	Field   string // field name, or column for CSV rows
	Context string // what was being read, e.g. "transaction #3"
	Err     error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%v in %q: %s: field %q: %v", e.Kind, e.Path, e.Context, e.Field, e.Err)
}

func (e *FieldError) Is(target error) bool { return target == e.Kind }
func (e *FieldError) Unwrap() error        { return e.Err }

// DuplicateIDError reports two nodes declaring the same identifier.
type DuplicateIDError struct {
	Scope  string // "account" or "asset"
	ID     string
	First  string // directory of the first declaration
	Second string // directory of the conflicting declaration
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("%v: %s %q is declared in %q and %q", ErrDuplicateID, e.Scope, e.ID, e.First, e.Second)
}

func (e *DuplicateIDError) Is(target error) bool { return target == ErrDuplicateID }

func ioError(path string, err error) error { return &FileError{ErrIO, path, err} }

func formatError(path string, format string, args ...any) error {
	return &FileError{ErrFormat, path, fmt.Errorf(format, args...)}
}
