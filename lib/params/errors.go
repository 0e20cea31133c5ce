package params

import "fmt"

// FileOpenError reports a path that could not be opened for reading or
// writing. It wraps the underlying filesystem error.
type FileOpenError struct {
	Path string
	Op   string // "read" or "write"
	Err  error
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("cannot open %s file %q: %v", e.Op, e.Path, e.Err)
}

func (e *FileOpenError) Unwrap() error { return e.Err }

// MalformedLineError reports an assignment line that could not be parsed,
// along with the section that was current when it was encountered.
type MalformedLineError struct {
	Section string
	Line    string
	Reason  string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("under section %q, %s: %q", e.Section, e.Reason, e.Line)
}

// KeyNotFoundError reports a get on a composite key the store does not hold.
type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("could not find key: %q", e.Key)
}

// TypeConversionError reports a stored value that does not parse as the
// requested scalar type. The raw text is carried so callers can report it.
type TypeConversionError struct {
	Key   string
	Value string
	Type  string
	Err   error
}

func (e *TypeConversionError) Error() string {
	return fmt.Sprintf("key %q: cannot convert %q to %s", e.Key, e.Value, e.Type)
}

func (e *TypeConversionError) Unwrap() error { return e.Err }
