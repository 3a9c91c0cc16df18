package record

import "fmt"

// MalformedError is returned when a response body cannot be parsed in the
// format the call declared (JSON or CSV).
type MalformedError struct {
	Err error
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed response: %v", e.Err)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// ShapeError is returned when a declared nested path segment is missing from
// the actual payload, or the payload does not have the declared shape.
type ShapeError struct {
	Path string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("unexpected response shape at %q", e.Path)
}

// MalformedArchiveError is returned when archive bytes cannot be opened as a
// zip file.
type MalformedArchiveError struct {
	Err error
}

func (e *MalformedArchiveError) Error() string {
	return fmt.Sprintf("malformed archive: %v", e.Err)
}

func (e *MalformedArchiveError) Unwrap() error { return e.Err }

// MissingMemberError is returned when the expected member file is not present
// in a fetched archive.
type MissingMemberError struct {
	Name string
}

func (e *MissingMemberError) Error() string {
	return fmt.Sprintf("archive member %q not found", e.Name)
}
