package catalog

import (
	"fmt"
	"strings"
)

// UnknownCallError is returned when a logical call name is not registered in
// the catalog.
type UnknownCallError struct {
	Name string
}

func (e *UnknownCallError) Error() string {
	return fmt.Sprintf("unknown call %q", e.Name)
}

// MissingParameterError names a required parameter the caller did not supply.
type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing required parameter %q", e.Name)
}

// InvalidParameterValueError cites the offending value and the allowed set.
type InvalidParameterValueError struct {
	Name    string
	Value   string
	Allowed []string
}

func (e *InvalidParameterValueError) Error() string {
	return fmt.Sprintf("invalid value %q for parameter %q, allowed: %s",
		e.Value, e.Name, strings.Join(e.Allowed, ", "))
}

// InvalidSeasonFormatError is returned for a season parameter that is neither
// a 4-digit year nor an 8-digit season range of consecutive years.
type InvalidSeasonFormatError struct {
	Value string
}

func (e *InvalidSeasonFormatError) Error() string {
	return fmt.Sprintf("invalid season format %q", e.Value)
}
