// Package catalog declares the static mapping from logical call names to URL
// templates, parameter constraints and response shapes, and builds concrete
// request URLs from caller-supplied parameters. Catalogs are declared at
// build time and immutable afterwards.
package catalog

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/tonyprice/nhldata/record"
)

// Kind is the parameter type used for validation and normalization.
type Kind int

const (
	// String passes through, checked against Allowed when declared.
	String Kind = iota
	// Season accepts "2023" or "20232024" and normalizes to the 8-digit
	// season ID the NHL APIs expect.
	Season
	// GameType accepts "regular" or "playoffs" and normalizes to the NHL
	// API game-type codes 2 and 3.
	GameType
	// Date accepts YYYY-MM-DD or the literal "now".
	Date
	// Int accepts any decimal integer.
	Int
	// Year accepts a single 4-digit year and bounds it between MinYear and
	// the year before the current one, the way MoneyPuck publishes files.
	Year
)

// Where says whether a parameter substitutes into the path or joins the
// query string.
type Where int

const (
	InPath Where = iota
	InQuery
)

// Param constrains one parameter of a CallSpec.
type Param struct {
	Name     string
	Kind     Kind
	In       Where
	Required bool
	// Allowed is the exact, case-sensitive value set; empty means any.
	Allowed []string
	// Default is used verbatim when the caller omits the parameter. It is
	// a trusted catalog value and skips Kind validation, so sentinel path
	// segments like "current" or "now" can be declared.
	Default string
	// MinYear bounds Year parameters from below.
	MinYear int
}

// CallSpec is the static description of one logical operation: its path
// template, parameters and declared response shape.
type CallSpec struct {
	Name   string
	Path   string
	Params []Param
	// Shape and DataPath drive JSON normalization for API calls.
	Shape    record.Shape
	DataPath []string
	// CollapseDefaults collapses localized {"default": ...} fields on every
	// emitted Record.
	CollapseDefaults bool
	// Columns declares per-column CSV types for file calls.
	Columns map[string]record.ColumnType
}

// Catalog is a registry of CallSpecs keyed by logical name.
type Catalog struct {
	calls map[string]*CallSpec
}

// New builds a catalog from the given specs. Duplicate names are a
// programming error and panic at startup.
func New(specs ...CallSpec) *Catalog {
	c := &Catalog{calls: make(map[string]*CallSpec, len(specs))}
	for i := range specs {
		spec := specs[i]
		if _, ok := c.calls[spec.Name]; ok {
			panic(fmt.Sprintf("catalog: duplicate call %q", spec.Name))
		}
		c.calls[spec.Name] = &spec
	}
	return c
}

// Lookup returns the CallSpec for a logical name.
func (c *Catalog) Lookup(name string) (*CallSpec, error) {
	spec, ok := c.calls[name]
	if !ok {
		return nil, &UnknownCallError{Name: name}
	}
	return spec, nil
}

// Build validates params against the spec and produces the relative URL, a
// fully substituted path plus encoded query string. It is a pure function of
// the spec and the parameter set.
func (s *CallSpec) Build(params map[string]string) (string, error) {
	path := s.Path
	query := url.Values{}

	for _, p := range s.Params {
		value, ok := params[p.Name]
		if !ok || value == "" {
			if p.Required && p.Default == "" {
				return "", &MissingParameterError{Name: p.Name}
			}
			if p.Default == "" {
				continue
			}
			value = p.Default
		} else {
			normalized, err := normalize(p, value)
			if err != nil {
				return "", err
			}
			value = normalized
		}

		switch p.In {
		case InPath:
			path = strings.ReplaceAll(path, "{"+p.Name+"}", value)
		case InQuery:
			query.Set(p.Name, value)
		}
	}

	if i := strings.IndexByte(path, '{'); i >= 0 {
		return "", fmt.Errorf("call %q: unresolved placeholder in %q", s.Name, path)
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return path, nil
}

func normalize(p Param, value string) (string, error) {
	switch p.Kind {
	case Season:
		return NormalizeSeason(value)
	case GameType:
		switch value {
		case "regular":
			return "2", nil
		case "playoffs":
			return "3", nil
		}
		return "", &InvalidParameterValueError{Name: p.Name, Value: value, Allowed: []string{"regular", "playoffs"}}
	case Date:
		if value != "now" {
			if _, err := time.Parse("2006-01-02", value); err != nil {
				return "", &InvalidParameterValueError{Name: p.Name, Value: value, Allowed: []string{"now", "YYYY-MM-DD"}}
			}
		}
	case Int:
		if _, err := strconv.Atoi(value); err != nil {
			return "", &InvalidParameterValueError{Name: p.Name, Value: value, Allowed: []string{"integer"}}
		}
	case Year:
		y, err := strconv.Atoi(value)
		if err != nil || len(value) != 4 {
			return "", &InvalidSeasonFormatError{Value: value}
		}
		maxYear := time.Now().Year() - 1
		if y < p.MinYear || y > maxYear {
			return "", &InvalidParameterValueError{
				Name:    p.Name,
				Value:   value,
				Allowed: []string{fmt.Sprintf("%d..%d", p.MinYear, maxYear)},
			}
		}
	}

	if len(p.Allowed) > 0 && !slices.Contains(p.Allowed, value) {
		return "", &InvalidParameterValueError{Name: p.Name, Value: value, Allowed: p.Allowed}
	}
	return value, nil
}

// NormalizeSeason turns "2023" into "20232024" and accepts an 8-digit season
// whose halves are consecutive years. Only digits qualify; Atoi alone would
// let signed strings like "-123" through.
func NormalizeSeason(value string) (string, error) {
	if !allDigits(value) {
		return "", &InvalidSeasonFormatError{Value: value}
	}
	switch len(value) {
	case 4:
		start, _ := strconv.Atoi(value)
		return fmt.Sprintf("%d%d", start, start+1), nil
	case 8:
		start, _ := strconv.Atoi(value[:4])
		end, _ := strconv.Atoi(value[4:])
		if end != start+1 {
			return "", &InvalidSeasonFormatError{Value: value}
		}
		return value, nil
	}
	return "", &InvalidSeasonFormatError{Value: value}
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
