package cataas

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/google/go-querystring/query"
)

// Filter is an image filter understood by the /cat endpoint.
type Filter string

const (
	FilterMono   Filter = "mono"
	FilterNegate Filter = "negate"
	FilterCustom Filter = "custom"
)

// Filters lists every accepted filter in display order.
var Filters = []Filter{FilterMono, FilterNegate, FilterCustom}

// Valid reports whether f is one of the known filters.
func (f Filter) Valid() bool {
	for _, known := range Filters {
		if f == known {
			return true
		}
	}

	return false
}

// PictureRequest holds the optional parameters of a custom cat picture. A nil field is left out
// of the query string; a field pointing at zero is sent as zero.
type PictureRequest struct {
	Width      *int   `url:"width,omitempty"`
	Height     *int   `url:"height,omitempty"`
	Filter     Filter `url:"filter,omitempty"`
	Blur       *int   `url:"blur,omitempty"`
	Brightness *int   `url:"brightness,omitempty"`
	Saturation *int   `url:"saturation,omitempty"`
	Lightness  *int   `url:"lightness,omitempty"`
	Hue        *int   `url:"hue,omitempty"`
	Red        *int   `url:"r,omitempty"`
	Green      *int   `url:"g,omitempty"`
	Blue       *int   `url:"b,omitempty"`
}

// Bound is the inclusive range accepted for one numeric parameter.
type Bound struct {
	Name  string
	Min   int
	Max   int
	value func(r PictureRequest) *int
}

// Bounds is the range table every numeric parameter is checked against, in option order.
var Bounds = []Bound{
	{Name: "width", Min: 1, Max: 5000, value: func(r PictureRequest) *int { return r.Width }},
	{Name: "height", Min: 1, Max: 5000, value: func(r PictureRequest) *int { return r.Height }},
	{Name: "blur", Min: 0, Max: 10, value: func(r PictureRequest) *int { return r.Blur }},
	{Name: "brightness", Min: 0, Max: 100, value: func(r PictureRequest) *int { return r.Brightness }},
	{Name: "saturation", Min: 0, Max: 100, value: func(r PictureRequest) *int { return r.Saturation }},
	{Name: "lightness", Min: 0, Max: 100, value: func(r PictureRequest) *int { return r.Lightness }},
	{Name: "hue", Min: 0, Max: 360, value: func(r PictureRequest) *int { return r.Hue }},
	{Name: "red", Min: 0, Max: 255, value: func(r PictureRequest) *int { return r.Red }},
	{Name: "green", Min: 0, Max: 255, value: func(r PictureRequest) *int { return r.Green }},
	{Name: "blue", Min: 0, Max: 255, value: func(r PictureRequest) *int { return r.Blue }},
}

// Violation describes a single rejected parameter.
type Violation struct {
	Field string
	Err   error
}

func (v Violation) Error() string {
	return fmt.Sprintf("%s: %v", v.Field, v.Err)
}

// ValidationError collects every violation found in a PictureRequest.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Error()
	}

	return "invalid picture request: " + strings.Join(msgs, "; ")
}

// Unwrap exposes the individual violations to errors.Is.
func (e *ValidationError) Unwrap() []error {
	errs := make([]error, len(e.Violations))
	for i, v := range e.Violations {
		errs[i] = v.Err
	}

	return errs
}

// Validate checks every provided field and returns a *ValidationError listing all violations.
func (r PictureRequest) Validate() error {
	var violations []Violation

	if r.Filter != "" && !r.Filter.Valid() {
		violations = append(violations, Violation{
			Field: "filter",
			Err:   fmt.Errorf("%w: %q, expected one of %s", ErrInvalidFilter, r.Filter, filterList()),
		})
	}

	for _, bound := range Bounds {
		value := bound.value(r)
		if value == nil {
			continue
		}

		if *value < bound.Min || *value > bound.Max {
			violations = append(violations, Violation{
				Field: bound.Name,
				Err:   fmt.Errorf("%w: %d not in %d-%d", ErrOutOfRange, *value, bound.Min, bound.Max),
			})
		}
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}

	return nil
}

// Empty reports whether no parameter was provided.
func (r PictureRequest) Empty() bool {
	return r == PictureRequest{}
}

// Values encodes the provided fields as query parameters.
func (r PictureRequest) Values() (url.Values, error) {
	values, err := query.Values(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodeQuery, err)
	}

	return values, nil
}

func filterList() string {
	names := make([]string, len(Filters))
	for i, f := range Filters {
		names[i] = string(f)
	}

	return strings.Join(names, ", ")
}
