// Package input turns the two text fields of a surface into validated
// scene parameters.
package input

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/san-kum/monkeysim/internal/scene"
)

var ErrNotNumber = errors.New("not a number")

// ErrBelowMinimum is re-exported so surfaces only need this package.
var ErrBelowMinimum = scene.ErrBelowMinimum

const (
	msgNotNumber    = "Please enter valid numbers."
	msgBelowMinimum = "Both height and distance must be at least 1."
)

// Parse reads the target height and shooter distance. Surrounding
// whitespace is ignored. NaN and infinities count as not a number.
func Parse(heightText, distanceText string) (scene.Params, error) {
	h, err := number(heightText)
	if err != nil {
		return scene.Params{}, err
	}
	d, err := number(distanceText)
	if err != nil {
		return scene.Params{}, err
	}

	p := scene.Params{TargetHeight: h, ShooterDistance: d}
	if err := p.Validate(); err != nil {
		return scene.Params{}, err
	}
	return p, nil
}

func number(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &FieldError{Text: text, Err: ErrNotNumber}
	}
	return v, nil
}

// FieldError records which text failed to parse.
type FieldError struct {
	Text string
	Err  error
}

func (e *FieldError) Error() string {
	return strconv.Quote(e.Text) + ": " + e.Err.Error()
}

func (e *FieldError) Unwrap() error { return e.Err }

// Message is the text a surface shows for err, or "" when err is nil.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotNumber):
		return msgNotNumber
	case errors.Is(err, ErrBelowMinimum):
		return msgBelowMinimum
	default:
		return err.Error()
	}
}
