package domain

import (
	"errors"
	"strings"
)

// Error kinds. Match them with errors.Is; every *Error unwraps to its kind.
var (
	ErrMalformedInput = errors.New("malformed input")
	ErrInvalidRange   = errors.New("invalid range")
	ErrNoData         = errors.New("no data")
	ErrDomainRange    = errors.New("domain out of range")
	ErrRender         = errors.New("render failed")
)

// Pipeline stage names used in error messages.
const (
	StageLoad     = "load"
	StageFilter   = "filter"
	StageAnnotate = "annotate"
	StageRender   = "render"
	StageWrite    = "write"
)

// Error describes a fatal failure of one pipeline stage.
type Error struct {
	Kind  error  // one of the Err* kinds
	Stage string // pipeline stage
	Input string // offending file or value, optional
	Field string // offending column or key, optional
	Msg   string
	Err   error // underlying cause, optional
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Stage)
	b.WriteString(": ")
	if e.Input != "" {
		b.WriteString(e.Input)
		b.WriteString(": ")
	}
	if e.Field != "" {
		b.WriteString("\"")
		b.WriteString(e.Field)
		b.WriteString("\": ")
	}
	if e.Msg != "" {
		b.WriteString(e.Msg)
	} else {
		b.WriteString(e.Kind.Error())
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Malformed builds an ErrMalformedInput error.
func Malformed(stage, input, field, msg string, cause error) error {
	return &Error{Kind: ErrMalformedInput, Stage: stage, Input: input, Field: field, Msg: msg, Err: cause}
}

// InvalidRange builds an ErrInvalidRange error.
func InvalidRange(stage, input, msg string) error {
	return &Error{Kind: ErrInvalidRange, Stage: stage, Input: input, Msg: msg}
}

// NoData builds an ErrNoData error.
func NoData(stage, msg string) error {
	return &Error{Kind: ErrNoData, Stage: stage, Msg: msg}
}

// DomainRange builds an ErrDomainRange error.
func DomainRange(input, msg string) error {
	return &Error{Kind: ErrDomainRange, Stage: StageAnnotate, Input: input, Msg: msg}
}

// Render builds an ErrRender error.
func Render(stage, input string, cause error) error {
	return &Error{Kind: ErrRender, Stage: stage, Input: input, Err: cause}
}
