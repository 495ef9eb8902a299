package lmtranslate

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when there is no text to translate
	ErrEmptyInput = errors.New("lmtranslate: the text to translate is empty")

	// ErrMalformedResponse is returned when the server responds without the
	// fields a completion needs
	ErrMalformedResponse = errors.New("lmtranslate: malformed response")
)

// Op names the operation that failed
type Op string

const (
	OpListModels Op = "list-models"
	OpTranslate  Op = "translate"
)

// Failure is a network-facing failure caught at the operation boundary.
// Connection errors and error responses from the server share this shape.
type Failure struct {
	Op      Op
	BaseURL string
	Err     error
}

var _ error = (*Failure)(nil)

// Hint returns the human-readable part of the diagnostic
func (f *Failure) Hint() string {
	switch f.Op {
	case OpTranslate:
		return fmt.Sprintf("the inference server returned an error while translating.\n"+
			"make sure the server is running and the model is loaded (%s)", f.BaseURL)
	default:
		return fmt.Sprintf("unable to connect to the inference server.\n"+
			"make sure the server is running (%s)", f.BaseURL)
	}
}

// Error renders the full two-part diagnostic
func (f *Failure) Error() string {
	return fmt.Sprintf("error: %s\ndetail: %v", f.Hint(), f.Err)
}

func (f *Failure) Unwrap() error {
	return f.Err
}
