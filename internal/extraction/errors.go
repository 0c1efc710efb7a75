package extraction

import "errors"

var (
	// ErrEmptyInput is returned when the raw text is empty or whitespace-only.
	ErrEmptyInput = errors.New("extraction: input text is empty")

	// ErrInference is returned when the model call itself fails. The wrapped
	// error carries the collaborator's message.
	ErrInference = errors.New("extraction: model call failed")

	// ErrMalformedResponse is returned when neither the raw response nor its
	// first brace-delimited span decodes as a JSON object.
	ErrMalformedResponse = errors.New("extraction: model returned no parsable JSON object")
)
