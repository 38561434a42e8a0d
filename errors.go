package wardclerk

import "errors"

var (
	// ErrUnknownKind is returned for a document kind with no assembler
	ErrUnknownKind = errors.New("unknown document kind")
	// ErrEmptyInput is returned when the input record has no content
	ErrEmptyInput = errors.New("empty input record")
)
