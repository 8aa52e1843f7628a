package vocab

import "errors"

var (
	// ErrDuplicateWord is returned when adding a word that already exists.
	ErrDuplicateWord = errors.New("word already exists")

	// ErrIndexOutOfRange is returned for an invalid list position or page.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrEmptyRepository is returned when an operation needs at least one entry.
	ErrEmptyRepository = errors.New("vocabulary is empty")

	// ErrInvalidScore is returned when experience or level fall outside their bounds.
	ErrInvalidScore = errors.New("invalid score")

	// ErrInvalidField is returned when a word, meaning or explanation cannot be stored.
	ErrInvalidField = errors.New("invalid field")
)
