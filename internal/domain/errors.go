package domain

import "errors"

// Domain-specific errors.
var (
	// Configuration errors
	ErrInvalidRecipient = errors.New("invalid recipient address")
	ErrInvalidContent   = errors.New("invalid page content")

	// Submission errors
	ErrSubmissionFailed = errors.New("submission failed")

	// Prompt errors
	ErrPromptAborted = errors.New("prompt aborted")
)
