package mailer

import "errors"

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNoSender indicates no From address was set.
	ErrNoSender = errors.New("email must have a sender")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrNoContent indicates neither a text nor an HTML body was provided.
	ErrNoContent = errors.New("email must have a text or HTML body")

	// ErrUnknownProvider indicates a provider name no transport is registered for.
	ErrUnknownProvider = errors.New("unknown mail provider")

	// ErrRenderFailed indicates the message body could not be rendered.
	ErrRenderFailed = errors.New("failed to render message")
)
