package campaign

import "errors"

var (
	// ErrNoRecipients indicates that no valid address was found in the contact rows.
	ErrNoRecipients = errors.New("campaign: no valid email addresses found")

	// ErrEmptySubject indicates a campaign without a subject line.
	ErrEmptySubject = errors.New("campaign: subject is required")

	// ErrEmptyBody indicates a campaign without a message body.
	ErrEmptyBody = errors.New("campaign: message is required")

	// ErrNoAttachment indicates a campaign without an attachment.
	ErrNoAttachment = errors.New("campaign: attachment is required")

	// ErrAttachmentUnavailable indicates the attachment could not be read.
	ErrAttachmentUnavailable = errors.New("campaign: attachment is not readable")

	// ErrTransportUnavailable indicates the mail transport failed verification.
	ErrTransportUnavailable = errors.New("campaign: mail transport unavailable")

	// ErrSourceUnavailable indicates the contact rows could not be read.
	ErrSourceUnavailable = errors.New("campaign: contact source unavailable")
)
