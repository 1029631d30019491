package views

import "strconv"

// FormData is rendered by SendForm.
type FormData struct {
	// ContactsFile is the name of the contact sheet shown to the sender.
	ContactsFile string
	// Recipients is the loose recipient count, or -1 when unknown.
	Recipients int
	// MaxUploadMB is the attachment size ceiling in megabytes.
	MaxUploadMB int64
}

func recipientsLabel(n int) string {
	if n < 0 {
		return "unknown"
	}
	return strconv.Itoa(n)
}
