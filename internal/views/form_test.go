package views_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/outreach/internal/views"
)

func TestSendForm(t *testing.T) {
	t.Parallel()

	t.Run("renders fields and counts", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		err := views.SendForm(views.FormData{ContactsFile: "contacts.xlsx", Recipients: 42, MaxUploadMB: 5}).
			Render(context.Background(), &buf)
		require.NoError(t, err)

		html := buf.String()
		assert.Contains(t, html, `name="subject"`)
		assert.Contains(t, html, `name="message"`)
		assert.Contains(t, html, `name="cv"`)
		assert.Contains(t, html, "<strong>contacts.xlsx</strong> (42 addresses)")
		assert.Contains(t, html, "max 5MB")
		assert.Contains(t, html, "width:100%")
		assert.Contains(t, html, "fetch(form.action")
	})

	t.Run("escapes the file name", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		err := views.SendForm(views.FormData{ContactsFile: "<b>x</b>.xlsx", Recipients: -1}).
			Render(context.Background(), &buf)
		require.NoError(t, err)

		assert.NotContains(t, buf.String(), "<b>x</b>")
		assert.Contains(t, buf.String(), "&lt;b&gt;x&lt;/b&gt;.xlsx")
		assert.Contains(t, buf.String(), "(unknown addresses)")
	})
}
