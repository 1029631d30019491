package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	r := NewRenderer()

	t.Run("markdown formatting", func(t *testing.T) {
		t.Parallel()

		html, err := r.Render("Hello **team**,\n\n- Go\n- SQL")
		require.NoError(t, err)
		assert.Contains(t, html, "<strong>team</strong>")
		assert.Contains(t, html, "<li>Go</li>")
	})

	t.Run("keeps line breaks", func(t *testing.T) {
		t.Parallel()

		html, err := r.Render("line one\nline two")
		require.NoError(t, err)
		assert.Contains(t, html, "<br")
	})

	t.Run("raw html is not rendered", func(t *testing.T) {
		t.Parallel()

		html, err := r.Render("hi <script>alert(1)</script>")
		require.NoError(t, err)
		assert.NotContains(t, html, "<script")
	})

	t.Run("links get nofollow", func(t *testing.T) {
		t.Parallel()

		html, err := r.Render("[portfolio](https://example.com)")
		require.NoError(t, err)
		assert.Contains(t, html, `href="https://example.com"`)
		assert.Contains(t, html, `rel="nofollow"`)
	})

	t.Run("no template substitution", func(t *testing.T) {
		t.Parallel()

		html, err := r.Render("Dear {{.Name}}")
		require.NoError(t, err)
		assert.Contains(t, html, "{{.Name}}")
	})
}
