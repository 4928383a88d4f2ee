package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	r := NewRenderer()

	html, err := r.Render("# Recruitment Day\n\n- [x] apply\n\n| a | b |\n|---|---|\n| 1 | 2 |\n")
	require.NoError(t, err)
	assert.Contains(t, html, `<h1 id="recruitment-day">Recruitment Day</h1>`)
	assert.Contains(t, html, `<table>`)
	assert.Contains(t, html, `type="checkbox"`)
}

func TestRender_EscapesRawHTML(t *testing.T) {
	html, err := NewRenderer().Render("hello <script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}
