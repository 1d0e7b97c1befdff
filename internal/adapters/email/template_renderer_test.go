package email

import (
	"testing"

	"communityhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateRenderer_Welcome(t *testing.T) {
	r := NewTemplateRenderer()

	t.Run("member", func(t *testing.T) {
		subject, html, text, err := r.Render("welcome", &domain.WelcomeMessageEmailData{
			Email: "alice@example.com", Name: "Alice", Username: "alice",
		})
		require.NoError(t, err)
		assert.Equal(t, "Welcome to Community Hub, Alice!", subject)
		assert.Contains(t, html, "<strong>alice</strong>")
		assert.Contains(t, text, "RSVP to events")
		assert.NotContains(t, text, "organization \"")
	})

	t.Run("organizer escapes html", func(t *testing.T) {
		_, html, text, err := r.Render("welcome", &domain.WelcomeMessageEmailData{
			Name: "Bob", Username: "bob", IsOrganizer: true, OrganizationName: "<Green & Co>",
		})
		require.NoError(t, err)
		assert.Contains(t, html, "&lt;Green &amp; Co&gt;")
		assert.Contains(t, text, "<Green & Co>")
	})

	t.Run("unknown template", func(t *testing.T) {
		_, _, _, err := r.Render("missing", nil)
		require.Error(t, err)
	})
}
