package web

import (
	"ctchen222/Cat-Match/internal/api/models"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderPage(t *testing.T, r *Renderer, name string, data any) string {
	t.Helper()
	w := httptest.NewRecorder()
	require.NoError(t, r.Instance(name, data).Render(w))
	return w.Body.String()
}

func TestRenderer_Pages(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	for _, name := range []string{"index", "register", "login", "account", "new_cat", "cat_profile", "error"} {
		assert.Contains(t, r.pages, name)
	}
}

func TestRenderer_IndexEscapesUserText(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	body := renderPage(t, r, "index", map[string]any{
		"Search": "tom",
		"Cats": []models.CatSummary{
			{ID: 1, Name: "<b>Tom</b>", Breed: "Siamese", Photo: "tom.jpg", Gender: models.GenderMale, City: "Taipei"},
		},
	})

	assert.Contains(t, body, "&lt;b&gt;Tom&lt;/b&gt;")
	assert.Contains(t, body, "/static/photos/tom.jpg")
	assert.Contains(t, body, "Siamese, Male, Taipei")
	assert.Contains(t, body, `href="/login"`)
}

func TestRenderer_FormErrors(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	body := renderPage(t, r, "register", map[string]any{
		"Form":   &models.RegisterRequest{Login: "alice"},
		"Errors": models.FieldErrors{"login": "User alice is already registered"},
	})

	assert.Contains(t, body, "User alice is already registered")
	assert.Contains(t, body, `value="alice"`)
}

func TestRenderer_ProfileForOwner(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	cat := &models.CatProfile{CatSummary: models.CatSummary{ID: 1, Name: "Tom", Photo: "tom.jpg"}, BirthDate: "2020-01-02"}
	body := renderPage(t, r, "cat_profile", map[string]any{
		"Identity": models.Identity{UserID: 1, Login: "alice"},
		"Cat":      cat,
		"Relations": &models.CatRelations{
			Cat:        *cat,
			Candidates: []models.CatSummary{{ID: 5, Name: "Luna"}},
			Matched:    []models.CatSummary{{ID: 3, Name: "Milo", OwnerPhone: "0912345678"}},
		},
	})

	assert.Contains(t, body, `action="/add_maybe/1/5"`)
	assert.Contains(t, body, "0912345678")
	assert.Contains(t, body, `action="/cats/delete/1"`)
}

func TestRenderer_UnknownPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	body := renderPage(t, r, "missing", nil)
	assert.Contains(t, body, "unknown page")
}

func TestAssets(t *testing.T) {
	f, err := Assets().Open("style.css")
	require.NoError(t, err)
	f.Close()
}
