package controller_test

import (
	"bytes"
	"context"
	"ctchen222/Cat-Match/internal/api/controller"
	"ctchen222/Cat-Match/internal/api/models"
	"ctchen222/Cat-Match/internal/api/repository"
	"ctchen222/Cat-Match/internal/api/service"
	"ctchen222/Cat-Match/internal/db"
	"ctchen222/Cat-Match/internal/hub"
	"ctchen222/Cat-Match/internal/middleware"
	"ctchen222/Cat-Match/internal/server"
	"ctchen222/Cat-Match/internal/session"
	"ctchen222/Cat-Match/internal/storage"
	"ctchen222/Cat-Match/internal/web"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	t      *testing.T
	engine *gin.Engine
	db     *sqlx.DB
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	dir := t.TempDir()
	DB, err := db.Connect(filepath.Join(dir, "catmatch.db"))
	require.NoError(t, err)
	t.Cleanup(func() { DB.Close() })
	require.NoError(t, db.InitializeDB(ctx, DB, []string{"Siamese", "Bengal"}))

	photos, err := storage.NewDiskPhotoStore(filepath.Join(dir, "photos"))
	require.NoError(t, err)

	hubCtx, cancel := context.WithCancel(ctx)
	notifications := hub.NewHub(nil)
	go notifications.Run(hubCtx)
	t.Cleanup(func() {
		cancel()
		<-notifications.Done()
	})

	userRepo := repository.NewUserRepository(DB)
	catRepo := repository.NewCatRepository(DB)
	likeRepo := repository.NewLikeRepository(DB)
	userService := service.NewUserService(userRepo)
	catService := service.NewCatService(catRepo, repository.NewBreedRepository(DB), likeRepo, photos)
	likeService := service.NewLikeService(catRepo, likeRepo, notifications)
	sessions := session.NewManager(session.NewCookieStore([]byte("test-secret"), time.Hour), time.Hour, false)

	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	srv := server.NewServer(server.Options{UploadDir: filepath.Join(dir, "photos")}, notifications, server.Controllers{
		Auth:  middleware.NewAuthMiddleware(sessions, userService),
		Users: controller.NewUserController(userService, sessions),
		Cats:  controller.NewCatController(catService),
		Likes: controller.NewLikeController(likeService),
		API:   controller.NewAPIController(catService, DB),
	}, renderer)

	return &testApp{t: t, engine: srv.Engine(), db: DB}
}

func (a *testApp) do(req *http.Request, cookie *http.Cookie) *httptest.ResponseRecorder {
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func (a *testApp) postForm(path string, form url.Values, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return a.do(req, cookie)
}

func (a *testApp) get(path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	return a.do(httptest.NewRequest(http.MethodGet, path, nil), cookie)
}

// signUp registers login and returns its session cookie.
func (a *testApp) signUp(login string) *http.Cookie {
	a.t.Helper()
	w := a.postForm("/register", url.Values{
		"login":            {login},
		"password":         {"secret-pass"},
		"password-confirm": {"secret-pass"},
	}, nil)
	require.Equal(a.t, http.StatusSeeOther, w.Code, w.Body.String())

	w = a.postForm("/login", url.Values{"login": {login}, "password": {"secret-pass"}}, nil)
	require.Equal(a.t, http.StatusSeeOther, w.Code, w.Body.String())
	require.Equal(a.t, "/account", w.Header().Get("Location"))

	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	a.t.Fatalf("no session cookie for %s", login)
	return nil
}

func (a *testApp) addCat(cookie *http.Cookie, name, breed string) int64 {
	a.t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fields := map[string]string{
		"name":          name,
		"breed":         breed,
		"gender":        "F",
		"city":          "Taipei",
		"contact_phone": "0912345678",
		"date_of_birth": "2021-03-04",
		"comments":      "friendly",
	}
	for k, v := range fields {
		require.NoError(a.t, mw.WriteField(k, v))
	}
	part, err := mw.CreateFormFile("photo", "cat.jpg")
	require.NoError(a.t, err)
	_, err = part.Write([]byte("jpeg"))
	require.NoError(a.t, err)
	require.NoError(a.t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/cats/new", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := a.do(req, cookie)
	require.Equal(a.t, http.StatusSeeOther, w.Code, w.Body.String())

	var id int64
	require.NoError(a.t, a.db.Get(&id, `SELECT MAX(id) FROM cats`))
	return id
}

func (a *testApp) like(cookie *http.Cookie, from, to int64) *httptest.ResponseRecorder {
	return a.postForm(fmt.Sprintf("/add_maybe/%d/%d", from, to), nil, cookie)
}

type envelope[T any] struct {
	Success bool `json:"success"`
	Code    int  `json:"code"`
	Extras  T    `json:"extras"`
}

func catIDs(cats []models.CatSummary) []int64 {
	ids := make([]int64, 0, len(cats))
	for _, c := range cats {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestRegister_DuplicateLogin(t *testing.T) {
	app := newTestApp(t)
	app.signUp("alice")

	w := app.postForm("/register", url.Values{
		"login":            {"alice"},
		"password":         {"another-pass"},
		"password-confirm": {"another-pass"},
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "User alice is already registered")

	var count int
	require.NoError(t, app.db.Get(&count, `SELECT COUNT(*) FROM users WHERE login = ?`, "alice"))
	assert.Equal(t, 1, count)
}

func TestLogin_BadCredentials(t *testing.T) {
	app := newTestApp(t)
	app.signUp("alice")

	w := app.postForm("/login", url.Values{"login": {"alice"}, "password": {"wrong-pass"}}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid login or password")
}

func TestLoggedInUserIsRedirectedFromLogin(t *testing.T) {
	app := newTestApp(t)
	alice := app.signUp("alice")

	w := app.get("/login", alice)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/account", w.Header().Get("Location"))
}

func TestAccountRequiresLogin(t *testing.T) {
	app := newTestApp(t)

	w := app.get("/account", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = app.get("/api/cats", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNewCat_ValidationErrors(t *testing.T) {
	app := newTestApp(t)
	alice := app.signUp("alice")

	w := app.postForm("/cats/new", url.Values{
		"name":          {"Tom"},
		"breed":         {"Unicorn"},
		"gender":        {"M"},
		"city":          {"Taipei"},
		"contact_phone": {"+886912345678"},
		"date_of_birth": {"2021-03-04"},
	}, alice)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Enter a 10-digit phone number without the country code")

	var count int
	require.NoError(t, app.db.Get(&count, `SELECT COUNT(*) FROM cats`))
	assert.Zero(t, count)
}

func TestNewCat_UnknownBreed(t *testing.T) {
	app := newTestApp(t)
	alice := app.signUp("alice")

	w := app.postForm("/cats/new", url.Values{
		"name":          {"Tom"},
		"breed":         {"Unicorn"},
		"gender":        {"M"},
		"city":          {"Taipei"},
		"contact_phone": {"0912345678"},
		"date_of_birth": {"2021-03-04"},
	}, alice)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unknown breed")
}

func TestMatchingFlow(t *testing.T) {
	app := newTestApp(t)
	alice := app.signUp("alice")
	bob := app.signUp("bob")
	carol := app.signUp("carol")

	tom := app.addCat(alice, "Tom", "Siamese")
	kitty := app.addCat(alice, "Kitty", "Bengal")
	bigTommy := app.addCat(bob, "Big Tommy", "Siamese")
	luna := app.addCat(bob, "Luna", "Siamese")
	milo := app.addCat(carol, "Milo", "Siamese")

	w := app.like(alice, tom, bigTommy)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, fmt.Sprintf("/cats/%d", tom), w.Header().Get("Location"))
	require.Equal(t, http.StatusSeeOther, app.like(bob, luna, tom).Code)

	// Recording the same pair again is a silent no-op.
	require.Equal(t, http.StatusSeeOther, app.like(alice, tom, bigTommy).Code)
	var likes int
	require.NoError(t, app.db.Get(&likes, `SELECT COUNT(*) FROM likes WHERE main_cat_id = ? AND liked_cat_id = ?`, tom, bigTommy))
	assert.Equal(t, 1, likes)

	w = app.get(fmt.Sprintf("/api/cats/%d/relations", tom), alice)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var rel envelope[models.CatRelations]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rel))
	assert.Equal(t, []int64{bigTommy}, catIDs(rel.Extras.Liked))
	assert.Equal(t, []int64{luna}, catIDs(rel.Extras.Asked))
	assert.Empty(t, rel.Extras.Matched)
	assert.Equal(t, []int64{milo}, catIDs(rel.Extras.Candidates))

	// Liking back closes the pair.
	require.Equal(t, http.StatusSeeOther, app.like(alice, tom, luna).Code)
	w = app.get(fmt.Sprintf("/api/cats/%d/relations", tom), alice)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rel))
	assert.Equal(t, []int64{luna}, catIDs(rel.Extras.Matched))
	assert.Empty(t, rel.Extras.Asked)

	// Owner page shows relations, other users see the plain profile.
	w = app.get(fmt.Sprintf("/cats/%d", tom), alice)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Candidates")
	w = app.get(fmt.Sprintf("/cats/%d", tom), bob)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Candidates")

	w = app.get(fmt.Sprintf("/api/cats/%d/relations", tom), bob)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Kitty has no same-breed cats of other users.
	w = app.get(fmt.Sprintf("/api/cats/%d/relations", kitty), alice)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rel))
	assert.Empty(t, rel.Extras.Candidates)
}

func TestLikeRejections(t *testing.T) {
	app := newTestApp(t)
	alice := app.signUp("alice")
	bob := app.signUp("bob")
	tom := app.addCat(alice, "Tom", "Siamese")
	luna := app.addCat(bob, "Luna", "Siamese")

	assert.Equal(t, http.StatusBadRequest, app.like(alice, tom, tom).Code)
	assert.Equal(t, http.StatusForbidden, app.like(alice, luna, tom).Code)
	assert.Equal(t, http.StatusNotFound, app.like(alice, tom, 999).Code)
}

func TestDeleteCat(t *testing.T) {
	app := newTestApp(t)
	alice := app.signUp("alice")
	bob := app.signUp("bob")
	tom := app.addCat(alice, "Tom", "Siamese")
	luna := app.addCat(bob, "Luna", "Siamese")
	require.Equal(t, http.StatusSeeOther, app.like(bob, luna, tom).Code)

	w := app.postForm(fmt.Sprintf("/cats/delete/%d", tom), nil, bob)
	assert.Equal(t, http.StatusForbidden, w.Code)
	var count int
	require.NoError(t, app.db.Get(&count, `SELECT COUNT(*) FROM cats WHERE id = ?`, tom))
	assert.Equal(t, 1, count)

	w = app.postForm(fmt.Sprintf("/cats/delete/%d", tom), nil, alice)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/account", w.Header().Get("Location"))

	require.NoError(t, app.db.Get(&count, `SELECT COUNT(*) FROM likes WHERE main_cat_id = ? OR liked_cat_id = ?`, tom, tom))
	assert.Zero(t, count)
	require.NoError(t, app.db.Get(&count, `SELECT COUNT(*) FROM photos WHERE cat_id = ?`, tom))
	assert.Zero(t, count)

	assert.Equal(t, http.StatusNotFound, app.get(fmt.Sprintf("/cats/%d", tom), alice).Code)
	assert.Equal(t, http.StatusNotFound, app.postForm(fmt.Sprintf("/cats/delete/%d", tom), nil, alice).Code)
}

func TestSearch(t *testing.T) {
	app := newTestApp(t)
	alice := app.signUp("alice")
	app.addCat(alice, "Tom", "Siamese")
	app.addCat(alice, "Big Tommy", "Bengal")
	app.addCat(alice, "Luna", "Siamese")

	w := app.get("/api/cats?search=Tom", alice)
	require.Equal(t, http.StatusOK, w.Code)
	var list envelope[struct {
		List []models.CatSummary `json:"list"`
	}]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))

	require.Len(t, list.Extras.List, 2)
	for _, cat := range list.Extras.List {
		assert.Contains(t, strings.ToLower(cat.Name), "tom")
		assert.NotEmpty(t, cat.Breed)
		assert.NotEmpty(t, cat.Photo)
		assert.Empty(t, cat.OwnerPhone)
	}

	w = app.get("/?search=Tom", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Big Tommy")
	assert.NotContains(t, w.Body.String(), "Luna")
}

func TestHealthz(t *testing.T) {
	app := newTestApp(t)
	w := app.get("/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
