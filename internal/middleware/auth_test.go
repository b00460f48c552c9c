package middleware

import (
	"context"
	"ctchen222/Cat-Match/internal/api/models"
	"ctchen222/Cat-Match/internal/session"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsers struct {
	users map[int64]*models.User
}

func (s *stubUsers) Register(context.Context, *models.RegisterRequest) (*models.User, error) {
	return nil, nil
}

func (s *stubUsers) Login(context.Context, *models.LoginRequest) (*models.User, error) {
	return nil, nil
}

func (s *stubUsers) GetUser(_ context.Context, id int64) (*models.User, error) {
	return s.users[id], nil
}

func newRouter(t *testing.T, users map[int64]*models.User) (*gin.Engine, session.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := session.NewCookieStore([]byte("secret"), time.Hour)
	auth := NewAuthMiddleware(session.NewManager(store, time.Hour, false), &stubUsers{users: users})

	r := gin.New()
	r.Use(auth.LoadUser())
	handler := func(c *gin.Context) {
		identity, _ := CurrentIdentity(c)
		c.String(http.StatusOK, identity.Login)
	}
	r.GET("/account", auth.RequireAuth(), handler)
	r.GET("/api/cats", auth.RequireAuth(), handler)
	r.GET("/", handler)
	return r, store
}

func sessionCookie(t *testing.T, store session.Store, userID int64) *http.Cookie {
	t.Helper()
	token, err := store.Create(context.Background(), userID)
	require.NoError(t, err)
	return &http.Cookie{Name: session.CookieName, Value: token}
}

func TestRequireAuth_Anonymous(t *testing.T) {
	r, _ := newRouter(t, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/account", nil))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cats", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoadUser_SetsIdentity(t *testing.T) {
	r, store := newRouter(t, map[int64]*models.User{7: {ID: 7, Login: "alice"}})

	req := httptest.NewRequest(http.MethodGet, "/account", nil)
	req.AddCookie(sessionCookie(t, store, 7))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", w.Body.String())
}

func TestLoadUser_StaleSession(t *testing.T) {
	r, store := newRouter(t, map[int64]*models.User{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sessionCookie(t, store, 7))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, session.CookieName, cookies[0].Name)
	assert.Equal(t, "", cookies[0].Value)
}
