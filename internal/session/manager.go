package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// CookieName is the name of the browser cookie carrying the session token.
const CookieName = "catmatch_session"

// Manager binds a Store to the session cookie of gin requests.
type Manager struct {
	store  Store
	ttl    time.Duration
	secure bool
}

func NewManager(store Store, ttl time.Duration, secure bool) *Manager {
	return &Manager{store: store, ttl: ttl, secure: secure}
}

// Login starts a session for userID and sets the cookie on the response.
func (m *Manager) Login(c *gin.Context, userID int64) error {
	token, err := m.store.Create(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	m.setCookie(c, token, int(m.ttl.Seconds()))
	return nil
}

// Current returns the user id of the request's session. found is false when
// the request carries no cookie or the session is unknown.
func (m *Manager) Current(c *gin.Context) (userID int64, found bool, err error) {
	token, err := c.Cookie(CookieName)
	if err != nil || token == "" {
		return 0, false, nil
	}
	return m.store.Resolve(c.Request.Context(), token)
}

// Logout revokes the request's session, if any, and clears the cookie.
func (m *Manager) Logout(c *gin.Context) error {
	defer m.setCookie(c, "", -1)

	token, err := c.Cookie(CookieName)
	if err != nil || token == "" {
		return nil
	}
	return m.store.Destroy(c.Request.Context(), token)
}

func (m *Manager) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, value, maxAge, "/", "", m.secure, true)
}
