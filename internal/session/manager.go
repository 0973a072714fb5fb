package session

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const ctxKey = "session"

// Manager ties the store and the cookie codec to gin requests. Sessions are
// created lazily: the middleware only hydrates an existing one, and handlers
// that need to write state call GetOrCreate.
type Manager struct {
	store Store
	codec *CookieCodec
	log   *zap.Logger
}

func NewManager(store Store, codec *CookieCodec, log *zap.Logger) *Manager {
	return &Manager{store: store, codec: codec, log: log}
}

// Middleware loads the session referenced by the request cookie, if any.
// A bad signature or a missing record is treated as "no session".
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := c.Cookie(CookieName)
		if err == nil {
			if id, err := m.codec.Decode(value); err == nil {
				sess, err := m.store.Get(c.Request.Context(), id)
				switch {
				case err == nil:
					c.Set(ctxKey, sess)
				case !errors.Is(err, ErrNotFound):
					m.log.Warn("session load failed", zap.Error(err))
				}
			}
		}
		c.Next()
	}
}

// Current returns the hydrated session or nil.
func (m *Manager) Current(c *gin.Context) *Session {
	if v, ok := c.Get(ctxKey); ok {
		return v.(*Session)
	}
	return nil
}

// GetOrCreate returns the current session, creating a fresh one (and setting
// its cookie) when the request has none. The new session is not persisted
// until Save is called.
func (m *Manager) GetOrCreate(c *gin.Context) (*Session, error) {
	if sess := m.Current(c); sess != nil {
		return sess, nil
	}

	sess := &Session{ID: uuid.NewString()}
	value, err := m.codec.Encode(sess.ID)
	if err != nil {
		return nil, err
	}
	c.SetCookie(CookieName, value, int(TTL.Seconds()), "/", "", false, true)
	c.Set(ctxKey, sess)
	return sess, nil
}

func (m *Manager) Save(c *gin.Context, sess *Session) error {
	return m.store.Save(c.Request.Context(), sess)
}

// Touch refreshes the session TTL; called by the auth guard on every hit.
func (m *Manager) Touch(c *gin.Context, sess *Session) error {
	return m.store.Touch(c.Request.Context(), sess.ID)
}

// Destroy removes the server-side record and, only if that succeeded, clears
// the cookie so a failed logout can be retried.
func (m *Manager) Destroy(c *gin.Context) error {
	sess := m.Current(c)
	if sess != nil {
		if err := m.store.Destroy(c.Request.Context(), sess.ID); err != nil {
			return err
		}
	}
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
	return nil
}

// PopFlash returns the pending flash key and clears it, persisting the clear
// so the message shows exactly once.
func (m *Manager) PopFlash(c *gin.Context, sess *Session) string {
	if sess == nil || sess.Flash == "" {
		return ""
	}
	flash := sess.Flash
	sess.Flash = ""
	if err := m.Save(c, sess); err != nil {
		m.log.Warn("flash clear failed", zap.Error(err))
	}
	return flash
}
