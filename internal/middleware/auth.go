package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Goldlee001/CoeCarbon/internal/i18n"
	"github.com/Goldlee001/CoeCarbon/internal/services"
	"github.com/Goldlee001/CoeCarbon/internal/session"
)

const currentUserKey = "currentUser"

// RequireAuth lets the request through only when the session carries a
// logged-in user, refreshing the session TTL on the way. Anyone else is sent
// to the login page with a flash explaining why.
func RequireAuth(sessions *session.Manager, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Current(c)
		if sess == nil || sess.UserID == 0 {
			redirectWithFlash(c, sessions, log, i18n.KeyNotAuthenticated, "/login")
			return
		}
		if err := sessions.Touch(c, sess); err != nil {
			log.Warn("session touch failed", zap.Error(err))
		}
		c.Next()
	}
}

// RequireAdmin additionally resolves the user record and checks the admin
// flag. A logged-in non-admin gets a rendered 403, no redirect; a failed
// lookup gets a rendered 500.
func RequireAdmin(sessions *session.Manager, users services.UserService, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Current(c)
		if sess == nil || sess.UserID == 0 {
			redirectWithFlash(c, sessions, log, i18n.KeyNotAuthenticated, "/login")
			return
		}

		user, err := users.GetUserByID(c.Request.Context(), sess.UserID)
		if err != nil {
			log.Error("admin check: user lookup failed", zap.Int64("user_id", sess.UserID), zap.Error(err))
			tr := Translator(c)
			c.HTML(http.StatusInternalServerError, "error.html", gin.H{
				"title":       tr.T("title.server_error"),
				"t":           tr.T,
				"locale":      Locale(c),
				"currentPath": CurrentPath(c),
			})
			c.Abort()
			return
		}

		if !user.IsAdmin {
			tr := Translator(c)
			c.HTML(http.StatusForbidden, "forbidden.html", gin.H{
				"title":       tr.T("title.forbidden"),
				"message":     tr.T(i18n.KeyAccessDenied),
				"t":           tr.T,
				"locale":      Locale(c),
				"currentPath": CurrentPath(c),
			})
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		if err := sessions.Touch(c, sess); err != nil {
			log.Warn("session touch failed", zap.Error(err))
		}
		c.Next()
	}
}

func redirectWithFlash(c *gin.Context, sessions *session.Manager, log *zap.Logger, flashKey, target string) {
	sess, err := sessions.GetOrCreate(c)
	if err == nil {
		sess.Flash = flashKey
		if err := sessions.Save(c, sess); err != nil {
			log.Warn("flash save failed", zap.Error(err))
		}
	}
	c.Redirect(http.StatusFound, target)
	c.Abort()
}
