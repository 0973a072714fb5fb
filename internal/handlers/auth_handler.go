package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Goldlee001/CoeCarbon/internal/captcha"
	"github.com/Goldlee001/CoeCarbon/internal/i18n"
	"github.com/Goldlee001/CoeCarbon/internal/middleware"
	"github.com/Goldlee001/CoeCarbon/internal/repositories"
	"github.com/Goldlee001/CoeCarbon/internal/services"
	"github.com/Goldlee001/CoeCarbon/internal/session"
)

type AuthHandler struct {
	users    services.UserService
	sessions *session.Manager
	log      *zap.Logger
}

func NewAuthHandler(users services.UserService, sessions *session.Manager, log *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions, log: log}
}

// Root sends logged-in visitors to the dashboard, everyone else to signup.
func (h *AuthHandler) Root(c *gin.Context) {
	if sess := h.sessions.Current(c); sess != nil && sess.UserID != 0 {
		c.Redirect(http.StatusFound, "/home")
		return
	}
	c.Redirect(http.StatusFound, "/register")
}

// ShowRegister renders the registration form with a freshly generated
// challenge; the previous one, if any, is overwritten.
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	sess, err := h.sessions.GetOrCreate(c)
	if err != nil {
		h.serverError(c, "register page: session create failed", err)
		return
	}

	flash := h.sessions.PopFlash(c, sess)

	code := captcha.New()
	sess.Captcha = code
	if err := h.sessions.Save(c, sess); err != nil {
		h.serverError(c, "register page: session save failed", err)
		return
	}

	tr := middleware.Translator(c)
	c.HTML(http.StatusOK, "register.html", view(c, gin.H{
		"title":   tr.T("title.register"),
		"captcha": code,
		"error":   translateFlash(tr, flash),
	}))
}

// Register validates the submission in a fixed order: challenge, password
// confirmation, agreement. Every failure redirects back with a flash so the
// POST is never re-submittable from an error page.
func (h *AuthHandler) Register(c *gin.Context) {
	countryCode := c.PostForm("countryCode")
	phoneNumber := c.PostForm("phoneNumber")
	password := c.PostForm("password")
	confirmPassword := c.PostForm("confirmPassword")
	userCaptcha := c.PostForm("userCaptcha")
	agreement := c.PostForm("agreement")

	sess, err := h.sessions.GetOrCreate(c)
	if err != nil {
		h.serverError(c, "register: session create failed", err)
		return
	}

	if sess.Captcha == "" || userCaptcha != sess.Captcha {
		h.failToward(c, sess, i18n.KeyInvalidCaptcha, "/register")
		return
	}
	if password != confirmPassword {
		h.failToward(c, sess, i18n.KeyPasswordMismatch, "/register")
		return
	}
	if agreement != "on" {
		h.failToward(c, sess, i18n.KeyAgreementRequired, "/register")
		return
	}

	user, err := h.users.Register(c.Request.Context(), countryCode, phoneNumber, password)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicatePhoneNumber) {
			h.failToward(c, sess, i18n.KeyDuplicatePhone, "/register")
			return
		}
		h.log.Error("registration failed", zap.Error(err))
		h.failToward(c, sess, i18n.KeyRegistrationFailed, "/register")
		return
	}

	h.log.Info("user registered", zap.Int64("user_id", user.ID))
	sess.Captcha = ""
	sess.Flash = i18n.KeyRegistrationSuccess
	if err := h.sessions.Save(c, sess); err != nil {
		h.log.Warn("session save failed after registration", zap.Error(err))
	}
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	var flash string
	if sess := h.sessions.Current(c); sess != nil {
		flash = h.sessions.PopFlash(c, sess)
	}

	tr := middleware.Translator(c)
	c.HTML(http.StatusOK, "login.html", view(c, gin.H{
		"title": tr.T("title.login"),
		"error": translateFlash(tr, flash),
	}))
}

// Login authenticates by phone number. Unknown number and wrong password
// flash the exact same message.
func (h *AuthHandler) Login(c *gin.Context) {
	phoneNumber := c.PostForm("phoneNumber")
	password := c.PostForm("password")

	sess, err := h.sessions.GetOrCreate(c)
	if err != nil {
		h.serverError(c, "login: session create failed", err)
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), phoneNumber, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			h.failToward(c, sess, i18n.KeyInvalidCredentials, "/login")
			return
		}
		h.log.Error("login failed", zap.Error(err))
		h.failToward(c, sess, i18n.KeyLoginFailed, "/login")
		return
	}

	sess.UserID = user.ID
	if err := h.sessions.Save(c, sess); err != nil {
		h.serverError(c, "login: session save failed", err)
		return
	}
	h.log.Info("user logged in", zap.Int64("user_id", user.ID))
	c.Redirect(http.StatusSeeOther, "/home")
}

// ChangePassword re-hashes and stores a new password for the logged-in
// user. Same redirect discipline as registration: failures flash and bounce
// back to the profile page.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	password := c.PostForm("password")
	confirmPassword := c.PostForm("confirmPassword")

	// RequireAuth guarantees a logged-in session here
	sess := h.sessions.Current(c)

	if password != confirmPassword {
		h.failToward(c, sess, i18n.KeyPasswordMismatch, "/profile")
		return
	}

	if err := h.users.ChangePassword(c.Request.Context(), sess.UserID, password); err != nil {
		h.log.Error("password change failed", zap.Int64("user_id", sess.UserID), zap.Error(err))
		h.failToward(c, sess, i18n.KeyPasswordChangeFailed, "/profile")
		return
	}

	h.log.Info("password changed", zap.Int64("user_id", sess.UserID))
	sess.Flash = i18n.KeyPasswordUpdated
	if err := h.sessions.Save(c, sess); err != nil {
		h.log.Warn("session save failed after password change", zap.Error(err))
	}
	c.Redirect(http.StatusSeeOther, "/profile")
}

// Logout destroys the server-side session. The cookie is only cleared when
// the destroy succeeded, so a failed logout can be retried by the client.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Destroy(c); err != nil {
		h.log.Error("logout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Server failed to clear session.",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"redirect": "/register",
	})
}

func (h *AuthHandler) failToward(c *gin.Context, sess *session.Session, flashKey, target string) {
	sess.Flash = flashKey
	if err := h.sessions.Save(c, sess); err != nil {
		h.log.Warn("flash save failed", zap.Error(err))
	}
	c.Redirect(http.StatusSeeOther, target)
}

func (h *AuthHandler) serverError(c *gin.Context, msg string, err error) {
	h.log.Error(msg, zap.Error(err))
	tr := middleware.Translator(c)
	c.HTML(http.StatusInternalServerError, "error.html", view(c, gin.H{
		"title": tr.T("title.server_error"),
	}))
}

func translateFlash(tr *i18n.Translator, key string) string {
	if key == "" {
		return ""
	}
	return tr.T(key)
}
