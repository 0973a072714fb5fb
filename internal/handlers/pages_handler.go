package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Goldlee001/CoeCarbon/internal/middleware"
	"github.com/Goldlee001/CoeCarbon/internal/services"
	"github.com/Goldlee001/CoeCarbon/internal/session"
)

type PagesHandler struct {
	users    services.UserService
	sessions *session.Manager
	log      *zap.Logger
}

func NewPagesHandler(users services.UserService, sessions *session.Manager, log *zap.Logger) *PagesHandler {
	return &PagesHandler{users: users, sessions: sessions, log: log}
}

func (h *PagesHandler) Home(c *gin.Context) {
	tr := middleware.Translator(c)
	c.HTML(http.StatusOK, "home.html", view(c, gin.H{
		"title": tr.T("title.home"),
	}))
}

func (h *PagesHandler) Invest(c *gin.Context) {
	tr := middleware.Translator(c)
	c.HTML(http.StatusOK, "invest.html", view(c, gin.H{
		"title": tr.T("title.invest"),
	}))
}

func (h *PagesHandler) Alliance(c *gin.Context) {
	tr := middleware.Translator(c)
	c.HTML(http.StatusOK, "alliance.html", view(c, gin.H{
		"title": tr.T("title.alliance"),
	}))
}

// Profile loads the current user's record for display, along with the
// outcome of a password change, if one is pending.
func (h *PagesHandler) Profile(c *gin.Context) {
	sess := h.sessions.Current(c)
	tr := middleware.Translator(c)

	flash := h.sessions.PopFlash(c, sess)

	user, err := h.users.GetUserByID(c.Request.Context(), sess.UserID)
	if err != nil {
		h.log.Error("profile: user lookup failed", zap.Int64("user_id", sess.UserID), zap.Error(err))
		c.HTML(http.StatusInternalServerError, "error.html", view(c, gin.H{
			"title": tr.T("title.server_error"),
		}))
		return
	}

	c.HTML(http.StatusOK, "profile.html", view(c, gin.H{
		"title": tr.T("title.profile"),
		"user":  user,
		"flash": translateFlash(tr, flash),
	}))
}

// InvestPlan renders one of the static informational plan pages.
func (h *PagesHandler) InvestPlan(template string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tr := middleware.Translator(c)
		c.HTML(http.StatusOK, template, view(c, gin.H{
			"title": tr.T("title.invest"),
		}))
	}
}

func (h *PagesHandler) NotFound(c *gin.Context) {
	tr := middleware.Translator(c)
	c.HTML(http.StatusNotFound, "404.html", view(c, gin.H{
		"title": tr.T("title.not_found"),
	}))
}
