package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Goldlee001/CoeCarbon/internal/middleware"
	"github.com/Goldlee001/CoeCarbon/internal/services"
)

type AdminHandler struct {
	users services.UserService
	log   *zap.Logger
}

func NewAdminHandler(users services.UserService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{users: users, log: log}
}

// Dashboard shows aggregate numbers for administrators.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	tr := middleware.Translator(c)

	total, err := h.users.GetUserCount(c.Request.Context())
	if err != nil {
		h.log.Error("admin: user count failed", zap.Error(err))
		c.HTML(http.StatusInternalServerError, "error.html", view(c, gin.H{
			"title": tr.T("title.server_error"),
		}))
		return
	}

	c.HTML(http.StatusOK, "admin.html", view(c, gin.H{
		"title":      tr.T("title.admin"),
		"totalUsers": total,
	}))
}
