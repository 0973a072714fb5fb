package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Goldlee001/CoeCarbon/internal/middleware"
)

// view decorates handler-supplied template data with the request-scoped
// translator, locale, and current path that every page needs.
func view(c *gin.Context, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	tr := middleware.Translator(c)
	if tr != nil {
		data["t"] = tr.T
	}
	data["locale"] = middleware.Locale(c)
	data["currentPath"] = middleware.CurrentPath(c)
	return data
}
