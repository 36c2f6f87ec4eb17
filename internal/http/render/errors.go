package render

import (
	"github.com/gin-gonic/gin"

	"github.com/AcebergChristian/jushuitan/internal/http/middleware"
)

func ErrorPage(c *gin.Context, status int, msg string) {
	Page(c, status, "error.tmpl", gin.H{
		"Title":     "出错了",
		"Status":    status,
		"Message":   msg,
		"RequestID": middleware.GetRequestID(c),
		"Flash":     middleware.GetFlash(c),
	})
}
