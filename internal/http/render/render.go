package render

import (
	"html/template"

	"github.com/gin-gonic/gin"
)

// Page renders a named template from templates/html.
func Page(c *gin.Context, status int, name string, data any) {
	c.HTML(status, name, data)
}

// FuncMap is installed on the engine before templates are loaded.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"badgeClass": badgeClass,
		"dec":        func(i int) int { return i - 1 },
		"inc":        func(i int) int { return i + 1 },
	}
}

func badgeClass(tone string) string {
	switch tone {
	case "green":
		return "badge badge-green"
	case "yellow":
		return "badge badge-yellow"
	case "red":
		return "badge badge-red"
	case "blue":
		return "badge badge-blue"
	case "purple":
		return "badge badge-purple"
	default:
		return "badge badge-gray"
	}
}
