package redirecthandlers

import (
	"embed"
	"html/template"
)

// Имена HTML-шаблонов для c.HTML.
const (
	indexTemplate   = "index.tmpl"
	weblistTemplate = "weblist.tmpl"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Templates возвращает HTML-шаблоны страниц для gin.Engine.SetHTMLTemplate.
func Templates() *template.Template {
	return template.Must(template.ParseFS(templatesFS, "templates/*.tmpl"))
}
