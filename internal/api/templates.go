package api

import (
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templatesFS embed.FS

func LoadTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		"add": func(a, b int) int { return a + b },
		// percent renders a probability as a percentage with two decimals.
		"percent": func(p float64) string {
			return fmt.Sprintf("%.2f%%", p*100)
		},
	}

	return template.New("base").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
}
