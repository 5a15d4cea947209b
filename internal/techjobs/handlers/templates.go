package handlers

import (
	"embed"
	"html/template"
	"strings"
)

//go:embed templates/*.html
var templateFS embed.FS

var columnLabels = map[string]string{
	"all":      "All",
	"name":     "Name",
	"employer": "Employer",
	"skill":    "Skill",
}

func columnLabel(column string) string {
	if label, ok := columnLabels[column]; ok {
		return label
	}
	return column
}

// parseTemplates loads every page template. Pages are addressed by their
// define name, e.g. "employers/view".
func parseTemplates() (*template.Template, error) {
	funcs := template.FuncMap{
		"columnLabel": columnLabel,
		"selected": func(ids []int, id int) bool {
			for _, v := range ids {
				if v == id {
					return true
				}
			}
			return false
		},
		"lower": strings.ToLower,
	}
	return template.New("techjobs").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}
