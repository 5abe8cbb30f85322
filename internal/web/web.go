package web

import (
	"embed"
	"fmt"
	"html/template"
	"time"

	"fitness-club/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses every page template with the shared helpers.
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(templateFS, "templates/*.html")
}

// MustTemplates is Templates for program start-up and tests.
func MustTemplates() *template.Template {
	t, err := Templates()
	if err != nil {
		panic(err)
	}
	return t
}

func FuncMap() template.FuncMap {
	return template.FuncMap{
		"date":     formatDate,
		"dateTime": formatDateTime,
		"money":    func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"blank": func(v any) any {
			switch n := v.(type) {
			case int:
				if n == 0 {
					return ""
				}
			case float64:
				if n == 0 {
					return ""
				}
			}
			return v
		},
		"errorFor": func(errs map[string]string, field string) string {
			return errs[field]
		},
	}
}

func formatDate(v any) string {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return ""
		}
		return t.Format(model.DateLayout)
	case *time.Time:
		if t == nil || t.IsZero() {
			return ""
		}
		return t.Format(model.DateLayout)
	}
	return ""
}

func formatDateTime(v any) string {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02 15:04")
	case *time.Time:
		if t == nil || t.IsZero() {
			return ""
		}
		return t.Format("2006-01-02 15:04")
	}
	return ""
}
