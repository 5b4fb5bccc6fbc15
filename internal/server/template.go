package server

import (
	"bytes"
	"embed"
	"html/template"
	"time"

	"github.com/k11v/mortar/internal/docbuild"
)

//go:embed template/*.html.tmpl
var templateFS embed.FS

type ExecuteBuildsPageParams struct {
	Name    string
	Version string
	Builds  []*docbuild.Build
}

func (h *handler) execute(name string, data any) ([]byte, error) {
	funcs := template.FuncMap{
		"time": func(t *time.Time) string {
			return t.UTC().Format("2006-01-02 15:04")
		},
	}

	buf := new(bytes.Buffer)
	tmpl := template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "template/*.html.tmpl"))
	err := tmpl.ExecuteTemplate(buf, name, data)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
