package console

import (
	"fmt"
	"io"
	"strings"
	"text/template"
)

const listTemplate = `{{define "list" -}}
Leagues
{{- if not .Leagues}}
  (no leagues yet)
{{- else}}
{{printf "  %-3s %-20s %-30s %-24s %s" "#" "Title" "Description" "Members" "Actions"}}
{{- range $i, $l := .Leagues}}
{{printf "  %-3d %-20s %-30s %-24s" (inc $i) (clip $l.Title 20) (clip $l.Description 30) (clip $l.Members 24)}} edit {{inc $i}} | delete {{inc $i}} | invite {{inc $i}}
{{- end}}
{{- end}}
{{end}}`

const formTemplate = `{{define "form" -}}
{{- if eq .Mode.String "create" "edit"}}
== {{if eq .Mode.String "create"}}Create League{{else}}Edit League{{end}} ==
  title:       {{.Form.Title}}
  description: {{.Form.Description}}
{{- if eq .Mode.String "edit"}}
  members:     {{.Form.Members}}
{{- end}}
  [save] [cancel]
{{- else if eq .Mode.String "invite"}}
== Invite Friend{{with .Active}} to {{.Title}}{{end}} ==
  email:       {{.Form.Email}}
{{- with .EmailError}}
  ! {{.}}
{{- end}}
  [send] [cancel]
{{- end}}
{{end}}`

const pageTemplate = `{{template "list" .}}{{template "form" .}}`

// View renders a State as plain text: the league table followed by the
// form of the current mode, if any.
type View struct {
	tmpl *template.Template
}

// NewView parses the view templates.
func NewView() *View {
	funcs := template.FuncMap{
		"inc":  func(i int) int { return i + 1 },
		"clip": clip,
	}
	tmpl := template.Must(template.New("page").Funcs(funcs).Parse(pageTemplate))
	template.Must(tmpl.Parse(listTemplate))
	template.Must(tmpl.Parse(formTemplate))
	return &View{tmpl: tmpl}
}

// Render writes the list and the open form of s to w.
func (v *View) Render(w io.Writer, s *State) error {
	if err := v.tmpl.ExecuteTemplate(w, "page", s); err != nil {
		return fmt.Errorf("render view: %w", err)
	}
	return nil
}

// clip shortens s to n runes, marking the cut with "...".
func clip(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
