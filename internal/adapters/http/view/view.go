// Package view renders the contact form component to HTML. Templates are
// embedded in the binary and parsed once at startup.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/jsamuelsen11/contact-form/internal/domain/contact"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Paths the rendered markup posts to.
const (
	SubmitPath = "/contact/submit"
	ResetPath  = "/contact/reset"
	LivePath   = "/contact/live"
)

// Renderer executes the embedded templates. It is safe for concurrent use.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// PageOptions controls page-level rendering.
type PageOptions struct {
	// Live enables the websocket transport in the page script.
	Live bool
}

// Page renders the full HTML document around the component.
func (r *Renderer) Page(w io.Writer, snap contact.Snapshot, opts PageOptions) error {
	data := pageView{
		Live:      opts.Live,
		LivePath:  LivePath,
		Component: newComponentView(snap),
	}
	if err := r.tmpl.ExecuteTemplate(w, "page", data); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	return nil
}

// Component renders only the component fragment: the edit form, or the
// results view once the form was submitted.
func (r *Renderer) Component(w io.Writer, snap contact.Snapshot) error {
	if err := r.tmpl.ExecuteTemplate(w, "component", newComponentView(snap)); err != nil {
		return fmt.Errorf("rendering component: %w", err)
	}
	return nil
}

// ComponentHTML is Component rendered to a string.
func (r *Renderer) ComponentHTML(snap contact.Snapshot) (string, error) {
	var buf bytes.Buffer
	if err := r.Component(&buf, snap); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type pageView struct {
	Live      bool
	LivePath  string
	Component componentView
}

type componentView struct {
	Submitted bool
	Edit      editView
	Results   resultsView
}

type editView struct {
	SubmitPath string
	Fields     []fieldView
}

type fieldView struct {
	ID        string
	Name      string
	Label     string
	Type      string
	Value     string
	Error     string
	Multiline bool
}

type resultsView struct {
	ResetPath  string
	FirstName  string
	LastName   string
	Email      string
	Message    string
	HasMessage bool
}

func newComponentView(snap contact.Snapshot) componentView {
	if snap.Submitted && snap.Summary != nil {
		s := snap.Summary
		return componentView{
			Submitted: true,
			Results: resultsView{
				ResetPath:  ResetPath,
				FirstName:  s.FirstName,
				LastName:   s.LastName,
				Email:      s.Email,
				Message:    s.Message,
				HasMessage: s.HasMessage(),
			},
		}
	}

	fields := contact.Fields()
	out := make([]fieldView, 0, len(fields))
	for _, f := range fields {
		fv := fieldView{
			ID:    f.String(),
			Name:  f.String(),
			Label: f.Label(),
			Type:  "text",
			Value: snap.Values.Get(f),
			Error: snap.Errors[f],
		}
		switch f {
		case contact.FieldEmail:
			fv.Type = "email"
		case contact.FieldMessage:
			fv.Multiline = true
		}
		out = append(out, fv)
	}
	return componentView{Edit: editView{SubmitPath: SubmitPath, Fields: out}}
}
