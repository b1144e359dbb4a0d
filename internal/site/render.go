package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/render"

	"github.com/dhruvvakharia/portfolio/internal/content"
)

//go:embed templates/*.html
var embedded embed.FS

// Templates is the compiled-in template set.
func Templates() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// projectCard is the data of one card in a project grid.
type projectCard struct {
	Project content.Project
	Index   int
}

var funcs = template.FuncMap{
	"words": strings.Fields,
	"join":  strings.Join,
	"inc":   func(i int) int { return i + 1 },
	"card":  func(p content.Project, i int) projectCard { return projectCard{Project: p, Index: i} },
	// active reports whether href is the current section of path.
	"active": func(path, href string) bool {
		if href == "/" {
			return path == "/"
		}
		return path == href || strings.HasPrefix(path, href+"/")
	},
}

func parse(fsys fs.FS) (*template.Template, error) {
	t, err := template.New("site").Funcs(funcs).ParseFS(fsys, "*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return t, nil
}

// Renderer holds the parsed templates. Reload swaps them in place, so a
// renderer can back a running server while its files are edited.
type Renderer struct {
	fsys fs.FS

	mu   sync.RWMutex
	tmpl *template.Template
}

// NewRenderer parses every .html file at the top of fsys.
func NewRenderer(fsys fs.FS) (*Renderer, error) {
	t, err := parse(fsys)
	if err != nil {
		return nil, err
	}
	return &Renderer{fsys: fsys, tmpl: t}, nil
}

// Reload re-parses the templates. On error the previous set stays live.
func (r *Renderer) Reload() error {
	t, err := parse(r.fsys)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.tmpl = t
	r.mu.Unlock()
	return nil
}

func (r *Renderer) current() *template.Template {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tmpl
}

// Execute renders name into w. Output is buffered so a failing template
// writes nothing.
func (r *Renderer) Execute(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.current().ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Instance implements gin's render.HTMLRender.
func (r *Renderer) Instance(name string, data any) render.Render {
	return render.HTML{Template: r.current(), Name: name, Data: data}
}
