package content

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/adrg/frontmatter"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed casestudies/*.md
var caseStudyFS embed.FS

// CaseStudy is the long-form write-up shown on a project's detail page.
type CaseStudy struct {
	ProjectID  string        `yaml:"-"`
	Role       string        `yaml:"role"`
	Duration   string        `yaml:"duration"`
	Team       string        `yaml:"team"`
	Highlights []string      `yaml:"highlights"`
	Body       template.HTML `yaml:"-"`
}

var (
	yamlMatter = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

	markdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)

	titleCaser = cases.Title(language.English)
)

var (
	loadStudies sync.Once
	studies     map[string]CaseStudy
	studiesErr  error
)

// CaseStudyFor returns the write-up for project id, or ErrNotFound when the
// project has none.
func CaseStudyFor(id string) (CaseStudy, error) {
	loadStudies.Do(func() {
		studies, studiesErr = LoadCaseStudies(caseStudyFS, "casestudies")
	})
	if studiesErr != nil {
		return CaseStudy{}, studiesErr
	}
	cs, ok := studies[id]
	if !ok {
		return CaseStudy{}, fmt.Errorf("case study %q: %w", id, ErrNotFound)
	}
	cs.Highlights = append([]string(nil), cs.Highlights...)
	return cs, nil
}

// LoadCaseStudies parses every .md file under dir, keyed by file name without
// the extension. Every file must name an existing project.
func LoadCaseStudies(fsys fs.FS, dir string) (map[string]CaseStudy, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading case studies: %w", err)
	}
	out := make(map[string]CaseStudy, len(entries))
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".md" {
			continue
		}
		id := strings.TrimSuffix(e.Name(), ".md")
		if _, ok := ProjectByID(id); !ok {
			return nil, fmt.Errorf("case study %s: no project with that id", e.Name())
		}
		src, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading case study %s: %w", e.Name(), err)
		}
		cs, err := ParseCaseStudy(id, src)
		if err != nil {
			return nil, err
		}
		out[id] = cs
	}
	return out, nil
}

// ParseCaseStudy decodes the YAML front matter of src and renders the rest as
// markdown.
func ParseCaseStudy(id string, src []byte) (CaseStudy, error) {
	var cs CaseStudy
	body, err := frontmatter.MustParse(bytes.NewReader(src), &cs, yamlMatter)
	if err != nil {
		return CaseStudy{}, fmt.Errorf("case study %s front matter: %w", id, err)
	}
	var buf bytes.Buffer
	if err := markdown.Convert(body, &buf); err != nil {
		return CaseStudy{}, fmt.Errorf("case study %s markdown: %w", id, err)
	}
	cs.ProjectID = id
	cs.Role = titleCaser.String(strings.TrimSpace(cs.Role))
	cs.Body = template.HTML(buf.String())
	return cs, nil
}
