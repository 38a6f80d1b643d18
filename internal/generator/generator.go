package generator

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/OCharnyshevich/registrygen/internal/config"
	"github.com/OCharnyshevich/registrygen/internal/sanitize"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var (
	// ErrInvalidIdentifier is returned when a record's name does not
	// sanitize to an exported Go identifier.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrIdentifierCollision is returned when two records of a category
	// share a constant name or an ID.
	ErrIdentifierCollision = errors.New("identifier collision")
)

// Category describes how one registry kind is parsed and emitted.
type Category[R any] struct {
	Package string // package name, output directory and template prefix
	Kind    string // record type name in the generated code
	Input   string // file name of the JSON dump

	Parse  func([]byte) ([]R, error)
	Source func(R) string // string the constant name is derived from
	ID     func(R) int    // lookup key

	// Comment, if set, returns a trailing comment for the record's constant.
	Comment func(R) string
}

func (c Category[R]) template() string { return c.Package + ".go.tmpl" }

// Output is the path of the generated file relative to the output root.
func (c Category[R]) Output() string { return filepath.Join(c.Package, c.Package+".go") }

// Resource is the path the generated code loads its data from.
func (c Category[R]) Resource() string { return path.Join("data", c.Input) }

// Entry is one generated constant.
type Entry struct {
	Ident   string
	ID      int
	Comment string
}

// Entries derives one constant per record, in record order. Empty, invalid
// and duplicate names, as well as duplicate IDs, are rejected.
func (c Category[R]) Entries(records []R) ([]Entry, error) {
	entries := make([]Entry, 0, len(records))
	idents := make(map[string]int, len(records))
	ids := make(map[int]int, len(records))

	for i, r := range records {
		src := c.Source(r)
		ident := sanitize.Identifier(src)
		if !sanitize.Valid(ident) {
			return nil, fmt.Errorf("%s record %d: %w: %q from %q", c.Package, i, ErrInvalidIdentifier, ident, src)
		}

		id := c.ID(r)
		if prev, ok := idents[ident]; ok {
			return nil, fmt.Errorf("%s records %d and %d: %w: both named %s", c.Package, prev, i, ErrIdentifierCollision, ident)
		}
		if prev, ok := ids[id]; ok {
			return nil, fmt.Errorf("%s records %d and %d: %w: both have ID %d", c.Package, prev, i, ErrIdentifierCollision, id)
		}
		idents[ident] = i
		ids[id] = i

		e := Entry{Ident: ident, ID: id}
		if c.Comment != nil {
			e.Comment = c.Comment(r)
		}
		entries = append(entries, e)
	}

	return entries, nil
}

// Generator renders categories into Go source.
type Generator struct {
	cfg  *config.Config
	tmpl *template.Template
}

func New(cfg *config.Config) (*Generator, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Generator{cfg: cfg, tmpl: tmpl}, nil
}

type templateData struct {
	Package    string
	Kind       string
	Version    string
	Provenance string
	Resource   string
	Imports    importPaths
	Entries    []Entry
}

type importPaths struct {
	Registry  string
	Resources string
	Blocks    string
}

// Emit renders the generated file for records. The output depends only on
// records, the category and the generator config.
func Emit[R any](g *Generator, c Category[R], records []R) ([]byte, error) {
	entries, err := c.Entries(records)
	if err != nil {
		return nil, err
	}

	td := templateData{
		Package:    c.Package,
		Kind:       c.Kind,
		Version:    g.cfg.Version,
		Provenance: g.cfg.Provenance,
		Resource:   c.Resource(),
		Imports: importPaths{
			Registry:  g.cfg.RegistryImport,
			Resources: g.cfg.ResourcesImport,
			Blocks:    path.Join(g.cfg.OutImport, Blocks.Package),
		},
		Entries: entries,
	}

	var buf bytes.Buffer
	if err := g.tmpl.ExecuteTemplate(&buf, c.template(), td); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", c.template(), err)
	}

	out, err := imports.Process(c.Output(), buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", c.Output(), err)
	}

	return out, nil
}
