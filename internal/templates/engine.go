package templates

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/yuin/goldmark"

	"github.com/ziadkadry99/apidoc/internal/doctree"
)

// Names of the templates every Engine must provide.
const (
	Card         = "card"
	Toggle       = "toggle"
	Constructor  = "constructor"
	EnumList     = "enum-list"
	FunctionList = "function-list"
)

// Names lists every required template in a stable order.
var Names = []string{Card, Toggle, Constructor, EnumList, FunctionList}

// Engine turns a data record into markup for a named template. Given the
// same data a template must return the same markup.
type Engine interface {
	Render(name string, data any) (string, error)
}

// CardData is the record for the card template. Body is empty for a leaf.
type CardData struct {
	Header template.HTML
	Title  string
	Text   []string
	Body   template.HTML
}

// ToggleData is the record for the toggle template: the header text and the
// id of the section the control governs.
type ToggleData struct {
	Header string
	Target string
}

// EnumListData is the record for the enum-list template.
type EnumListData struct {
	Enum []doctree.EnumValue
}

// FunctionListData is the record for the function-list template.
type FunctionListData struct {
	Functions []doctree.FunctionPair
}

// HTMLEngine implements Engine with html/template. The built-in sources can
// be replaced one by one with <name>.tmpl files from an override directory.
type HTMLEngine struct {
	set *template.Template
	md  goldmark.Markdown
}

// NewHTMLEngine parses the built-in templates, replacing any that have a
// matching <name>.tmpl in overrideDir. An empty overrideDir uses only the
// built-ins.
func NewHTMLEngine(overrideDir string) (*HTMLEngine, error) {
	e := &HTMLEngine{md: newMarkdown()}
	e.set = template.New("apidoc").Funcs(template.FuncMap{
		"markdown": e.markdown,
	})

	for _, name := range Names {
		src, err := source(name, overrideDir)
		if err != nil {
			return nil, err
		}
		if _, err := e.set.New(name).Parse(src); err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", name, err)
		}
	}
	return e, nil
}

// source returns the override for name when one exists, else the built-in.
func source(name, overrideDir string) (string, error) {
	if overrideDir != "" {
		path := filepath.Join(overrideDir, name+".tmpl")
		data, err := os.ReadFile(path)
		if err == nil {
			return string(data), nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("reading template override %s: %w", path, err)
		}
	}
	return builtin[name], nil
}

// Render executes the named template.
func (e *HTMLEngine) Render(name string, data any) (string, error) {
	t := e.set.Lookup(name)
	if t == nil {
		return "", fmt.Errorf("template %q not defined", name)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering %s template: %w", name, err)
	}
	return buf.String(), nil
}
