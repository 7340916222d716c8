package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ziadkadry99/apidoc/internal/config"
	"github.com/ziadkadry99/apidoc/internal/doctree"
	"github.com/ziadkadry99/apidoc/internal/dom"
	"github.com/ziadkadry99/apidoc/internal/progress"
	"github.com/ziadkadry99/apidoc/internal/render"
	"github.com/ziadkadry99/apidoc/internal/templates"
	"github.com/ziadkadry99/apidoc/internal/toggle"
)

// Output file names.
const (
	IndexFile  = "index.html"
	StyleFile  = "style.css"
	ScriptFile = "script.js"
)

// Generator renders a documentation tree source into a static HTML site.
type Generator struct {
	cfg *config.Config
	log logrus.FieldLogger

	// Progress receives one update per root package.
	Progress progress.Reporter
	// LiveReload makes the page reconnect to /ws/reload.
	LiveReload bool
}

// NewGenerator creates a Generator for cfg.
func NewGenerator(cfg *config.Config, log logrus.FieldLogger) *Generator {
	return &Generator{
		cfg:      cfg,
		log:      log,
		Progress: progress.Nop{},
	}
}

// Result describes one site build.
type Result struct {
	Fragments []render.Fragment
	Stats     render.Stats
	Packages  int
	// Expanded is the number of sections shown at load time.
	Expanded int
	// Warnings are subtrees that were skipped and expand ids that matched
	// nothing. They never fail the build.
	Warnings []error
}

// pageData holds the data passed to the page template.
type pageData struct {
	Title      string
	Nav        template.HTML
	Content    template.HTML
	Stats      render.Stats
	Packages   int
	LiveReload bool
}

// Generate loads and renders the configured source and writes index.html,
// style.css and script.js to the output directory.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	tree, err := doctree.Load(g.cfg.Source)
	if err != nil {
		return nil, err
	}
	tree = doctree.Filter(tree, g.cfg.Include, g.cfg.Exclude)
	if tree.Packages.Len() == 0 {
		return nil, fmt.Errorf("no packages to render in %s", g.cfg.Source)
	}

	engine, err := templates.NewHTMLEngine(g.cfg.TemplatesDir)
	if err != nil {
		return nil, err
	}

	res, err := g.render(ctx, render.New(engine), tree)
	if err != nil {
		return nil, err
	}

	content := joinFragments(res.Fragments)
	if len(g.cfg.Expand) > 0 {
		content, err = g.expand(res, content)
		if err != nil {
			return nil, err
		}
	}

	nav := BuildPackageTree(tree)
	res.Packages = nav.Count()

	for _, w := range res.Warnings {
		g.log.WithError(w).Warn("rendered with warnings")
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	var page bytes.Buffer
	err = tmpl.Execute(&page, pageData{
		Title:      g.cfg.Title,
		Nav:        nav.ToHTML(),
		Content:    template.HTML(content),
		Stats:      res.Stats,
		Packages:   res.Packages,
		LiveReload: g.LiveReload,
	})
	if err != nil {
		return nil, fmt.Errorf("executing page template: %w", err)
	}

	if err := g.write(page.Bytes()); err != nil {
		return nil, err
	}

	g.log.WithFields(logrus.Fields{
		"output":    g.cfg.OutputDir,
		"packages":  res.Packages,
		"cards":     res.Stats.Cards,
		"sections":  res.Stats.Sections,
		"functions": res.Stats.Functions,
		"expanded":  res.Expanded,
		"warnings":  len(res.Warnings),
	}).Debug("site generated")

	return res, nil
}

// render renders the roots one at a time so progress can be reported and
// cancellation observed between them.
func (g *Generator) render(ctx context.Context, r *render.Renderer, tree *doctree.Tree) (*Result, error) {
	res := &Result{}
	names := tree.Packages.Names()

	g.Progress.Start(len(names))
	defer g.Progress.Finish()

	for i, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n, _ := tree.Packages.Get(name)
		one := doctree.NewNodeMap()
		one.Set(name, n)

		out, err := r.RenderTree(&doctree.Tree{Packages: one})
		res.Fragments = append(res.Fragments, out.Fragments...)
		res.Stats.Add(out.Stats)
		res.Warnings = append(res.Warnings, unjoin(err)...)

		g.Progress.Update(i+1, name)
	}
	return res, nil
}

// expand shows the configured sections by driving the toggle controller
// over the rendered markup.
func (g *Generator) expand(res *Result, content string) (string, error) {
	doc, err := dom.Parse(content)
	if err != nil {
		return "", err
	}
	ctl := toggle.New(doc)

	if g.cfg.ExpandsAll() {
		res.Expanded, err = ctl.ExpandAll()
	} else {
		res.Expanded, err = ctl.Expand(g.cfg.Expand...)
	}
	switch {
	case errors.Is(err, toggle.ErrUnbound):
		res.Warnings = append(res.Warnings, err)
	case err != nil:
		return "", fmt.Errorf("expanding sections: %w", err)
	}

	return doc.Render()
}

func (g *Generator) write(page []byte) error {
	if err := os.MkdirAll(g.cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	files := []struct {
		name string
		data []byte
	}{
		{IndexFile, page},
		{StyleFile, []byte(cssContent)},
		{ScriptFile, []byte(jsContent)},
	}
	for _, f := range files {
		path := filepath.Join(g.cfg.OutputDir, f.name)
		if err := os.WriteFile(path, f.data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}

func joinFragments(frags []render.Fragment) string {
	var b strings.Builder
	for _, f := range frags {
		b.WriteString(f.HTML)
		b.WriteString("\n")
	}
	return b.String()
}

// unjoin splits an errors.Join result back into its parts.
func unjoin(err error) []error {
	if err == nil {
		return nil
	}
	if j, ok := err.(interface{ Unwrap() []error }); ok {
		return j.Unwrap()
	}
	return []error{err}
}
