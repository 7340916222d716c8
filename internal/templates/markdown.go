package templates

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
)

func newMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
	)
}

// markdown renders description lines as Markdown, one paragraph per line.
// Raw HTML in the source is dropped, not rendered.
func (e *HTMLEngine) markdown(lines []string) (template.HTML, error) {
	if len(lines) == 0 {
		return "", nil
	}
	var buf bytes.Buffer
	if err := e.md.Convert([]byte(strings.Join(lines, "\n\n")), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
