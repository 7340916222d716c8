package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/apidoc/internal/doctree"
	"github.com/ziadkadry99/apidoc/internal/dom"
	"github.com/ziadkadry99/apidoc/internal/render"
	"github.com/ziadkadry99/apidoc/internal/templates"
	"github.com/ziadkadry99/apidoc/internal/toggle"
)

// handleListPackages lists the packages of the documentation tree.
func (s *Server) handleListPackages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prefix := request.GetString("prefix", "")

	tree, err := s.loadTree()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load documentation: %v", err)), nil
	}

	var sb strings.Builder
	count := 0
	_ = doctree.Walk(tree, func(key string, depth int, n *doctree.Node) error {
		if prefix != "" && !strings.HasPrefix(key, prefix) {
			return nil
		}
		count++
		sb.WriteString(strings.Repeat("  ", depth))
		sb.WriteString(key)
		if n != nil && n.Body != nil {
			sb.WriteString("  #" + render.AnchorID(key))
		}
		sb.WriteString("\n")
		return nil
	})

	if count == 0 {
		return mcp.NewToolResultText("No packages found."), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Found %d package(s):\n%s", count, sb.String())), nil
}

// handleDescribePackage summarises a single package as plain text.
func (s *Server) handleDescribePackage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("package")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: package"), nil
	}

	n, errResult := s.findPackage(name)
	if errResult != nil {
		return errResult, nil
	}
	return mcp.NewToolResultText(describe(name, n)), nil
}

// handleRenderSection renders a single package through the site templates.
func (s *Server) handleRenderSection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("package")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: package"), nil
	}
	expand := request.GetBool("expand", false)

	n, errResult := s.findPackage(name)
	if errResult != nil {
		return errResult, nil
	}

	engine, err := templates.NewHTMLEngine(s.cfg.TemplatesDir)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load templates: %v", err)), nil
	}

	// Render a copy headed by the package key; the tree is left untouched.
	node := *n
	node.Header = name
	markup, renderErr := render.New(engine).Render(&node)
	if renderErr != nil {
		s.log.WithError(renderErr).WithField("package", name).Warn("render_section: rendered with warnings")
	}

	if expand {
		doc, err := dom.Parse(markup)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to parse markup: %v", err)), nil
		}
		if _, err := toggle.New(doc).ExpandAll(); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to expand sections: %v", err)), nil
		}
		if markup, err = doc.Render(); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to render markup: %v", err)), nil
		}
	}

	result := mcp.NewToolResultText(markup)
	if renderErr != nil {
		result.Content = append(result.Content, mcp.NewTextContent("Warnings:\n"+renderErr.Error()))
	}
	return result, nil
}

// findPackage loads the tree and looks up name, returning a tool error
// result when either fails.
func (s *Server) findPackage(name string) (*doctree.Node, *mcp.CallToolResult) {
	tree, err := s.loadTree()
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("failed to load documentation: %v", err))
	}
	n, ok := doctree.Find(tree, name)
	if !ok {
		return nil, mcp.NewToolResultError(fmt.Sprintf(
			"No package named %q. Use list_packages to see the available packages.", name))
	}
	return n, nil
}

// describe formats a package as text optimized for AI agent consumption.
func describe(name string, n *doctree.Node) string {
	var sb strings.Builder
	sb.WriteString("Package: " + name + "\n")
	if n.Title != "" {
		sb.WriteString("Title: " + n.Title + "\n")
	}
	if len(n.Text) > 0 {
		sb.WriteString("\n" + strings.Join(n.Text, "\n") + "\n")
	}
	if n.Body == nil {
		return sb.String()
	}

	if names := n.Body.Package.Names(); len(names) > 0 {
		sb.WriteString("\nSubpackages:\n")
		for _, sub := range names {
			sb.WriteString("- " + sub + "\n")
		}
	}
	writeEntries(&sb, "Enums", n.Body.Enum)
	writeEntries(&sb, "Classes", n.Body.Class)
	writeFunctions(&sb, "Functions", "", n.Body.Function)
	return sb.String()
}

func writeEntries(sb *strings.Builder, label string, entries doctree.EntryList) {
	if len(entries) == 0 {
		return
	}
	sb.WriteString("\n" + label + ":\n")
	for _, e := range entries {
		if e == nil {
			continue
		}
		sb.WriteString("- " + e.Identity() + "\n")
		if e.Constructor != nil && e.Constructor.Def != "" {
			sb.WriteString("    constructor: " + e.Constructor.Def + "\n")
		}
		for _, v := range e.Enum {
			sb.WriteString("    " + v.Name)
			if len(v.Info) > 0 {
				sb.WriteString(": " + strings.Join(v.Info, " "))
			}
			sb.WriteString("\n")
		}
		writeFunctions(sb, "", "    ", e.Function)
	}
}

func writeFunctions(sb *strings.Builder, label, indent string, fns *doctree.FunctionMap) {
	if fns.Len() == 0 {
		return
	}
	if label != "" {
		sb.WriteString("\n" + label + ":\n")
	}
	for _, f := range fns.Pairs() {
		sb.WriteString(indent + "- " + f.Signature)
		if f.Descriptor != nil && f.Descriptor.Return.Type != "" {
			sb.WriteString(" -> " + f.Descriptor.Return.Type)
		}
		sb.WriteString("\n")
	}
}
