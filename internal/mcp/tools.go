package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listPackagesTool defines the list_packages MCP tool.
var listPackagesTool = mcp.NewTool("list_packages",
	mcp.WithDescription("List every documented package as an indented tree, with the section anchor of each package that has a body."),
	mcp.WithString("prefix",
		mcp.Description("Only list packages whose dotted name starts with this prefix"),
	),
)

// describePackageTool defines the describe_package MCP tool.
var describePackageTool = mcp.NewTool("describe_package",
	mcp.WithDescription("Describe one package: its title, text, subpackages, enums, classes and function signatures."),
	mcp.WithString("package",
		mcp.Required(),
		mcp.Description("Dotted package name, e.g. jadn.convert.schema"),
	),
)

// renderSectionTool defines the render_section MCP tool.
var renderSectionTool = mcp.NewTool("render_section",
	mcp.WithDescription("Render one package as card HTML with collapsible sections, exactly as it appears in the generated site."),
	mcp.WithString("package",
		mcp.Required(),
		mcp.Description("Dotted package name, e.g. jadn.convert.schema"),
	),
	mcp.WithBoolean("expand",
		mcp.Description("Render every section expanded instead of hidden"),
	),
)
