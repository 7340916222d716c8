package doctree

// Node is a single documentation entry: a package or namespace with an
// optional nested body. A nil Body marks a leaf that renders as a plain card.
type Node struct {
	Header string `json:"header,omitempty" yaml:"header,omitempty"`
	Title  string `json:"title,omitempty" yaml:"title,omitempty"`
	Text   Lines  `json:"text,omitempty" yaml:"text,omitempty"`
	Body   *Body  `json:"body,omitempty" yaml:"body,omitempty"`
}

// Body holds the four optional child slots of a Node. Each slot is
// independently present or absent; an empty slot renders like an absent one.
type Body struct {
	Package  *NodeMap     `json:"package,omitempty" yaml:"package,omitempty"`
	Enum     EntryList    `json:"enum,omitempty" yaml:"enum,omitempty"`
	Class    EntryList    `json:"class,omitempty" yaml:"class,omitempty"`
	Function *FunctionMap `json:"function,omitempty" yaml:"function,omitempty"`
}

// IsEmpty reports whether none of the slots carry content.
func (b *Body) IsEmpty() bool {
	if b == nil {
		return true
	}
	return b.Package.Len() == 0 && len(b.Enum) == 0 && len(b.Class) == 0 && b.Function.Len() == 0
}

// Entry is a class or enum grouping. It looks like a Node but carries its
// own constructor, nested enum values and function mapping instead of a Body.
type Entry struct {
	Header      string       `json:"header,omitempty" yaml:"header,omitempty"`
	Name        string       `json:"name,omitempty" yaml:"name,omitempty"`
	Title       string       `json:"title,omitempty" yaml:"title,omitempty"`
	Text        Lines        `json:"text,omitempty" yaml:"text,omitempty"`
	Constructor *Constructor `json:"constructor,omitempty" yaml:"constructor,omitempty"`
	Enum        []EnumValue  `json:"enum,omitempty" yaml:"enum,omitempty"`
	Function    *FunctionMap `json:"function,omitempty" yaml:"function,omitempty"`
}

// Identity returns the entry's display name: its header, or its name when
// the header is missing. Entries with neither return "".
func (e *Entry) Identity() string {
	if e == nil {
		return ""
	}
	if e.Header != "" {
		return e.Header
	}
	return e.Name
}

// Constructor documents how an entry is constructed.
type Constructor struct {
	Def  string `json:"def" yaml:"def"`
	Info Lines  `json:"info,omitempty" yaml:"info,omitempty"`
}

// EnumValue is one member of a nested enum description.
type EnumValue struct {
	Name string `json:"name" yaml:"name"`
	Info Lines  `json:"info,omitempty" yaml:"info,omitempty"`
}

// ReturnInfo describes what a function returns.
type ReturnInfo struct {
	Type string `json:"type" yaml:"type"`
	Info Lines  `json:"info,omitempty" yaml:"info,omitempty"`
}

// FunctionDescriptor documents a single function, keyed by its signature in
// a FunctionMap.
type FunctionDescriptor struct {
	Return      ReturnInfo `json:"return" yaml:"return"`
	Description Lines      `json:"fun_desc,omitempty" yaml:"fun_desc,omitempty"`
}

// Tree is the top-level documentation document: root packages in the order
// they were declared.
type Tree struct {
	Packages *NodeMap
}
