package doctree

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// NodeMap maps package names to nodes and remembers declaration order.
// A nil *NodeMap is a valid empty map.
type NodeMap struct {
	om *orderedmap.OrderedMap[string, *Node]
}

// NewNodeMap returns an empty NodeMap.
func NewNodeMap() *NodeMap {
	return &NodeMap{om: orderedmap.New[string, *Node]()}
}

// Set adds or replaces a node. Replacing keeps the original position.
func (m *NodeMap) Set(name string, n *Node) {
	if m.om == nil {
		m.om = orderedmap.New[string, *Node]()
	}
	m.om.Set(name, n)
}

// Get returns the node stored under name.
func (m *NodeMap) Get(name string) (*Node, bool) {
	if m == nil || m.om == nil {
		return nil, false
	}
	return m.om.Get(name)
}

// Len returns the number of entries.
func (m *NodeMap) Len() int {
	if m == nil || m.om == nil {
		return 0
	}
	return m.om.Len()
}

// Names returns the keys in declaration order.
func (m *NodeMap) Names() []string {
	if m == nil || m.om == nil {
		return nil
	}
	names := make([]string, 0, m.om.Len())
	for pair := m.om.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *NodeMap) UnmarshalJSON(data []byte) error {
	m.om = orderedmap.New[string, *Node]()
	return m.om.UnmarshalJSON(data)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *NodeMap) UnmarshalYAML(value *yaml.Node) error {
	m.om = orderedmap.New[string, *Node]()
	return m.om.UnmarshalYAML(value)
}

// MarshalJSON implements json.Marshaler.
func (m *NodeMap) MarshalJSON() ([]byte, error) {
	if m == nil || m.om == nil {
		return []byte("{}"), nil
	}
	return m.om.MarshalJSON()
}

// FunctionPair is one signature/descriptor entry of a FunctionMap.
type FunctionPair struct {
	Signature  string
	Descriptor *FunctionDescriptor
}

// FunctionMap maps function signatures to their descriptors in insertion
// order. A nil *FunctionMap is a valid empty map.
type FunctionMap struct {
	om *orderedmap.OrderedMap[string, *FunctionDescriptor]
}

// NewFunctionMap returns an empty FunctionMap.
func NewFunctionMap() *FunctionMap {
	return &FunctionMap{om: orderedmap.New[string, *FunctionDescriptor]()}
}

// Set adds or replaces a function.
func (f *FunctionMap) Set(signature string, fn *FunctionDescriptor) {
	if f.om == nil {
		f.om = orderedmap.New[string, *FunctionDescriptor]()
	}
	f.om.Set(signature, fn)
}

// Get returns the descriptor for signature.
func (f *FunctionMap) Get(signature string) (*FunctionDescriptor, bool) {
	if f == nil || f.om == nil {
		return nil, false
	}
	return f.om.Get(signature)
}

// Len returns the number of functions.
func (f *FunctionMap) Len() int {
	if f == nil || f.om == nil {
		return 0
	}
	return f.om.Len()
}

// Pairs returns the functions in insertion order.
func (f *FunctionMap) Pairs() []FunctionPair {
	if f == nil || f.om == nil {
		return nil
	}
	pairs := make([]FunctionPair, 0, f.om.Len())
	for p := f.om.Oldest(); p != nil; p = p.Next() {
		pairs = append(pairs, FunctionPair{Signature: p.Key, Descriptor: p.Value})
	}
	return pairs
}

// functionRecord is the list spelling of a function, used for class
// methods: the signature lives inside fun_desc.def.
type functionRecord struct {
	Return  ReturnInfo `json:"return" yaml:"return"`
	FunDesc struct {
		Def  string `json:"def" yaml:"def"`
		Info Lines  `json:"info" yaml:"info"`
	} `json:"fun_desc" yaml:"fun_desc"`
}

func (r functionRecord) descriptor() *FunctionDescriptor {
	return &FunctionDescriptor{Return: r.Return, Description: r.FunDesc.Info}
}

// UnmarshalJSON accepts either an object keyed by signature or a list of
// function records.
func (f *FunctionMap) UnmarshalJSON(data []byte) error {
	f.om = orderedmap.New[string, *FunctionDescriptor]()
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var records []functionRecord
		if err := json.Unmarshal(data, &records); err != nil {
			return fmt.Errorf("function list: %w", err)
		}
		for _, r := range records {
			f.om.Set(r.FunDesc.Def, r.descriptor())
		}
		return nil
	}
	return f.om.UnmarshalJSON(data)
}

// UnmarshalYAML accepts either a mapping keyed by signature or a sequence
// of function records.
func (f *FunctionMap) UnmarshalYAML(value *yaml.Node) error {
	f.om = orderedmap.New[string, *FunctionDescriptor]()
	if value.Kind == yaml.SequenceNode {
		var records []functionRecord
		if err := value.Decode(&records); err != nil {
			return fmt.Errorf("function list: %w", err)
		}
		for _, r := range records {
			f.om.Set(r.FunDesc.Def, r.descriptor())
		}
		return nil
	}
	return f.om.UnmarshalYAML(value)
}

// MarshalJSON implements json.Marshaler.
func (f *FunctionMap) MarshalJSON() ([]byte, error) {
	if f == nil || f.om == nil {
		return []byte("{}"), nil
	}
	return f.om.MarshalJSON()
}

// EntryList is the ordered sequence of class or enum entries of a Body.
// Sources may also spell it as an object keyed by entry name; the key then
// becomes the entry's header.
type EntryList []*Entry

// UnmarshalJSON implements json.Unmarshaler.
func (l *EntryList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '{' {
		keyed := orderedmap.New[string, *Entry]()
		if err := keyed.UnmarshalJSON(data); err != nil {
			return err
		}
		*l = fromKeyed(keyed)
		return nil
	}
	var list []*Entry
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*l = list
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (l *EntryList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.MappingNode {
		keyed := orderedmap.New[string, *Entry]()
		if err := keyed.UnmarshalYAML(value); err != nil {
			return err
		}
		*l = fromKeyed(keyed)
		return nil
	}
	var list []*Entry
	if err := value.Decode(&list); err != nil {
		return err
	}
	*l = list
	return nil
}

func fromKeyed(keyed *orderedmap.OrderedMap[string, *Entry]) EntryList {
	list := make(EntryList, 0, keyed.Len())
	for p := keyed.Oldest(); p != nil; p = p.Next() {
		e := p.Value
		if e == nil {
			e = &Entry{}
		}
		if e.Header == "" {
			e.Header = p.Key
		}
		list = append(list, e)
	}
	return list
}
