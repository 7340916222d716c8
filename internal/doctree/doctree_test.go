package doctree

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "jadn": {
    "title": "JADN Base",
    "text": ["Base JADN functions and objects"],
    "body": {
      "enum": {
        "CommentLevels": {
          "enum": [
            {"name": "ALL", "info": {"info": ["Show all comment for conversion"]}},
            {"name": "NONE", "info": {"info": ["Show no comment for conversion"]}}
          ]
        }
      },
      "function": {
        "jadn_load(fname)": {"return": {"type": "dict", "info": ["JADN formatted dictionary"]}, "fun_desc": ["Load a schema"]},
        "jadn_check(schema)": {"return": {"type": "dict"}, "fun_desc": ["Validate JADN structure"]}
      }
    }
  },
  "jadn.codec": {
    "title": "Codec",
    "body": {
      "class": [
        {
          "header": "Codec",
          "constructor": {"def": "Codec(schema, verbose_rec, verbose_str)", "info": ["SET ME"]},
          "function": [
            {"return": {"type": "SET ME"}, "fun_desc": {"def": "decode(self, datatype, sval)", "info": ["Decode serialized value"]}},
            {"return": {"type": "SET ME"}, "fun_desc": {"def": "encode(self, datatype, aval)", "info": ["Encode API value"]}}
          ]
        }
      ]
    }
  },
  "jadn.convert": {
    "body": {
      "package": {
        "jadn.convert.schema": {"title": "Schema", "body": {}},
        "jadn.convert.message": {"title": "Message", "body": {}}
      }
    }
  }
}`

func TestParseJSON(t *testing.T) {
	tree, err := Parse([]byte(sampleJSON), FormatJSON)
	require.NoError(t, err)

	assert.Equal(t, []string{"jadn", "jadn.codec", "jadn.convert"}, tree.Packages.Names())

	base, ok := tree.Packages.Get("jadn")
	require.True(t, ok)
	assert.Equal(t, "JADN Base", base.Title)
	assert.Equal(t, Lines{"Base JADN functions and objects"}, base.Text)

	require.Len(t, base.Body.Enum, 1)
	enum := base.Body.Enum[0]
	assert.Equal(t, "CommentLevels", enum.Header, "keyed enum entries take their key as header")
	require.Len(t, enum.Enum, 2)
	assert.Equal(t, "ALL", enum.Enum[0].Name)
	assert.Equal(t, Lines{"Show all comment for conversion"}, enum.Enum[0].Info)

	sigs := []string{}
	for _, p := range base.Body.Function.Pairs() {
		sigs = append(sigs, p.Signature)
	}
	assert.Equal(t, []string{"jadn_load(fname)", "jadn_check(schema)"}, sigs, "function order follows the source")

	fn, ok := base.Body.Function.Get("jadn_load(fname)")
	require.True(t, ok)
	assert.Equal(t, "dict", fn.Return.Type)
	assert.Equal(t, Lines{"Load a schema"}, fn.Description)
}

func TestParseClassFunctionList(t *testing.T) {
	tree, err := Parse([]byte(sampleJSON), FormatJSON)
	require.NoError(t, err)

	codec, _ := tree.Packages.Get("jadn.codec")
	require.Len(t, codec.Body.Class, 1)
	cls := codec.Body.Class[0]
	assert.Equal(t, "Codec", cls.Identity())
	require.NotNil(t, cls.Constructor)
	assert.Equal(t, "Codec(schema, verbose_rec, verbose_str)", cls.Constructor.Def)

	pairs := cls.Function.Pairs()
	require.Len(t, pairs, 2)
	assert.Equal(t, "decode(self, datatype, sval)", pairs[0].Signature)
	assert.Equal(t, Lines{"Decode serialized value"}, pairs[0].Descriptor.Description)
	assert.Equal(t, "encode(self, datatype, aval)", pairs[1].Signature)
}

func TestParseYAML(t *testing.T) {
	src := `
root:
  title: Root
  text: single line
  body:
    package:
      b: {title: B}
      a: {title: A}
    class:
      - name: Zeta
      - header: alpha
    function:
      "z(...)":
        return: {type: void}
        fun_desc: [last declared first]
      "a(...)":
        return: {type: int, info: count}
`
	tree, err := Parse([]byte(src), FormatYAML)
	require.NoError(t, err)

	root, ok := tree.Packages.Get("root")
	require.True(t, ok)
	assert.Equal(t, Lines{"single line"}, root.Text)
	assert.Equal(t, []string{"b", "a"}, root.Body.Package.Names())
	require.Len(t, root.Body.Class, 2)
	assert.Equal(t, "Zeta", root.Body.Class[0].Identity())
	assert.Equal(t, "alpha", root.Body.Class[1].Identity())

	pairs := root.Body.Function.Pairs()
	require.Len(t, pairs, 2)
	assert.Equal(t, "z(...)", pairs[0].Signature)
	assert.Equal(t, "a(...)", pairs[1].Signature)
	assert.Equal(t, Lines{"count"}, pairs[1].Descriptor.Return.Info)
}

func TestParseJavaScriptModule(t *testing.T) {
	src := "const jadn_api = " + sampleJSON + ";\n"
	tree, err := Parse([]byte(src), FormatJS)
	require.NoError(t, err)
	assert.Equal(t, 3, tree.Packages.Len())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("const x = 1;"), FormatJS)
	assert.Error(t, err)

	_, err = Parse([]byte("{}"), Format("toml"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "api.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleJSON), 0o644))

	tree, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, tree.Packages.Len())

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"api.json", FormatJSON},
		{"api.YAML", FormatYAML},
		{"api.yml", FormatYAML},
		{"docs/api/js/jadn_api.js", FormatJS},
		{"noext", FormatJSON},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectFormat(tt.path), tt.path)
	}
}

func TestBodyIsEmpty(t *testing.T) {
	var nilBody *Body
	assert.True(t, nilBody.IsEmpty())
	assert.True(t, (&Body{}).IsEmpty())
	assert.True(t, (&Body{Package: NewNodeMap(), Function: NewFunctionMap()}).IsEmpty())

	b := &Body{Function: NewFunctionMap()}
	b.Function.Set("f()", &FunctionDescriptor{})
	assert.False(t, b.IsEmpty())
}

func TestFilter(t *testing.T) {
	tree, err := Parse([]byte(sampleJSON), FormatJSON)
	require.NoError(t, err)

	t.Run("no patterns returns the tree", func(t *testing.T) {
		assert.Same(t, tree, Filter(tree, nil, nil))
	})

	t.Run("exclude drops a root", func(t *testing.T) {
		got := Filter(tree, nil, []string{"jadn.codec"})
		assert.Equal(t, []string{"jadn", "jadn.convert"}, got.Packages.Names())
	})

	t.Run("exclude drops a nested package", func(t *testing.T) {
		got := Filter(tree, nil, []string{"jadn/convert/message"})
		conv, ok := got.Packages.Get("jadn.convert")
		require.True(t, ok)
		assert.Equal(t, []string{"jadn.convert.schema"}, conv.Body.Package.Names())

		orig, _ := tree.Packages.Get("jadn.convert")
		assert.Equal(t, 2, orig.Body.Package.Len(), "source tree is untouched")
	})

	t.Run("include keeps ancestors of a match", func(t *testing.T) {
		got := Filter(tree, []string{"**/schema"}, nil)
		assert.Equal(t, []string{"jadn.convert"}, got.Packages.Names())
		conv, _ := got.Packages.Get("jadn.convert")
		assert.Equal(t, []string{"jadn.convert.schema"}, conv.Body.Package.Names())
	})

	t.Run("include keeps descendants of a match", func(t *testing.T) {
		got := Filter(tree, []string{"jadn.convert"}, nil)
		conv, ok := got.Packages.Get("jadn.convert")
		require.True(t, ok)
		assert.Equal(t, 2, conv.Body.Package.Len())
	})
}

func TestPackagePath(t *testing.T) {
	assert.Equal(t, "jadn/convert/schema", PackagePath("jadn.convert.schema"))
	assert.Equal(t, "jadn/convert/schema", childPath("jadn/convert", "jadn.convert.schema"))
	assert.Equal(t, "root/b", childPath("root", "b"))
}

func walkFixture() *Tree {
	convert := NewNodeMap()
	convert.Set("jadn.convert.schema", &Node{})
	convert.Set("jadn.convert.message", &Node{Body: &Body{}})

	jadn := NewNodeMap()
	jadn.Set("jadn.convert", &Node{Body: &Body{Package: convert}})
	jadn.Set("jadn.codec", &Node{})

	roots := NewNodeMap()
	roots.Set("jadn", &Node{Body: &Body{Package: jadn}})
	return &Tree{Packages: roots}
}

func TestWalk(t *testing.T) {
	var got []string
	err := Walk(walkFixture(), func(key string, depth int, n *Node) error {
		got = append(got, strings.Repeat(">", depth)+key)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"jadn",
		">jadn.codec",
		">jadn.convert",
		">>jadn.convert.message",
		">>jadn.convert.schema",
	}, got)
}

func TestWalkSkipChildren(t *testing.T) {
	var got []string
	err := Walk(walkFixture(), func(key string, depth int, n *Node) error {
		got = append(got, key)
		if key == "jadn.convert" {
			return SkipChildren
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"jadn", "jadn.codec", "jadn.convert"}, got)
}

func TestWalkStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	err := Walk(walkFixture(), func(string, int, *Node) error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
	assert.NoError(t, Walk(nil, nil))
}

func TestFind(t *testing.T) {
	tree := walkFixture()

	n, ok := Find(tree, "jadn.convert.message")
	require.True(t, ok)
	assert.NotNil(t, n.Body)

	_, ok = Find(tree, "jadn.missing")
	assert.False(t, ok)
}

func TestWalkRootsInDeclarationOrder(t *testing.T) {
	roots := NewNodeMap()
	roots.Set("zeta", &Node{})
	roots.Set("alpha", &Node{})

	var got []string
	require.NoError(t, Walk(&Tree{Packages: roots}, func(key string, _ int, _ *Node) error {
		got = append(got, key)
		return nil
	}))
	assert.Equal(t, []string{"zeta", "alpha"}, got)
}
