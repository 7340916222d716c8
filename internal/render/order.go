package render

import (
	"sort"
	"strings"

	"github.com/ziadkadry99/apidoc/internal/doctree"
)

// AnchorIDSuffix is appended to every derived section id.
const AnchorIDSuffix = "-api"

// AnchorID derives the id of a collapsible section from a node header:
// dots become underscores and AnchorIDSuffix is appended, so
// "jadn.convert.schema" becomes "jadn_convert_schema-api". Headers that
// collide after escaping produce colliding ids.
func AnchorID(header string) string {
	return strings.ReplaceAll(header, ".", "_") + AnchorIDSuffix
}

// sortedNames returns the package names in ascending byte order.
func sortedNames(m *doctree.NodeMap) []string {
	names := m.Names()
	sort.Strings(names)
	return names
}

// compareIdentity orders two identities as if both were upper-cased. A
// missing identity is incomparable and reported as equal.
func compareIdentity(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	return strings.Compare(strings.ToUpper(a), strings.ToUpper(b))
}

// sortedEntries returns a copy of entries ordered by case-normalised
// identity. Entries without an identity cannot be compared; they keep
// their original positions and the named entries are sorted around them.
// Equal identities keep their relative order.
func sortedEntries(entries doctree.EntryList) []*doctree.Entry {
	out := make([]*doctree.Entry, len(entries))
	copy(out, entries)

	var slots []int
	var named []*doctree.Entry
	for i, e := range out {
		if e.Identity() != "" {
			slots = append(slots, i)
			named = append(named, e)
		}
	}

	sort.SliceStable(named, func(i, j int) bool {
		return compareIdentity(named[i].Identity(), named[j].Identity()) < 0
	})
	for k, i := range slots {
		out[i] = named[k]
	}
	return out
}
