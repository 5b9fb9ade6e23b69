package codepage

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/derekparker/trie"
)

// dialects indexes registered tables by lower-cased name.
type dialects struct {
	mu    sync.RWMutex
	names *trie.Trie
}

var registry = &dialects{names: trie.New()}

func init() {
	for _, t := range []*Table{CP437Control, CP437Wingdings} {
		err := Register(t)
		assert(err == nil, "built-in dialects must register")
	}
}

// Register makes t available to Lookup under its name. Names are
// case-insensitive. Registering a name twice returns ErrDuplicateDialect.
func Register(t *Table) error {
	key := strings.ToLower(t.Name())
	if key == "" {
		return fmt.Errorf("%w: dialect without name", ErrInvalidMapping)
	}
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if _, found := registry.names.Find(key); found {
		return fmt.Errorf("%w: %s", ErrDuplicateDialect, key)
	}
	registry.names.Add(key, t)
	tracer().Debugf("registered code page %s", key)
	return nil
}

// Lookup returns the dialect registered under name.
func Lookup(name string) (*Table, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	node, found := registry.names.Find(strings.ToLower(name))
	if !found {
		return nil, false
	}
	t, ok := node.Meta().(*Table)
	return t, ok
}

// Names returns the sorted names of all registered dialects starting with
// prefix. An empty prefix selects all dialects.
func Names(prefix string) []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	var names []string
	if prefix == "" {
		names = registry.names.Keys()
	} else {
		names = registry.names.PrefixSearch(strings.ToLower(prefix))
	}
	sort.Strings(names)
	return names
}
