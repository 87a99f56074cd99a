package resource

import (
	"fmt"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"

	"profile-editor/internal/core"
)

// cacheSize bounds how many resource files stay memoized per session.
const cacheSize = 5

// Cache memoizes resource markup by path so repeated dialog invocations do
// not re-read (or re-translate) the same file.
type Cache struct {
	entries         *lru.Cache[string, string]
	readFile        func(string) ([]byte, error)
	translate       func(string) string
	translateOnLoad bool
}

// NewCache creates a resource cache. The translate callback is applied to
// translatable markup nodes on platforms without native catalog support.
func NewCache(translate func(string) string) *Cache {
	entries, _ := lru.New[string, string](cacheSize)
	return &Cache{
		entries:         entries,
		readFile:        os.ReadFile,
		translate:       translate,
		translateOnLoad: core.IsWin,
	}
}

// Load returns the markup at path, from cache when possible.
func (c *Cache) Load(path string) (string, error) {
	if c == nil {
		return "", fmt.Errorf("resource cache is nil")
	}
	if text, ok := c.entries.Get(path); ok {
		return text, nil
	}
	data, err := c.readFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read resource %s: %w", path, err)
	}
	text := string(data)
	if c.translateOnLoad && c.translate != nil {
		text, err = TranslateMarkup(text, c.translate)
		if err != nil {
			return "", fmt.Errorf("failed to translate resource %s: %w", path, err)
		}
	}
	c.entries.Add(path, text)
	return text, nil
}

// Len reports how many resources are currently memoized.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.entries.Len()
}

// Purge drops all memoized resources.
func (c *Cache) Purge() {
	if c != nil {
		c.entries.Purge()
	}
}
