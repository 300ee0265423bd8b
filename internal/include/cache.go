// Package include implements the recursive include-resolution engine:
// fetching each referenced document at most once, namespacing its service
// keys and internal references, recursing into its own includes, and
// folding everything into one flat document.
package include

import (
	"github.com/bdentino/compose-addons/internal/compose"
	"github.com/bdentino/compose-addons/internal/fetch"
)

// fetchFunc retrieves and parses the document at a canonical location.
type fetchFunc func(fetch.Location) (compose.Document, error)

// cache memoizes fetched documents by canonical location for the
// lifetime of one resolution run, so a source referenced from several
// inclusion sites is retrieved and path-normalized exactly once.
type cache struct {
	docs  map[string]compose.Document
	fetch fetchFunc
}

func newCache(fn fetchFunc) *cache {
	return &cache{docs: make(map[string]compose.Document), fetch: fn}
}

// get returns an independent copy of the document at loc, fetching it on
// first use. Callers mutate the returned document in place (namespacing
// rewrites nested service maps), so the copy is deep: no inclusion site
// may observe another site's rewrites through the cache.
func (c *cache) get(loc fetch.Location) (compose.Document, error) {
	key := loc.String()
	doc, ok := c.docs[key]
	if !ok {
		var err error
		doc, err = c.fetch(loc)
		if err != nil {
			return nil, err
		}
		c.docs[key] = doc
	}
	return compose.DeepCopy(doc), nil
}
