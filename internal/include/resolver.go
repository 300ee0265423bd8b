package include

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bdentino/compose-addons/internal/compose"
	"github.com/bdentino/compose-addons/internal/fetch"
)

// CycleError reports an include graph that references a location already
// being resolved on the current recursion path.
type CycleError struct {
	// Location is the revisited location.
	Location string

	// Chain lists the locations on the path that led back to it.
	Chain []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("include cycle detected at %s (via %s)", e.Location, strings.Join(e.Chain, " -> "))
}

// Flatten resolves every include declared by base, recursively, and
// merges the results into base, which is returned. baseDir anchors
// relative file references declared by base itself. A vestigial
// "namespace" key on base is dropped.
//
// On any error no partial result is produced; base may have been
// mutated and should be discarded.
func Flatten(ctx context.Context, base compose.Document, baseDir string, cfg fetch.Config) (compose.Document, error) {
	fetcher, err := fetch.New(cfg)
	if err != nil {
		return nil, err
	}

	r := &resolver{
		cache: newCache(func(loc fetch.Location) (compose.Document, error) {
			return fetcher.Fetch(ctx, loc)
		}),
	}

	delete(base, compose.NamespaceKey)
	fragments, err := r.resolveIncludes(base, baseDir, "", nil)
	if err != nil {
		return nil, err
	}
	return mergeDocuments(base, fragments), nil
}

type resolver struct {
	cache *cache
}

// resolveIncludes pops the include section from doc and resolves each
// entry, returning one fully-resolved document per entry. Entries are
// processed in lexicographic namespace order so the merge is
// deterministic. active is the chain of locations being resolved on the
// current recursion path, used to detect cycles.
func (r *resolver) resolveIncludes(doc compose.Document, baseDir, parent string, active []string) ([]compose.Document, error) {
	includes, err := popIncludes(doc)
	if err != nil {
		return nil, err
	}

	namespaces := make([]string, 0, len(includes))
	for namespace := range includes {
		namespaces = append(namespaces, namespace)
	}
	sort.Strings(namespaces)

	fragments := make([]compose.Document, 0, len(includes))
	for _, namespace := range namespaces {
		effective := namespace
		if parent != "" {
			effective = parent + "." + namespace
		}
		fragment, err := r.resolveInclude(includes[namespace], baseDir, effective, active)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, fragment)
	}
	return fragments, nil
}

// resolveInclude fetches one included document, namespaces it, resolves
// its own nested includes, and folds those children into it.
func (r *resolver) resolveInclude(reference, baseDir, namespace string, active []string) (compose.Document, error) {
	loc := fetch.Normalize(reference).Resolve(baseDir)

	key := loc.String()
	for _, inProgress := range active {
		if inProgress == key {
			return nil, &CycleError{Location: key, Chain: active}
		}
	}

	doc, err := r.cache.get(loc)
	if err != nil {
		return nil, err
	}

	if namespace != "" {
		compose.ResolveNamespacedLinks(doc, namespace, compose.ServiceNames(doc))
		compose.QualifyServices(doc, namespace)
	}

	// Nested includes restart the namespace chain: a grandchild is
	// prefixed only by its immediate parent's namespace.
	children, err := r.resolveIncludes(doc, fragmentBaseDir(loc), "", append(active, key))
	if err != nil {
		return nil, err
	}
	return mergeDocuments(doc, children), nil
}

// fragmentBaseDir picks the directory that anchors a fragment's own
// relative file includes: its containing directory for local fragments.
// Remote fragments have no local directory, so their nested file
// references resolve against the process working directory.
func fragmentBaseDir(loc fetch.Location) string {
	if loc.Scheme == fetch.SchemeFile {
		return filepath.Dir(loc.Path)
	}
	return "."
}

// popIncludes removes and returns doc's include section as a map from
// namespace to reference string. An absent section yields an empty map.
func popIncludes(doc compose.Document) (map[string]string, error) {
	raw, ok := doc[compose.IncludeKey]
	if !ok {
		return nil, nil
	}
	delete(doc, compose.IncludeKey)

	section, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("include section must be a mapping of namespace to reference, got %T", raw)
	}

	includes := make(map[string]string, len(section))
	for namespace, value := range section {
		reference, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("include %q: reference must be a string, got %T", namespace, value)
		}
		includes[namespace] = reference
	}
	return includes, nil
}

// mergeDocuments overlays each fragment's top-level keys onto base, in
// order, mutating and returning base. A later fragment overwrites keys
// contributed by an earlier one, and fragments overwrite same-named keys
// base itself defines; namespacing is what keeps collisions intentional.
func mergeDocuments(base compose.Document, fragments []compose.Document) compose.Document {
	for _, fragment := range fragments {
		for key, value := range fragment {
			base[key] = value
		}
	}
	return base
}
