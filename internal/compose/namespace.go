package compose

import "strings"

// IncludeKey is the reserved top-level key declaring further documents to
// pull in. NamespaceKey is the reserved key a pre-namespaced fragment
// carries to record the namespace applied to it.
const (
	IncludeKey   = "include"
	NamespaceKey = "namespace"
)

// ServiceNames returns the set of top-level service keys in doc, that is
// every key except the reserved ones.
func ServiceNames(doc Document) map[string]bool {
	names := make(map[string]bool, len(doc))
	for key := range doc {
		if key == IncludeKey || key == NamespaceKey {
			continue
		}
		names[key] = true
	}
	return names
}

// QualifyServices renames every service key in doc to namespace.key,
// in place. The reserved keys are left alone so a not-yet-resolved
// include section survives qualification.
func QualifyServices(doc Document, namespace string) {
	keys := make([]string, 0, len(doc))
	for key := range doc {
		if key == IncludeKey || key == NamespaceKey {
			continue
		}
		keys = append(keys, key)
	}
	for _, key := range keys {
		doc[namespace+"."+key] = doc[key]
		delete(doc, key)
	}
}

// ResolveNamespacedLinks rewrites the links and volumes_from entries of
// every service whose name appears in serviceNames so that references to
// services local to the same document use the namespace-qualified name.
// References to names outside serviceNames are presumed to point at
// services defined elsewhere and are left unchanged.
//
// The membership test must use the pre-qualification key set, so callers
// run this before QualifyServices.
func ResolveNamespacedLinks(doc Document, namespace string, serviceNames map[string]bool) {
	for key, value := range doc {
		if !serviceNames[key] {
			continue
		}
		service, ok := value.(map[string]any)
		if !ok {
			continue
		}
		rewriteReferences(service, "links", namespace, serviceNames)
		rewriteReferences(service, "volumes_from", namespace, serviceNames)
	}
}

// rewriteReferences applies the name[:alias] rewrite to one reference
// field. The field is removed and only reinserted when non-empty,
// mirroring how path resolution keeps minimal document shape.
func rewriteReferences(service map[string]any, field, namespace string, serviceNames map[string]bool) {
	entries := stringEntries(service[field])
	if entries == nil {
		return
	}
	delete(service, field)

	for i, entry := range entries {
		name, alias, hasAlias := strings.Cut(entry, ":")
		if !serviceNames[name] {
			continue
		}
		name = namespace + "." + name
		if hasAlias {
			entries[i] = name + ":" + alias
		} else {
			entries[i] = name
		}
	}

	if len(entries) > 0 {
		service[field] = entries
	}
}
