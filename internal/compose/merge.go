package compose

// DeepMerge recursively merges overlay into base and returns a new
// document, leaving both inputs unmodified. Mappings merge key by key;
// everything else (lists, scalars) is replaced by the overlay value.
func DeepMerge(base, overlay Document) Document {
	return Document(mergeMaps(base, overlay))
}

func mergeMaps(base, overlay map[string]any) map[string]any {
	result := make(map[string]any, len(base)+len(overlay))
	for k, v := range base {
		result[k] = v
	}

	for key, overlayValue := range overlay {
		baseValue, exists := result[key]
		if !exists {
			result[key] = deepCopyValue(overlayValue)
			continue
		}

		baseMap, baseIsMap := baseValue.(map[string]any)
		overlayMap, overlayIsMap := overlayValue.(map[string]any)
		if baseIsMap && overlayIsMap {
			result[key] = mergeMaps(baseMap, overlayMap)
			continue
		}

		result[key] = deepCopyValue(overlayValue)
	}

	return result
}

// DeepCopy returns a copy of doc sharing no mutable state with the
// original. Used wherever a caller mutates a document in place that
// another holder must not observe.
func DeepCopy(doc Document) Document {
	if doc == nil {
		return make(Document)
	}
	result := make(Document, len(doc))
	for k, v := range doc {
		result[k] = deepCopyValue(v)
	}
	return result
}

func deepCopyValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		result := make(map[string]any, len(v))
		for k, val := range v {
			result[k] = deepCopyValue(val)
		}
		return result
	case []any:
		result := make([]any, len(v))
		for i, val := range v {
			result[i] = deepCopyValue(val)
		}
		return result
	case []string:
		result := make([]string, len(v))
		copy(result, v)
		return result
	default:
		// Primitive types are immutable, return as-is
		return value
	}
}
