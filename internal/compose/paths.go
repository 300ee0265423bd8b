package compose

import "path/filepath"

// ResolveRelativePaths rewrites the file-relative fields of every service
// in doc to absolute paths anchored at baseDir. It runs once per local
// fetch, while the document's own directory is still known, so that the
// paths stay meaningful after the document is merged somewhere else.
//
// Fields handled: build, the host side of volumes entries, env_file
// entries, and extends.file. Empty volumes/env_file sequences are dropped
// rather than kept as empty lists.
func ResolveRelativePaths(doc Document, baseDir string) {
	for _, value := range doc {
		service, ok := value.(map[string]any)
		if !ok {
			continue
		}

		if build, ok := service["build"].(string); ok {
			service["build"] = absPath(baseDir, build)
		}

		if volumes := stringEntries(service["volumes"]); volumes != nil {
			delete(service, "volumes")
			for i, volume := range volumes {
				host, container, found := splitHostContainer(volume)
				if !found {
					continue
				}
				volumes[i] = absPath(baseDir, host) + ":" + container
			}
			if len(volumes) > 0 {
				service["volumes"] = volumes
			}
		}

		if envFiles := stringEntries(service["env_file"]); envFiles != nil {
			delete(service, "env_file")
			for i, envFile := range envFiles {
				envFiles[i] = absPath(baseDir, envFile)
			}
			if len(envFiles) > 0 {
				service["env_file"] = envFiles
			}
		}

		if extends, ok := service["extends"].(map[string]any); ok {
			if file, ok := extends["file"].(string); ok {
				extends["file"] = absPath(baseDir, file)
			}
		}
	}
}

// absPath anchors path at baseDir unless it is already absolute.
func absPath(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(baseDir, path)
}

// splitHostContainer splits a "host:container[:mode]" volume entry at the
// first colon. The container side keeps any mode suffix verbatim.
func splitHostContainer(volume string) (host, container string, found bool) {
	for i := 0; i < len(volume); i++ {
		if volume[i] == ':' {
			return volume[:i], volume[i+1:], true
		}
	}
	return "", "", false
}

// stringEntries converts a YAML sequence value to []string, or returns
// nil when the value is absent or not a sequence of scalars.
func stringEntries(value any) []string {
	list, ok := value.([]any)
	if !ok {
		return nil
	}
	result := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil
		}
		result = append(result, s)
	}
	return result
}
