package fetch

import (
	"net/url"
	"path/filepath"
)

// Supported location schemes.
const (
	SchemeFile  = "file"
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
	SchemeS3    = "s3"
)

// Location is an include reference normalized to always carry an explicit
// scheme. Its string form is the cache key for a resolution run.
type Location struct {
	// Scheme is the transport scheme; never empty after Normalize.
	Scheme string

	// Host is the URL authority: the bucket for s3, the server for
	// http(s), and a leading "./" style component for some file URLs.
	Host string

	// Path is the URL path component.
	Path string
}

// Normalize parses an include reference into a Location. References
// without a scheme are taken as local file paths. It never fails:
// a string the URL grammar cannot parse becomes a file location whose
// path is the string itself.
func Normalize(reference string) Location {
	u, err := url.Parse(reference)
	if err != nil {
		return Location{Scheme: SchemeFile, Path: reference}
	}
	loc := Location{Scheme: u.Scheme, Host: u.Host, Path: u.Path}
	if loc.Scheme == "" {
		loc.Scheme = SchemeFile
	}
	if loc.Path == "" && u.Opaque != "" {
		loc.Path = u.Opaque
	}
	return loc
}

// Resolve canonicalizes a file location against baseDir: URL forms like
// file://db.yml or file://./sibling.yml put the first path component in
// the authority slot, so a non-empty host folds back into the path, and
// relative paths are anchored at baseDir. Non-file locations are returned
// unchanged. Canonical locations make the cache key independent of which
// document declared the include.
func (l Location) Resolve(baseDir string) Location {
	if l.Scheme != SchemeFile {
		return l
	}
	path := l.Path
	if l.Host != "" {
		path = l.Host + l.Path
	}
	return Location{Scheme: SchemeFile, Path: absPath(baseDir, path)}
}

// String renders the location in URL form, suitable for error messages
// and cache keys.
func (l Location) String() string {
	return l.Scheme + "://" + l.Host + l.Path
}

func absPath(baseDir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(baseDir, path)
}
