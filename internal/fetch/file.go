package fetch

import (
	"os"
	"path/filepath"

	"github.com/bdentino/compose-addons/internal/compose"
)

// fetchFile reads and parses a local document. The location's path is
// already absolute (Location.Resolve ran before the cache lookup), so the
// file's own directory is known here and relative paths inside the
// document are resolved against it before anyone else sees the document.
func fetchFile(loc Location) (compose.Document, error) {
	fh, err := os.Open(loc.Path)
	if err != nil {
		return nil, &Error{URL: loc.String(), Err: err}
	}
	defer fh.Close()

	doc, err := compose.Read(fh)
	if err != nil {
		return nil, err
	}
	compose.ResolveRelativePaths(doc, filepath.Dir(loc.Path))
	return doc, nil
}
