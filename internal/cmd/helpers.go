package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bdentino/compose-addons/internal/compose"
	"github.com/bdentino/compose-addons/internal/fileutil"
)

// stdio is the conventional path meaning stdin or stdout.
const stdio = "-"

// readInput parses the compose document at path, reading stdin when path
// is "-" or empty.
func readInput(cmd *cobra.Command, path string) (compose.Document, error) {
	if path == "" || path == stdio {
		return compose.Read(cmd.InOrStdin())
	}

	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer fh.Close()

	doc, err := compose.Read(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// writeOutput serializes doc to path, or to stdout when path is "-".
// File writes are atomic so an error never leaves a partial document.
func writeOutput(cmd *cobra.Command, path string, doc compose.Document) error {
	if path == "" || path == stdio {
		return compose.Write(cmd.OutOrStdout(), doc)
	}

	var buf bytes.Buffer
	if err := compose.Write(&buf, doc); err != nil {
		return err
	}
	if err := fileutil.WriteFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
