// internal/writers/sink.go
package writers

import (
	"io"
	"os"
)

// Create opens the output sink for path, creating or truncating a regular
// file. "-" selects stdout; the returned closer then leaves stdout open.
func Create(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
