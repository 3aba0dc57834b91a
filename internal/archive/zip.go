// Package archive packs generated files into a zip buffer for download.
package archive

import (
	"bytes"
	"fmt"
	"time"

	"github.com/klauspost/compress/zip"

	"sitegen_server/internal/types"
)

// ContentType is the media type of a Build result.
const ContentType = "application/zip"

// entryTime is stamped on every entry so equal inputs give equal bytes.
var entryTime = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// ArchiveError reports a failure while writing the zip stream.
type ArchiveError struct {
	Path string
	Err  error
}

func (e *ArchiveError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("archive: %v", e.Err)
	}
	return fmt.Sprintf("archive: %s: %v", e.Path, e.Err)
}

func (e *ArchiveError) Unwrap() error { return e.Err }

// Build writes one deflated entry per file, named by its path verbatim.
func Build(files types.GeneratedFiles) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, f := range files.Files {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     f.Path,
			Method:   zip.Deflate,
			Modified: entryTime,
		})
		if err != nil {
			return nil, &ArchiveError{Path: f.Path, Err: err}
		}
		if _, err := w.Write([]byte(f.Content)); err != nil {
			return nil, &ArchiveError{Path: f.Path, Err: err}
		}
	}

	if err := zw.Close(); err != nil {
		return nil, &ArchiveError{Err: err}
	}
	return buf.Bytes(), nil
}

// Filename is the download name suggested for an archive built at now.
func Filename(now time.Time) string {
	return fmt.Sprintf("site-%d.zip", now.UnixMilli())
}
