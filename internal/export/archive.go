package export

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ironsheep/shadow-matte-mcp/internal/imaging"
)

// matteEntryName derives the archive entry name for a source path:
// "product.jpg" becomes "product_matte.png". seen tracks names already
// used so duplicate base names stay distinct within one archive.
func matteEntryName(path string, seen map[string]int) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	name := base + "_matte.png"
	if n := seen[name]; n > 0 {
		seen[name] = n + 1
		return fmt.Sprintf("%s_matte_%d.png", base, n+1)
	}
	seen[name] = 1
	return name
}

// BuildArchive packs the successful outputs of a batch into a zip archive
// and returns its raw bytes. Failed items are skipped; an archive with no
// successful items is an error.
func BuildArchive(items []BatchItem) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	seen := make(map[string]int)
	packed := 0
	for _, it := range items {
		if it.Err != nil || it.Result == nil {
			continue
		}
		data, err := imaging.EncodePNGBytes(it.Result.Output)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s: %w", it.Path, err)
		}
		w, err := zw.Create(matteEntryName(it.Path, seen))
		if err != nil {
			return nil, fmt.Errorf("failed to add archive entry for %s: %w", it.Path, err)
		}
		if _, err := w.Write(data); err != nil {
			return nil, fmt.Errorf("failed to write archive entry for %s: %w", it.Path, err)
		}
		packed++
	}

	if packed == 0 {
		return nil, fmt.Errorf("no successful results to archive")
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

// Archive is the JSON-facing form of a packed batch.
type Archive struct {
	Entries       int    `json:"entries"`
	ArchiveBase64 string `json:"archive_base64"`
	MimeType      string `json:"mime_type"`
	SizeBytes     int    `json:"size_bytes"`
}

// EncodeArchive builds a zip archive from the batch items and wraps it as
// a base64 result.
func EncodeArchive(items []BatchItem) (*Archive, error) {
	data, err := BuildArchive(items)
	if err != nil {
		return nil, err
	}
	entries := 0
	for _, it := range items {
		if it.Err == nil && it.Result != nil {
			entries++
		}
	}
	return &Archive{
		Entries:       entries,
		ArchiveBase64: base64.StdEncoding.EncodeToString(data),
		MimeType:      "application/zip",
		SizeBytes:     len(data),
	}, nil
}
