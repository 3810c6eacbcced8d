package gdacs

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// extractShapefile writes the downloaded archive into the download directory
// and extracts its members next to it.
func (c *Client) extractShapefile(name string, body []byte) error {
	if err := os.MkdirAll(c.downloadDir, 0o755); err != nil {
		return fmt.Errorf("%s: create download dir: %w", opGetEvent, err)
	}

	archivePath := filepath.Join(c.downloadDir, name)
	if err := os.WriteFile(archivePath, body, 0o644); err != nil {
		return fmt.Errorf("%s: write %s: %w", opGetEvent, name, err)
	}

	r, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		return fmt.Errorf("%s: %w: open %s: %v", opGetEvent, ErrAPIUnavailable, name, err)
	}

	for _, f := range r.File {
		if err := c.extractMember(f); err != nil {
			return fmt.Errorf("%s: extract %s from %s: %w", opGetEvent, f.Name, name, err)
		}
	}

	c.logger.Debug("shapefile extracted", "archive", name, "members", len(r.File), "dir", c.downloadDir)
	return nil
}

func (c *Client) extractMember(f *zip.File) error {
	// Reject members whose names escape the download directory.
	dest := filepath.Join(c.downloadDir, filepath.FromSlash(f.Name))
	if rel, err := filepath.Rel(c.downloadDir, dest); err != nil || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("illegal member path %q", f.Name)
	}

	if f.FileInfo().IsDir() {
		return os.MkdirAll(dest, 0o755)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, rc)
	return err
}
