// Package sink implements local filesystem persistence for fetched
// logos.
package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/logofetch/logofetch/internal/logo"
)

var invalidFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// FileSink writes one file per company under a base directory. File
// names derive deterministically from the company key, so concurrent
// bulk items never collide without coordination.
type FileSink struct {
	baseDir string
}

// New creates a FileSink, verifying the directory exists and is
// writable up front so bulk runs fail fast instead of per item.
func New(baseDir string) (*FileSink, error) {
	if strings.TrimSpace(baseDir) == "" {
		return nil, fmt.Errorf("base directory is required")
	}
	info, err := os.Stat(baseDir)
	switch {
	case os.IsNotExist(err):
		if mkErr := os.MkdirAll(baseDir, 0o750); mkErr != nil {
			return nil, fmt.Errorf("create base directory: %w", mkErr)
		}
	case err != nil:
		return nil, fmt.Errorf("stat base directory: %w", err)
	case !info.IsDir():
		return nil, fmt.Errorf("base directory path is not a directory")
	}

	probe := filepath.Join(baseDir, ".writable_test")
	if err := os.WriteFile(probe, []byte("test"), 0o600); err != nil {
		return nil, fmt.Errorf("base directory is not writable: %w", err)
	}
	if err := os.Remove(probe); err != nil {
		return nil, fmt.Errorf("clean up probe file: %w", err)
	}

	return &FileSink{baseDir: baseDir}, nil
}

// Save writes the logo bytes as <sanitized-company>.<ext> and returns
// the full path.
func (s *FileSink) Save(ctx context.Context, company string, info logo.ImageInfo, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context canceled: %w", err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("empty logo payload")
	}
	name := Filename(company, info.Extension)

	fullPath := filepath.Join(s.baseDir, name)
	cleanBase := filepath.Clean(s.baseDir)
	if !strings.HasPrefix(filepath.Clean(fullPath), cleanBase+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal detected for company %q", company)
	}
	if err := os.WriteFile(fullPath, data, 0o600); err != nil {
		return "", fmt.Errorf("write logo to %s: %w", fullPath, err)
	}
	return fullPath, nil
}

// Filename derives the deterministic file name for a company key.
func Filename(company, extension string) string {
	base := invalidFilenameChars.ReplaceAllString(strings.ToLower(strings.TrimSpace(company)), "_")
	base = strings.Trim(base, "._")
	if base == "" {
		base = "logo"
	}
	if extension == "" {
		extension = "img"
	}
	return base + "." + extension
}
