package controllers

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"hello/hello/utils/logging"
)

var (
	ErrPageNotFound   = errors.New("page not found")
	ErrPageUnreadable = errors.New("page unreadable")
)

// StaticController reads text pages from a base directory.
type StaticController struct {
	baseDir string
}

func NewStaticController(baseDir string) *StaticController {
	return &StaticController{baseDir: baseDir}
}

// Resolve maps a request path suffix to a file under the base directory.
// Leading ".." segments are clamped at the base directory.
func (c *StaticController) Resolve(suffix string) string {
	return filepath.Join(c.baseDir, filepath.Clean("/"+filepath.FromSlash(suffix)))
}

// ReadPage returns the UTF-8 contents of the page at suffix. Errors wrap
// ErrPageNotFound when nothing exists at the path and ErrPageUnreadable
// for every other failure.
func (c *StaticController) ReadPage(ctx context.Context, suffix string) (string, error) {
	defer logging.LogDuration(ctx, "ReadPage")()

	path := c.Resolve(suffix)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrPageNotFound, path)
		}
		return "", fmt.Errorf("%w: %w", ErrPageUnreadable, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8", ErrPageUnreadable, path)
	}
	return string(data), nil
}
