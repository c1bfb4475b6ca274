// Package discover expands command-line arguments into the PDF files they
// name: plain files, directories (recursive mode only) and glob patterns.
package discover

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/alnah/go-pdfer/internal/fileutil"
)

// Sentinel errors for discovery.
var (
	ErrNotPDF       = errors.New("not a PDF file")
	ErrIsDirectory  = errors.New("is a directory")
	ErrPathNotFound = errors.New("no such file or directory")
	ErrNoPDFFound   = errors.New("no PDF files found")
)

// Options controls how arguments are expanded.
type Options struct {
	// Recursive descends into directory arguments. Without it a directory
	// argument is an error.
	Recursive bool

	// Log receives warnings for unreadable directories. Nil discards them.
	Log logrus.FieldLogger
}

// Collect returns the PDF files named by args, sorted and deduplicated.
//
// A regular file must carry a .pdf extension (any case). A directory is
// walked when opts.Recursive is set; symlinked directories are followed and
// each canonical directory is visited once, so link cycles terminate. An
// argument that does not exist but contains glob metacharacters is expanded
// with filepath.Glob; non-PDF matches are skipped silently.
func Collect(args []string, opts Options) ([]string, error) {
	log := opts.Log
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	c := &collector{
		recursive: opts.Recursive,
		log:       log,
		visited:   make(map[string]bool),
		seen:      make(map[string]bool),
	}

	for _, arg := range args {
		if err := c.add(arg); err != nil {
			return nil, err
		}
	}

	if len(c.files) == 0 {
		return nil, ErrNoPDFFound
	}
	slices.Sort(c.files)
	return c.files, nil
}

type collector struct {
	recursive bool
	log       logrus.FieldLogger
	visited   map[string]bool // canonical directories already walked
	seen      map[string]bool // cleaned file paths already collected
	files     []string
}

func (c *collector) add(arg string) error {
	info, err := os.Stat(arg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && hasGlobMeta(arg) {
			return c.addGlob(arg)
		}
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, arg)
		}
		return fmt.Errorf("reading %s: %w", arg, err)
	}

	if info.IsDir() {
		if !c.recursive {
			return fmt.Errorf("%w: %s", ErrIsDirectory, arg)
		}
		c.walk(arg)
		return nil
	}

	if !fileutil.HasPDFExt(arg) {
		return fmt.Errorf("%w: %s", ErrNotPDF, arg)
	}
	c.push(arg)
	return nil
}

func (c *collector) addGlob(pattern string) error {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return fmt.Errorf("%w: %s", ErrPathNotFound, pattern)
	}

	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			continue
		}
		switch {
		case info.IsDir():
			if c.recursive {
				c.walk(m)
			}
		case fileutil.HasPDFExt(m):
			c.push(m)
		}
	}
	return nil
}

// walk collects PDFs below dir. Unreadable entries are logged and skipped.
func (c *collector) walk(dir string) {
	canonical, err := canonicalDir(dir)
	if err != nil {
		canonical = filepath.Clean(dir)
	}
	if c.visited[canonical] {
		return
	}
	c.visited[canonical] = true

	entries, err := os.ReadDir(dir)
	if err != nil {
		c.log.WithField("dir", dir).WithError(err).Warn("cannot read directory")
		return
	}

	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		// Stat follows symlinks so linked directories are walked too.
		info, err := os.Stat(path)
		if err != nil {
			c.log.WithField("path", path).WithError(err).Warn("skipping unreadable entry")
			continue
		}
		switch {
		case info.IsDir():
			c.walk(path)
		case info.Mode().IsRegular() && fileutil.HasPDFExt(path):
			c.push(path)
		}
	}
}

func (c *collector) push(path string) {
	clean := filepath.Clean(path)
	if c.seen[clean] {
		return
	}
	c.seen[clean] = true
	c.files = append(c.files, clean)
}

func canonicalDir(dir string) (string, error) {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}

func hasGlobMeta(s string) bool {
	return strings.ContainsAny(s, "*?[")
}
