// Package pdfdoc implements pdfer.Accessor on top of pdfcpu.
//
// Documents keep their serialized bytes in memory. Loading parses and
// validates them once to read the page count, version and information
// dictionary; slicing and concatenation run pdfcpu over those bytes and load
// the result, so every derived document has been validated too.
package pdfdoc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/sirupsen/logrus"

	"github.com/alnah/go-pdfer"
)

// Compile-time interface implementation checks.
var (
	_ pdfer.Accessor = (*Accessor)(nil)
	_ pdfer.Document = (*Document)(nil)
)

// ErrForeignDocument is returned when a pdfer.Document from another
// accessor is passed in.
var ErrForeignDocument = errors.New("pdfdoc: document was not loaded by this accessor")

// MaxFileSize bounds the size of a loaded file (default 1 GiB).
var MaxFileSize int64 = 1 << 30

func init() {
	// pdfcpu would otherwise create a configuration directory on first use.
	api.DisableConfigDir()
}

// Document is a PDF held in memory.
type Document struct {
	path    string
	data    []byte
	pages   int
	version string
	meta    *pdfer.Metadata
}

func (d *Document) Path() string              { return d.path }
func (d *Document) PageCount() int            { return d.pages }
func (d *Document) Version() string           { return d.version }
func (d *Document) Metadata() *pdfer.Metadata { return d.meta }

// Size returns the serialized size in bytes.
func (d *Document) Size() int { return len(d.data) }

// Accessor reads and writes documents with pdfcpu in relaxed validation mode.
type Accessor struct {
	log logrus.FieldLogger
}

// New returns an Accessor. A nil log discards debug events.
func New(log logrus.FieldLogger) *Accessor {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Accessor{log: log}
}

// conf returns a fresh configuration; pdfcpu commands mutate the one they get.
func (a *Accessor) conf() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// Load reads and validates the file at path.
func (a *Accessor) Load(path string) (pdfer.Document, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", pdfer.ErrInvalidPDFFile, path, err)
	}
	if st.IsDir() {
		return nil, fmt.Errorf("%w: %s: is a directory", pdfer.ErrInvalidPDFFile, path)
	}
	if st.Size() > MaxFileSize {
		return nil, fmt.Errorf("%w: %s: %d bytes exceeds limit of %d", pdfer.ErrInvalidPDFFile, path, st.Size(), MaxFileSize)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path is user-provided input
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", pdfer.ErrInvalidPDFFile, path, err)
	}

	doc, err := a.parse(path, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", pdfer.ErrInvalidPDFFile, path, err)
	}
	return doc, nil
}

// parse validates data and captures what pdfer reports about it.
func (a *Accessor) parse(path string, data []byte) (*Document, error) {
	ctx, err := api.ReadContext(bytes.NewReader(data), a.conf())
	if err != nil {
		return nil, err
	}
	if err := api.ValidateContext(ctx); err != nil {
		return nil, err
	}

	doc := &Document{
		path:    path,
		data:    data,
		pages:   ctx.PageCount,
		version: ctx.VersionString(),
	}
	meta := &pdfer.Metadata{Title: ctx.Title, Author: ctx.Author, Subject: ctx.Subject}
	if !meta.IsZero() {
		doc.meta = meta
	}

	a.log.WithFields(logrus.Fields{
		"path":    path,
		"bytes":   len(data),
		"pages":   doc.pages,
		"version": doc.version,
	}).Debug("parsed document")

	return doc, nil
}

// ExtractPages builds a document from the given 1-based pages of doc, in
// order, repeats included.
func (a *Accessor) ExtractPages(doc pdfer.Document, pages []int) (pdfer.Document, error) {
	src, err := own(doc)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, pdfer.ErrEmptyPageSelection
	}

	selected := make([]string, len(pages))
	for i, p := range pages {
		if p < 1 || p > src.pages {
			return nil, fmt.Errorf("%w: page %d (document has %d pages)", pdfer.ErrPageOutOfRange, p, src.pages)
		}
		selected[i] = strconv.Itoa(p)
	}

	var buf bytes.Buffer
	if err := api.Collect(bytes.NewReader(src.data), &buf, selected, a.conf()); err != nil {
		return nil, fmt.Errorf("collecting pages: %w", err)
	}
	return a.parse("", buf.Bytes())
}

// Concat joins docs in order. A single document is copied as is.
func (a *Accessor) Concat(docs []pdfer.Document) (pdfer.Document, error) {
	if len(docs) == 0 {
		return nil, pdfer.ErrNoInput
	}

	readers := make([]io.ReadSeeker, len(docs))
	for i, d := range docs {
		src, err := own(d)
		if err != nil {
			return nil, err
		}
		if len(docs) == 1 {
			clone := *src
			clone.path = ""
			return &clone, nil
		}
		readers[i] = bytes.NewReader(src.data)
	}

	var buf bytes.Buffer
	if err := api.MergeRaw(readers, &buf, false, a.conf()); err != nil {
		return nil, fmt.Errorf("merging: %w", err)
	}
	return a.parse("", buf.Bytes())
}

// Write copies the serialized document to w.
func (a *Accessor) Write(doc pdfer.Document, w io.Writer) error {
	src, err := own(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(src.data)
	return err
}

func own(doc pdfer.Document) (*Document, error) {
	d, ok := doc.(*Document)
	if !ok || d == nil {
		return nil, ErrForeignDocument
	}
	return d, nil
}
