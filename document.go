package pdfer

import "io"

// Metadata holds the document information fields pdfer reports.
type Metadata struct {
	Title   string
	Author  string
	Subject string
}

// IsZero reports whether no field is set.
func (m *Metadata) IsZero() bool {
	return m == nil || (m.Title == "" && m.Author == "" && m.Subject == "")
}

// Document is a loaded PDF. It is immutable and owned by the operation that
// loaded it.
type Document interface {
	// Path is the file the document was loaded from, empty for derived documents.
	Path() string
	PageCount() int
	// Version is the PDF format version, e.g. "1.7".
	Version() string
	// Metadata returns nil when the document has no information dictionary.
	Metadata() *Metadata
}

// Accessor reads, slices, concatenates and serializes documents.
//
// Load fails with an error wrapping ErrInvalidPDFFile when the file cannot
// be parsed. ExtractPages keeps the order and repeats of pages. Concat keeps
// input order and each document's page order.
type Accessor interface {
	Load(path string) (Document, error)
	ExtractPages(doc Document, pages []int) (Document, error)
	Concat(docs []Document) (Document, error)
	Write(doc Document, w io.Writer) error
}
