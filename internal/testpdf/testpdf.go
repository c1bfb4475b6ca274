// Package testpdf builds small, valid PDF files for tests.
//
// Page n of a generated document has a MediaBox of PageWidth(n) x PageHeight,
// so tests can tell pages apart after merge or extraction by their width.
package testpdf

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// PageHeight is the height of every generated page, in points.
const PageHeight = 200

// PageWidth returns the width of generated page n (1-based).
func PageWidth(n int) float64 {
	return float64(100 + n)
}

// Options describes the document to build.
type Options struct {
	Pages   int
	Version string // Header version, default "1.4"
	Title   string
	Author  string
	Subject string
}

func (o Options) hasInfo() bool {
	return o.Title != "" || o.Author != "" || o.Subject != ""
}

// Build returns the bytes of a PDF with a classic cross-reference table.
func Build(opts Options) []byte {
	version := opts.Version
	if version == "" {
		version = "1.4"
	}

	var buf bytes.Buffer
	var offsets []int // offsets[i] is the byte offset of object i+1

	obj := func(body string) int {
		offsets = append(offsets, buf.Len())
		id := len(offsets)
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", id, body)
		return id
	}

	fmt.Fprintf(&buf, "%%PDF-%s\n%%\xe2\xe3\xcf\xd3\n", version)

	// Page objects are numbered 3, 5, 7... with their content stream right after.
	kids := ""
	for i := 0; i < opts.Pages; i++ {
		kids += fmt.Sprintf("%d 0 R ", 3+2*i)
	}

	obj("<< /Type /Catalog /Pages 2 0 R >>")
	obj(fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", kids, opts.Pages))

	for i := 1; i <= opts.Pages; i++ {
		contentID := len(offsets) + 2
		obj(fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %g %d] /Resources << >> /Contents %d 0 R >>",
			PageWidth(i), PageHeight, contentID))
		content := fmt.Sprintf("%% page %d\nq Q", i)
		obj(fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}

	infoID := 0
	if opts.hasInfo() {
		infoID = obj(fmt.Sprintf("<< /Title (%s) /Author (%s) /Subject (%s) /Producer (testpdf) >>",
			opts.Title, opts.Author, opts.Subject))
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}

	trailer := fmt.Sprintf("/Size %d /Root 1 0 R", len(offsets)+1)
	if infoID != 0 {
		trailer += fmt.Sprintf(" /Info %d 0 R", infoID)
	}
	fmt.Fprintf(&buf, "trailer\n<< %s >>\nstartxref\n%d\n%%%%EOF\n", trailer, xref)

	return buf.Bytes()
}

// WriteFile builds a document and writes it to dir/name, returning the path.
func WriteFile(tb testing.TB, dir, name string, opts Options) string {
	tb.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		tb.Fatalf("testpdf: %v", err)
	}
	if err := os.WriteFile(path, Build(opts), 0o644); err != nil {
		tb.Fatalf("testpdf: %v", err)
	}
	return path
}
