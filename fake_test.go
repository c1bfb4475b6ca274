package pdfer_test

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/alnah/go-pdfer"
)

// fakeDoc is an in-memory document whose pages are labels such as "A1".
type fakeDoc struct {
	path    string
	pages   []string
	version string
	meta    *pdfer.Metadata
}

func (d *fakeDoc) Path() string              { return d.path }
func (d *fakeDoc) PageCount() int            { return len(d.pages) }
func (d *fakeDoc) Version() string           { return d.version }
func (d *fakeDoc) Metadata() *pdfer.Metadata { return d.meta }

// fakeAccessor serves fakeDocs by path and writes page labels joined by commas.
type fakeAccessor struct {
	docs map[string]*fakeDoc

	// failWrite, when set, is called before writing; a non-nil error is
	// returned after a partial write.
	failWrite func(pages []string) error
	// failExtract, when set, fails ExtractPages for matching selections.
	failExtract func(pages []int) error
}

var _ pdfer.Accessor = (*fakeAccessor)(nil)

func newFakeAccessor() *fakeAccessor {
	return &fakeAccessor{docs: make(map[string]*fakeDoc)}
}

// add registers a document named prefix with n pages labeled prefix1..prefixN
// and creates a placeholder file at path so existence checks see it.
func (a *fakeAccessor) add(t *testing.T, path, prefix string, n int) {
	t.Helper()
	pages := make([]string, n)
	for i := range pages {
		pages[i] = fmt.Sprintf("%s%d", prefix, i+1)
	}
	a.docs[path] = &fakeDoc{path: path, pages: pages, version: "1.7"}
	if err := os.WriteFile(path, []byte("placeholder"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func (a *fakeAccessor) Load(path string) (pdfer.Document, error) {
	doc, ok := a.docs[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s: not a fake document", pdfer.ErrInvalidPDFFile, path)
	}
	return doc, nil
}

func (a *fakeAccessor) ExtractPages(doc pdfer.Document, pages []int) (pdfer.Document, error) {
	if a.failExtract != nil {
		if err := a.failExtract(pages); err != nil {
			return nil, err
		}
	}
	src := doc.(*fakeDoc)
	out := &fakeDoc{version: src.version}
	for _, p := range pages {
		if p < 1 || p > len(src.pages) {
			return nil, fmt.Errorf("page %d out of range", p)
		}
		out.pages = append(out.pages, src.pages[p-1])
	}
	return out, nil
}

func (a *fakeAccessor) Concat(docs []pdfer.Document) (pdfer.Document, error) {
	out := &fakeDoc{version: "1.7"}
	for _, d := range docs {
		out.pages = append(out.pages, d.(*fakeDoc).pages...)
	}
	return out, nil
}

func (a *fakeAccessor) Write(doc pdfer.Document, w io.Writer) error {
	pages := doc.(*fakeDoc).pages
	content := strings.Join(pages, ",")
	if a.failWrite != nil {
		if err := a.failWrite(pages); err != nil {
			_, _ = io.WriteString(w, content[:len(content)/2])
			return err
		}
	}
	_, err := io.WriteString(w, content)
	return err
}

var errDiskFull = errors.New("disk full")

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

func assertNotExist(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("%s should not exist (err = %v)", path, err)
	}
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading %s: %v", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
