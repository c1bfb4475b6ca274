package pdfer

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// maxListedPages is the page count up to which PageNumbers lists every page.
const maxListedPages = 10

// Info describes one PDF file for info mode.
type Info struct {
	Path      string
	Size      int64
	PageCount int
	Version   string
	Metadata  *Metadata
}

// Inspect loads path through acc and collects its Info.
func Inspect(acc Accessor, path string) (*Info, error) {
	doc, err := loadDocument(acc, path)
	if err != nil {
		return nil, err
	}
	return Describe(doc)
}

// Describe collects the Info of a loaded document. The file it was loaded
// from is stat'ed for its size.
func Describe(doc Document) (*Info, error) {
	st, err := os.Stat(doc.Path())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPDFFile, doc.Path(), err)
	}
	return &Info{
		Path:      doc.Path(),
		Size:      st.Size(),
		PageCount: doc.PageCount(),
		Version:   doc.Version(),
		Metadata:  doc.Metadata(),
	}, nil
}

// PageNumbers summarizes the page numbers: "[1, 2, 3]" for short documents,
// "1 to N" beyond ten pages, empty for a document without pages.
func (i *Info) PageNumbers() string {
	switch {
	case i.PageCount <= 0:
		return ""
	case i.PageCount <= maxListedPages:
		nums := make([]string, i.PageCount)
		for p := range nums {
			nums[p] = strconv.Itoa(p + 1)
		}
		return "[" + strings.Join(nums, ", ") + "]"
	default:
		return "1 to " + strconv.Itoa(i.PageCount)
	}
}

// HumanSize formats Size with binary units, e.g. "12.3 KiB".
func (i *Info) HumanSize() string {
	const unit = 1024
	if i.Size < unit {
		return strconv.FormatInt(i.Size, 10) + " B"
	}
	div, exp := int64(unit), 0
	for n := i.Size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(i.Size)/float64(div), "KMGTPE"[exp])
}
