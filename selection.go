package pdfer

import (
	"fmt"
	"strconv"
	"strings"
)

// PageSelection is an ordered list of 1-based page numbers, validated
// against one document. Explicitly repeated pages are kept.
type PageSelection []int

// String renders the selection compactly, collapsing ascending runs:
// [1 3 5 6 7] becomes "1,3,5-7".
func (s PageSelection) String() string {
	var b strings.Builder
	for i := 0; i < len(s); {
		j := i
		for j+1 < len(s) && s[j+1] == s[j]+1 {
			j++
		}
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(s[i]))
		if j > i {
			b.WriteByte('-')
			b.WriteString(strconv.Itoa(s[j]))
		}
		i = j + 1
	}
	return b.String()
}

// ResolvePages binds tokens to a document of pageCount pages.
//
// Tokens are resolved in order and their pages appended as is. A closed
// range with start > end fails with ErrInvalidPageSpec; any page outside
// [1, pageCount] fails with ErrPageOutOfRange. The first violation wins and
// no partial selection is returned. An empty result is ErrEmptyPageSelection.
func ResolvePages(tokens []PageToken, pageCount int) (PageSelection, error) {
	var pages PageSelection
	for _, tok := range tokens {
		resolved, err := resolveToken(tok, pageCount)
		if err != nil {
			return nil, err
		}
		pages = append(pages, resolved...)
	}
	if len(pages) == 0 {
		return nil, ErrEmptyPageSelection
	}
	return pages, nil
}

// AllPages returns [1..pageCount], the selection used when no spec is given.
func AllPages(pageCount int) (PageSelection, error) {
	if pageCount <= 0 {
		return nil, ErrEmptyPageSelection
	}
	pages := make(PageSelection, pageCount)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages, nil
}

// SelectPages parses and resolves spec, or selects every page when spec is nil.
func SelectPages(spec *string, pageCount int) (PageSelection, error) {
	if spec == nil {
		return AllPages(pageCount)
	}
	tokens, err := ParsePageSpec(*spec)
	if err != nil {
		return nil, err
	}
	return ResolvePages(tokens, pageCount)
}

func resolveToken(tok PageToken, pageCount int) (PageSelection, error) {
	start, end := tok.Start, tok.End
	if tok.Kind == TokenOpenRange {
		end = pageCount
	}

	if tok.Kind == TokenRange && start > end {
		return nil, fmt.Errorf("%w: %q: start page %d is after end page %d", ErrInvalidPageSpec, tok.Text, start, end)
	}
	if start < 1 {
		return nil, fmt.Errorf("%w: %q: pages start at 1", ErrInvalidPageSpec, tok.Text)
	}
	if start > pageCount {
		return nil, outOfRange(start, pageCount)
	}
	if end > pageCount {
		return nil, outOfRange(end, pageCount)
	}

	pages := make(PageSelection, 0, end-start+1)
	for p := start; p <= end; p++ {
		pages = append(pages, p)
	}
	return pages, nil
}

func outOfRange(page, pageCount int) error {
	return fmt.Errorf("%w: page %d (document has %d pages)", ErrPageOutOfRange, page, pageCount)
}
