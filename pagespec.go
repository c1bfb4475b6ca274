package pdfer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// TokenKind classifies a PageToken.
type TokenKind int

// Token kinds.
const (
	TokenSingle    TokenKind = iota // "N"
	TokenRange                      // "N-M"
	TokenOpenRange                  // "N-", up to the last page
)

// String returns the grammar form of the kind.
func (k TokenKind) String() string {
	switch k {
	case TokenSingle:
		return "single"
	case TokenRange:
		return "range"
	case TokenOpenRange:
		return "open range"
	default:
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
}

// PageToken is one comma-separated unit of a page specification, not yet
// checked against any document.
type PageToken struct {
	Kind  TokenKind
	Start int    // First page, >= 1
	End   int    // Last page for TokenRange; equals Start for TokenSingle; 0 for TokenOpenRange
	Text  string // Trimmed source text
}

// ParsePageSpec parses a comma-separated page specification.
//
// Whitespace around tokens and around the hyphen is ignored. A spec that is
// blank after trimming yields no tokens. Any malformed token, including an
// empty one between commas, fails the whole spec with ErrInvalidPageSpec.
func ParsePageSpec(spec string) ([]PageToken, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}

	parts := strings.Split(spec, ",")
	tokens := make([]PageToken, 0, len(parts))
	for _, part := range parts {
		tok, err := parseToken(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func parseToken(text string) (PageToken, error) {
	if text == "" {
		return PageToken{}, fmt.Errorf("%w: empty entry between commas", ErrInvalidPageSpec)
	}

	switch strings.Count(text, "-") {
	case 0:
		n, err := parsePageNumber(text)
		if err != nil {
			return PageToken{}, tokenError(text, err)
		}
		return PageToken{Kind: TokenSingle, Start: n, End: n, Text: text}, nil

	case 1:
		left, right, _ := strings.Cut(text, "-")
		left, right = strings.TrimSpace(left), strings.TrimSpace(right)
		if left == "" {
			return PageToken{}, tokenError(text, "missing start page")
		}
		start, err := parsePageNumber(left)
		if err != nil {
			return PageToken{}, tokenError(text, err)
		}
		if right == "" {
			return PageToken{Kind: TokenOpenRange, Start: start, Text: text}, nil
		}
		end, err := parsePageNumber(right)
		if err != nil {
			return PageToken{}, tokenError(text, err)
		}
		return PageToken{Kind: TokenRange, Start: start, End: end, Text: text}, nil

	default:
		return PageToken{}, tokenError(text, "too many hyphens")
	}
}

// parsePageNumber accepts ASCII digits only, so signs and inner spaces fail.
func parsePageNumber(s string) (int, error) {
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%q is not a page number", s)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is too large", s)
	}
	if n == 0 {
		return 0, errors.New("pages start at 1")
	}
	return n, nil
}

func tokenError(text string, reason any) error {
	return fmt.Errorf("%w: %q: %v", ErrInvalidPageSpec, text, reason)
}
