package pdfer_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-pdfer"
)

// ---------------------------------------------------------------------------
// TestParsePageSpec - Grammar
// ---------------------------------------------------------------------------

func TestParsePageSpec(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec string
		want []pdfer.PageToken
	}{
		{
			name: "blank spec",
			spec: "   ",
			want: nil,
		},
		{
			name: "single page",
			spec: "3",
			want: []pdfer.PageToken{{Kind: pdfer.TokenSingle, Start: 3, End: 3, Text: "3"}},
		},
		{
			name: "closed range",
			spec: "2-5",
			want: []pdfer.PageToken{{Kind: pdfer.TokenRange, Start: 2, End: 5, Text: "2-5"}},
		},
		{
			name: "open range",
			spec: "10-",
			want: []pdfer.PageToken{{Kind: pdfer.TokenOpenRange, Start: 10, Text: "10-"}},
		},
		{
			name: "mixed list keeps order",
			spec: "1,3,5-7,10-",
			want: []pdfer.PageToken{
				{Kind: pdfer.TokenSingle, Start: 1, End: 1, Text: "1"},
				{Kind: pdfer.TokenSingle, Start: 3, End: 3, Text: "3"},
				{Kind: pdfer.TokenRange, Start: 5, End: 7, Text: "5-7"},
				{Kind: pdfer.TokenOpenRange, Start: 10, Text: "10-"},
			},
		},
		{
			name: "whitespace around tokens and hyphen",
			spec: " 1 , 4 - 6 ,8 - ",
			want: []pdfer.PageToken{
				{Kind: pdfer.TokenSingle, Start: 1, End: 1, Text: "1"},
				{Kind: pdfer.TokenRange, Start: 4, End: 6, Text: "4 - 6"},
				{Kind: pdfer.TokenOpenRange, Start: 8, Text: "8 -"},
			},
		},
		{
			name: "reversed range parses",
			spec: "5-2",
			want: []pdfer.PageToken{{Kind: pdfer.TokenRange, Start: 5, End: 2, Text: "5-2"}},
		},
		{
			name: "repeats kept",
			spec: "2,2",
			want: []pdfer.PageToken{
				{Kind: pdfer.TokenSingle, Start: 2, End: 2, Text: "2"},
				{Kind: pdfer.TokenSingle, Start: 2, End: 2, Text: "2"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := pdfer.ParsePageSpec(tt.spec)
			if err != nil {
				t.Fatalf("ParsePageSpec(%q) error: %v", tt.spec, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParsePageSpec(%q) mismatch (-want +got):\n%s", tt.spec, diff)
			}
		})
	}
}

func TestParsePageSpec_Invalid(t *testing.T) {
	t.Parallel()

	specs := []string{
		"a",
		"1,,2",
		"1,",
		",1",
		"-3",
		"1-2-3",
		"0",
		"0-4",
		"2-0",
		"+3",
		"1 2",
		"1.5",
		"3-x",
		"99999999999999999999999",
	}

	for _, spec := range specs {
		t.Run(spec, func(t *testing.T) {
			t.Parallel()

			tokens, err := pdfer.ParsePageSpec(spec)
			if !errors.Is(err, pdfer.ErrInvalidPageSpec) {
				t.Errorf("ParsePageSpec(%q) error = %v, want ErrInvalidPageSpec", spec, err)
			}
			if tokens != nil {
				t.Errorf("ParsePageSpec(%q) returned partial tokens %v", spec, tokens)
			}
		})
	}
}

func TestTokenKind_String(t *testing.T) {
	t.Parallel()

	if got := pdfer.TokenOpenRange.String(); got != "open range" {
		t.Errorf("TokenOpenRange.String() = %q", got)
	}
	if got := pdfer.TokenKind(9).String(); got != "TokenKind(9)" {
		t.Errorf("TokenKind(9).String() = %q", got)
	}
}
