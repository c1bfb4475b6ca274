package pdfer_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-pdfer"
)

// splitFixture registers a 10-page document D and returns its path and an
// output directory that does not exist yet.
func splitFixture(t *testing.T) (*fakeAccessor, string, string) {
	t.Helper()
	dir := t.TempDir()
	acc := newFakeAccessor()
	src := filepath.Join(dir, "doc.pdf")
	acc.add(t, src, "D", 10)
	return acc, src, filepath.Join(dir, "parts")
}

func spec(s string) *string { return &s }

// ---------------------------------------------------------------------------
// TestSplit - Grouping and naming
// ---------------------------------------------------------------------------

func TestSplit_TokenGroups(t *testing.T) {
	t.Parallel()

	acc, src, outDir := splitFixture(t)

	res, err := pdfer.NewSplitter(acc).Split(context.Background(), pdfer.SplitRequest{
		Input:     src,
		Pages:     spec("1,3,5-7"),
		OutputDir: outDir,
	})
	if err != nil {
		t.Fatalf("Split() error: %v", err)
	}

	want := map[string]string{
		"page_001.pdf":      "D1",
		"page_003.pdf":      "D3",
		"pages_005-007.pdf": "D5,D6,D7",
	}
	if diff := cmp.Diff([]string{"page_001.pdf", "page_003.pdf", "pages_005-007.pdf"}, listDir(t, outDir)); diff != "" {
		t.Errorf("output files mismatch (-want +got):\n%s", diff)
	}
	for name, pages := range want {
		if got := readFile(t, filepath.Join(outDir, name)); got != pages {
			t.Errorf("%s = %q, want %q", name, got, pages)
		}
	}

	if len(res.Written) != 3 || len(res.Failed) != 0 {
		t.Errorf("Written = %d, Failed = %d; want 3, 0", len(res.Written), len(res.Failed))
	}
	if diff := cmp.Diff(pdfer.PageSelection{5, 6, 7}, res.Written[2].Pages); diff != "" {
		t.Errorf("third target pages mismatch (-want +got):\n%s", diff)
	}
	if res.Plan.PageTotal() != 5 {
		t.Errorf("PageTotal() = %d, want 5", res.Plan.PageTotal())
	}
}

func TestSplit_EveryPage(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	acc := newFakeAccessor()
	src := filepath.Join(dir, "short.pdf")
	acc.add(t, src, "S", 3)
	outDir := filepath.Join(dir, "out")

	_, err := pdfer.NewSplitter(acc).Split(context.Background(), pdfer.SplitRequest{Input: src, OutputDir: outDir})
	if err != nil {
		t.Fatalf("Split() error: %v", err)
	}

	if diff := cmp.Diff([]string{"page_001.pdf", "page_002.pdf", "page_003.pdf"}, listDir(t, outDir)); diff != "" {
		t.Errorf("output files mismatch (-want +got):\n%s", diff)
	}
	if got := readFile(t, filepath.Join(outDir, "page_002.pdf")); got != "S2" {
		t.Errorf("page_002.pdf = %q, want S2", got)
	}
}

func TestSplit_OpenRangeAndRepeats(t *testing.T) {
	t.Parallel()

	acc, src, outDir := splitFixture(t)

	res, err := pdfer.NewSplitter(acc, pdfer.WithPagePadding(0)).Split(context.Background(), pdfer.SplitRequest{
		Input:     src,
		Pages:     spec("9-,2,2"),
		OutputDir: outDir,
	})
	if err != nil {
		t.Fatalf("Split() error: %v", err)
	}

	if diff := cmp.Diff([]string{"page_2.pdf", "pages_9-10.pdf"}, listDir(t, outDir)); diff != "" {
		t.Errorf("output files mismatch (-want +got):\n%s", diff)
	}
	if len(res.Plan.Targets) != 2 {
		t.Errorf("planned targets = %d, want 2 (repeat planned once)", len(res.Plan.Targets))
	}
}

func TestSplit_DefaultOutputDir(t *testing.T) {
	// Not parallel: the default directory is relative to the working directory.
	acc, src, _ := splitFixture(t)
	t.Chdir(filepath.Dir(src))

	res, err := pdfer.NewSplitter(acc).Split(context.Background(), pdfer.SplitRequest{Input: src, Pages: spec("2")})
	if err != nil {
		t.Fatalf("Split() error: %v", err)
	}
	if res.OutputDir != "doc_pages" {
		t.Errorf("OutputDir = %q, want %q", res.OutputDir, "doc_pages")
	}
	if got := readFile(t, filepath.Join("doc_pages", "page_002.pdf")); got != "D2" {
		t.Errorf("page_002.pdf = %q", got)
	}
}

// ---------------------------------------------------------------------------
// TestSplit_ValidationBeforeWrite - Nothing created on invalid input
// ---------------------------------------------------------------------------

func TestSplit_ValidationBeforeWrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pages   *string
		input   string
		wantErr error
	}{
		{name: "invalid token", pages: spec("1,x"), wantErr: pdfer.ErrInvalidPageSpec},
		{name: "reversed range", pages: spec("5-2"), wantErr: pdfer.ErrInvalidPageSpec},
		{name: "out of range after valid token", pages: spec("1,2-11"), wantErr: pdfer.ErrPageOutOfRange},
		{name: "empty spec", pages: spec(" "), wantErr: pdfer.ErrEmptyPageSelection},
		{name: "unreadable input", input: "missing.pdf", wantErr: pdfer.ErrInvalidPDFFile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			acc, src, outDir := splitFixture(t)
			if tt.input != "" {
				src = filepath.Join(filepath.Dir(src), tt.input)
			}

			_, err := pdfer.NewSplitter(acc).Split(context.Background(), pdfer.SplitRequest{
				Input:     src,
				Pages:     tt.pages,
				OutputDir: outDir,
			})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Split() error = %v, want %v", err, tt.wantErr)
			}
			assertNotExist(t, outDir)
		})
	}
}

func TestSplit_ZeroPageDocument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	acc := newFakeAccessor()
	src := filepath.Join(dir, "empty.pdf")
	acc.add(t, src, "E", 0)

	_, err := pdfer.NewSplitter(acc).Split(context.Background(), pdfer.SplitRequest{Input: src, OutputDir: filepath.Join(dir, "o")})
	if !errors.Is(err, pdfer.ErrEmptyPageSelection) {
		t.Errorf("Split() without spec error = %v, want ErrEmptyPageSelection", err)
	}

	_, err = pdfer.NewSplitter(acc).Split(context.Background(), pdfer.SplitRequest{Input: src, Pages: spec("1"), OutputDir: filepath.Join(dir, "o")})
	if !errors.Is(err, pdfer.ErrPageOutOfRange) {
		t.Errorf("Split() with spec error = %v, want ErrPageOutOfRange", err)
	}
}

func TestSplit_NoInput(t *testing.T) {
	t.Parallel()

	_, err := pdfer.NewSplitter(newFakeAccessor()).Split(context.Background(), pdfer.SplitRequest{})
	if !errors.Is(err, pdfer.ErrNoInput) {
		t.Errorf("Split() error = %v, want ErrNoInput", err)
	}
}

// ---------------------------------------------------------------------------
// TestSplit_Conflicts - Abort and rename mid-batch
// ---------------------------------------------------------------------------

func TestSplit_AbortOnSecondTarget(t *testing.T) {
	t.Parallel()

	acc, src, outDir := splitFixture(t)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		t.Fatal(err)
	}
	second := filepath.Join(outDir, "page_002.pdf")
	if err := os.WriteFile(second, []byte("existing"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := pdfer.NewSplitter(acc).Split(context.Background(), pdfer.SplitRequest{
		Input:     src,
		Pages:     spec("1,2,3"),
		OutputDir: outDir,
	})
	if !errors.Is(err, pdfer.ErrAbortedByUser) {
		t.Fatalf("Split() error = %v, want ErrAbortedByUser", err)
	}

	if got := readFile(t, filepath.Join(outDir, "page_001.pdf")); got != "D1" {
		t.Errorf("first target = %q, want D1 kept", got)
	}
	if got := readFile(t, second); got != "existing" {
		t.Errorf("second target = %q, want untouched", got)
	}
	assertNotExist(t, filepath.Join(outDir, "page_003.pdf"))
	if len(res.Written) != 1 {
		t.Errorf("Written = %d, want 1", len(res.Written))
	}
}

func TestSplit_RenameOnConflict(t *testing.T) {
	t.Parallel()

	acc, src, outDir := splitFixture(t)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "page_001.pdf"), []byte("existing"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := pdfer.NewSplitter(acc, pdfer.WithConflictDecider(pdfer.ChoicePolicy(pdfer.ChoiceRename))).
		Split(context.Background(), pdfer.SplitRequest{Input: src, Pages: spec("1"), OutputDir: outDir})
	if err != nil {
		t.Fatalf("Split() error: %v", err)
	}

	renamed := filepath.Join(outDir, "page_001_1.pdf")
	if res.Written[0].Path != renamed || res.Written[0].Choice != pdfer.ChoiceRename {
		t.Errorf("Written[0] = %+v, want renamed to %s", res.Written[0], renamed)
	}
	if got := readFile(t, renamed); got != "D1" {
		t.Errorf("renamed target = %q, want D1", got)
	}
	if got := readFile(t, filepath.Join(outDir, "page_001.pdf")); got != "existing" {
		t.Errorf("original = %q, want untouched", got)
	}
}

// ---------------------------------------------------------------------------
// TestSplit_WriteFailures - Per-target failure handling
// ---------------------------------------------------------------------------

func TestSplit_WriteFailureContinues(t *testing.T) {
	t.Parallel()

	acc, src, outDir := splitFixture(t)
	acc.failWrite = func(pages []string) error {
		if pages[0] == "D2" {
			return errDiskFull
		}
		return nil
	}

	res, err := pdfer.NewSplitter(acc).Split(context.Background(), pdfer.SplitRequest{
		Input:     src,
		Pages:     spec("1,2,3"),
		OutputDir: outDir,
	})
	if !errors.Is(err, pdfer.ErrWriteFailure) {
		t.Fatalf("Split() error = %v, want ErrWriteFailure", err)
	}
	if !strings.Contains(err.Error(), "page_002.pdf") {
		t.Errorf("error %q should name the failed target", err)
	}

	if diff := cmp.Diff([]string{"page_001.pdf", "page_003.pdf"}, listDir(t, outDir)); diff != "" {
		t.Errorf("output files mismatch (-want +got):\n%s", diff)
	}
	if len(res.Written) != 2 || len(res.Failed) != 1 {
		t.Errorf("Written = %d, Failed = %d; want 2, 1", len(res.Written), len(res.Failed))
	}
}

func TestSplit_StopOnError(t *testing.T) {
	t.Parallel()

	acc, src, outDir := splitFixture(t)
	acc.failExtract = func(pages []int) error {
		if pages[0] == 2 {
			return errDiskFull
		}
		return nil
	}

	res, err := pdfer.NewSplitter(acc, pdfer.WithStopOnError(true)).Split(context.Background(), pdfer.SplitRequest{
		Input:     src,
		Pages:     spec("1,2,3"),
		OutputDir: outDir,
	})
	if !errors.Is(err, pdfer.ErrWriteFailure) {
		t.Fatalf("Split() error = %v, want ErrWriteFailure", err)
	}
	if diff := cmp.Diff([]string{"page_001.pdf"}, listDir(t, outDir)); diff != "" {
		t.Errorf("output files mismatch (-want +got):\n%s", diff)
	}
	if len(res.Failed) != 1 {
		t.Errorf("Failed = %d, want 1", len(res.Failed))
	}
}

func TestSplit_CanceledContext(t *testing.T) {
	t.Parallel()

	acc, src, outDir := splitFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pdfer.NewSplitter(acc).Split(ctx, pdfer.SplitRequest{Input: src, OutputDir: outDir})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Split() error = %v, want context.Canceled", err)
	}
	if files := listDir(t, outDir); len(files) != 0 {
		t.Errorf("files written after cancel: %v", files)
	}
}

// ---------------------------------------------------------------------------
// TestSplitter_Plan - Planning without filesystem access
// ---------------------------------------------------------------------------

func TestSplitter_Plan(t *testing.T) {
	t.Parallel()

	doc := &fakeDoc{pages: []string{"1", "2", "3", "4"}}
	plan, err := pdfer.NewSplitter(newFakeAccessor(), pdfer.WithPagePadding(2)).Plan(doc, spec("4,1-2"), "out")
	if err != nil {
		t.Fatalf("Plan() error: %v", err)
	}

	want := []pdfer.OutputTarget{
		{Path: filepath.Join("out", "page_04.pdf"), Label: "page_04", Pages: pdfer.PageSelection{4}},
		{Path: filepath.Join("out", "pages_01-02.pdf"), Label: "pages_01-02", Pages: pdfer.PageSelection{1, 2}},
	}
	if diff := cmp.Diff(want, plan.Targets); diff != "" {
		t.Errorf("Plan() mismatch (-want +got):\n%s", diff)
	}
	assertNotExist(t, "out")
}

func TestSplit_PreloadedSource(t *testing.T) {
	t.Parallel()

	acc, src, outDir := splitFixture(t)
	doc, err := acc.Load(src)
	if err != nil {
		t.Fatal(err)
	}
	// Unregister the file: a second load would now fail.
	delete(acc.docs, src)

	res, err := pdfer.NewSplitter(acc).Split(context.Background(), pdfer.SplitRequest{
		Source: doc, Pages: spec("3"), OutputDir: outDir,
	})
	if err != nil {
		t.Fatalf("Split() error: %v", err)
	}
	if len(res.Written) != 1 {
		t.Fatalf("Written = %d targets, want 1", len(res.Written))
	}
	if got := readFile(t, filepath.Join(outDir, "page_003.pdf")); got != "D3" {
		t.Errorf("page_003.pdf = %q, want %q", got, "D3")
	}
}
