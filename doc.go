// Package pdfer merges PDF documents and splits them into page subsets.
//
// # Page Specifications
//
// Pages are selected with a comma-separated list of 1-based tokens:
//
//	3        a single page
//	2-5      a closed range, start <= end
//	7-       from page 7 to the last page
//
// ParsePageSpec turns the text into tokens without looking at any document.
// ResolvePages binds tokens to a real page count and returns the ordered
// PageSelection, keeping explicit repeats:
//
//	tokens, err := pdfer.ParsePageSpec("1,3,5-7,10-")
//	if err != nil {
//	    return err // wraps ErrInvalidPageSpec
//	}
//	pages, err := pdfer.ResolvePages(tokens, 12)
//	// pages = [1 3 5 6 7 10 11 12]
//
// # Merging and Splitting
//
// Engines work through an Accessor, which loads, slices, concatenates and
// serializes documents. The internal/pdfdoc package provides one on pdfcpu.
//
//	merger := pdfer.NewMerger(accessor, pdfer.WithConflictDecider(pdfer.ChoicePolicy(pdfer.ChoiceRename)))
//	res, err := merger.Merge(ctx, pdfer.MergeRequest{
//	    Inputs: []string{"a.pdf", "b.pdf"},
//	    Output: "out.pdf",
//	})
//
//	splitter := pdfer.NewSplitter(accessor)
//	spec := "1,3,5-7"
//	res, err := splitter.Split(ctx, pdfer.SplitRequest{Input: "doc.pdf", Pages: &spec})
//
// Every input is loaded and every page selection validated before the first
// byte is written. Outputs are written to a temporary file in the target
// directory and renamed into place, so a failed write never leaves a
// truncated file behind.
//
// # Output Conflicts
//
// When an output path already exists, the engine asks its ConflictDecider.
// ChoiceOverwrite replaces the file, ChoiceRename picks the first free
// "<stem>_<n>.pdf", and ChoiceAbort stops the operation with ErrAbortedByUser
// while keeping outputs already written.
package pdfer
