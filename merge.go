package pdfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/alnah/go-pdfer/internal/fileutil"
)

// MergeRequest describes one merge.
type MergeRequest struct {
	Inputs []string // Merged in this order
	Output string   // Default DefaultMergeOutput; a .pdf extension is forced
}

// MergeResult reports a completed merge.
type MergeResult struct {
	Target      OutputTarget
	Inputs      []Document
	PageCount   int
	SingleInput bool // Only one input: the output is a rewritten copy
}

// Merger concatenates documents into one.
type Merger struct {
	acc Accessor
	cfg engineConfig
}

// NewMerger creates a Merger reading and writing through acc.
func NewMerger(acc Accessor, opts ...Option) *Merger {
	m := &Merger{acc: acc, cfg: defaultEngineConfig()}
	for _, opt := range opts {
		opt(&m.cfg)
	}
	return m
}

// Merge loads every input, concatenates their pages in input order, and
// writes the result atomically.
//
// Every input is loaded and checked before anything is written: an
// unreadable input fails with ErrInvalidPDFFile and a zero-page input with
// ErrEmptyPDFInput. An existing output goes through the conflict decider.
func (m *Merger) Merge(ctx context.Context, req MergeRequest) (*MergeResult, error) {
	if len(req.Inputs) == 0 {
		return nil, ErrNoInput
	}

	docs := make([]Document, 0, len(req.Inputs))
	total := 0
	for _, path := range req.Inputs {
		doc, err := loadDocument(m.acc, path)
		if err != nil {
			return nil, err
		}
		if doc.PageCount() == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyPDFInput, path)
		}
		m.cfg.log.WithFields(logrus.Fields{
			"path":    path,
			"pages":   doc.PageCount(),
			"version": doc.Version(),
		}).Debug("loaded input")
		docs = append(docs, doc)
		total += doc.PageCount()
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	output := req.Output
	if output == "" {
		output = DefaultMergeOutput
	}
	output = fileutil.EnsurePDFExt(output)

	merged, err := m.acc.Concat(docs)
	if err != nil {
		return nil, fmt.Errorf("%w: merging %d documents: %v", ErrWriteFailure, len(docs), err)
	}

	resolver := NewConflictResolver(m.cfg.decider, m.cfg.log)
	path, choice, err := resolver.Resolve(output)
	if err != nil {
		return nil, err
	}

	if err := writeDocument(m.acc, merged, path, m.cfg.perm); err != nil {
		return nil, err
	}

	m.cfg.log.WithFields(logrus.Fields{"path": path, "pages": total}).Debug("merged")

	return &MergeResult{
		Target:      OutputTarget{Path: path, Label: fileutil.Stem(path), Choice: choice},
		Inputs:      docs,
		PageCount:   total,
		SingleInput: len(docs) == 1,
	}, nil
}

// loadDocument loads path and makes sure the error wraps ErrInvalidPDFFile.
func loadDocument(acc Accessor, path string) (Document, error) {
	doc, err := acc.Load(path)
	if err != nil {
		if errors.Is(err, ErrInvalidPDFFile) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPDFFile, path, err)
	}
	return doc, nil
}

// writeDocument serializes doc to path through an atomic file write.
func writeDocument(acc Accessor, doc Document, path string, perm os.FileMode) error {
	err := fileutil.WriteAtomic(path, perm, func(w io.Writer) error {
		return acc.Write(doc, w)
	})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailure, path, err)
	}
	return nil
}
