package pdfer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/alnah/go-pdfer/internal/fileutil"
)

// SplitRequest describes one split.
type SplitRequest struct {
	Input     string
	Source    Document // Already loaded input; Input is not read again when set
	Pages     *string  // Nil splits every page into its own file
	OutputDir string   // Default "<input stem>_pages"
}

// SplitResult reports the outcome of a split, including partial outcomes.
type SplitResult struct {
	Source    Document
	OutputDir string
	Plan      *OperationPlan
	Written   []OutputTarget
	Failed    []OutputTarget
}

// Splitter writes page subsets of one document to separate files.
type Splitter struct {
	acc Accessor
	cfg engineConfig
}

// NewSplitter creates a Splitter reading and writing through acc.
func NewSplitter(acc Accessor, opts ...Option) *Splitter {
	s := &Splitter{acc: acc, cfg: defaultEngineConfig()}
	for _, opt := range opts {
		opt(&s.cfg)
	}
	return s
}

// Split loads req.Input, plans one output per page (no spec) or per token,
// and writes each target atomically.
//
// The whole spec is validated before the output directory is created. A
// failed target is recorded and the remaining ones are still attempted,
// unless WithStopOnError is set; the returned error then joins every
// failure, each wrapping ErrWriteFailure. An abort stops immediately and
// keeps the targets already written. The result is non-nil whenever the
// source was loaded and the plan built.
func (s *Splitter) Split(ctx context.Context, req SplitRequest) (*SplitResult, error) {
	doc := req.Source
	if doc == nil {
		if req.Input == "" {
			return nil, ErrNoInput
		}
		var err error
		if doc, err = loadDocument(s.acc, req.Input); err != nil {
			return nil, err
		}
		s.cfg.log.WithFields(logrus.Fields{
			"path":    req.Input,
			"pages":   doc.PageCount(),
			"version": doc.Version(),
		}).Debug("loaded input")
	}

	outDir := req.OutputDir
	if outDir == "" {
		outDir = fileutil.Stem(doc.Path()) + "_pages"
	}

	plan, err := s.Plan(doc, req.Pages, outDir)
	if err != nil {
		return nil, err
	}

	res := &SplitResult{Source: doc, OutputDir: outDir, Plan: plan}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return res, fmt.Errorf("%w: creating output directory: %v", ErrWriteFailure, err)
	}

	resolver := NewConflictResolver(s.cfg.decider, s.cfg.log)
	var failures []error

	for _, target := range plan.Targets {
		if err := ctx.Err(); err != nil {
			return res, errors.Join(append(failures, err)...)
		}

		path, choice, err := resolver.Resolve(target.Path)
		if err != nil {
			return res, errors.Join(append(failures, err)...)
		}
		target.Path, target.Choice = path, choice

		if err := s.writeTarget(doc, target); err != nil {
			s.cfg.log.WithField("path", path).WithError(err).Debug("target failed")
			res.Failed = append(res.Failed, target)
			failures = append(failures, err)
			if s.cfg.stopOnError {
				break
			}
			continue
		}
		res.Written = append(res.Written, target)
	}

	return res, errors.Join(failures...)
}

func (s *Splitter) writeTarget(doc Document, target OutputTarget) error {
	part, err := s.acc.ExtractPages(doc, target.Pages)
	if err != nil {
		return fmt.Errorf("%w: %s: extracting pages %s: %v", ErrWriteFailure, target.Path, target.Pages, err)
	}
	return writeDocument(s.acc, part, target.Path, s.cfg.perm)
}

// Plan builds the split targets for doc under outDir without touching the
// filesystem. With a nil spec every page gets its own target; otherwise each
// token does, and a token repeated verbatim is planned once.
func (s *Splitter) Plan(doc Document, spec *string, outDir string) (*OperationPlan, error) {
	count := doc.PageCount()

	if spec == nil {
		pages, err := AllPages(count)
		if err != nil {
			return nil, err
		}
		plan := &OperationPlan{Targets: make([]OutputTarget, 0, len(pages))}
		for _, p := range pages {
			label := "page_" + s.pad(p)
			plan.Targets = append(plan.Targets, s.target(outDir, label, PageSelection{p}))
		}
		return plan, nil
	}

	tokens, err := ParsePageSpec(*spec)
	if err != nil {
		return nil, err
	}
	// Validate everything first so the first violation in spec order wins.
	if _, err := ResolvePages(tokens, count); err != nil {
		return nil, err
	}

	plan := &OperationPlan{}
	seen := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		pages, err := resolveToken(tok, count)
		if err != nil {
			return nil, err
		}
		label := s.label(tok, pages)
		if seen[label] {
			continue
		}
		seen[label] = true
		plan.Targets = append(plan.Targets, s.target(outDir, label, pages))
	}
	return plan, nil
}

func (s *Splitter) target(outDir, label string, pages PageSelection) OutputTarget {
	return OutputTarget{
		Path:  filepath.Join(outDir, label+".pdf"),
		Label: label,
		Pages: pages,
	}
}

// label names a token's group: page_<n> for a single page, pages_<s>-<e>
// for a range, using the resolved end for open ranges.
func (s *Splitter) label(tok PageToken, pages PageSelection) string {
	if tok.Kind == TokenSingle {
		return "page_" + s.pad(pages[0])
	}
	return "pages_" + s.pad(pages[0]) + "-" + s.pad(pages[len(pages)-1])
}

func (s *Splitter) pad(n int) string {
	return fmt.Sprintf("%0*d", s.cfg.padding, n)
}
