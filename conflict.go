package pdfer

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/alnah/go-pdfer/internal/fileutil"
)

// Choice is the action taken for an output path that already exists.
type Choice int

// Conflict choices. ChoiceNone means the path was free.
const (
	ChoiceNone Choice = iota
	ChoiceOverwrite
	ChoiceRename
	ChoiceAbort
)

// String returns the lowercase name used by --on-conflict.
func (c Choice) String() string {
	switch c {
	case ChoiceNone:
		return "none"
	case ChoiceOverwrite:
		return "overwrite"
	case ChoiceRename:
		return "rename"
	case ChoiceAbort:
		return "abort"
	default:
		return "Choice(" + strconv.Itoa(int(c)) + ")"
	}
}

// ConflictDecider chooses what to do when path already exists.
type ConflictDecider interface {
	Decide(path string) (Choice, error)
}

// DeciderFunc adapts a function to ConflictDecider.
type DeciderFunc func(path string) (Choice, error)

// Decide calls f(path).
func (f DeciderFunc) Decide(path string) (Choice, error) {
	return f(path)
}

// ChoicePolicy returns a decider that always answers c.
func ChoicePolicy(c Choice) ConflictDecider {
	return DeciderFunc(func(string) (Choice, error) { return c, nil })
}

// ConflictResolver turns planned output paths into final ones. It remembers
// every path it handed out, so two targets of one operation never share a
// destination even before either is written.
type ConflictResolver struct {
	decider ConflictDecider
	log     logrus.FieldLogger
	claimed map[string]bool
	exists  func(path string) bool
}

// NewConflictResolver returns a resolver asking decider on conflicts.
// A nil decider aborts on every conflict; a nil log discards.
func NewConflictResolver(decider ConflictDecider, log logrus.FieldLogger) *ConflictResolver {
	if decider == nil {
		decider = ChoicePolicy(ChoiceAbort)
	}
	return &ConflictResolver{
		decider: decider,
		log:     orDiscard(log),
		claimed: make(map[string]bool),
		exists:  fileutil.PathExists,
	}
}

// Resolve returns the path to write for target and the choice applied.
// It fails with ErrAbortedByUser when the decider aborts.
func (r *ConflictResolver) Resolve(target string) (string, Choice, error) {
	target = filepath.Clean(target)
	if !r.taken(target) {
		r.claimed[target] = true
		return target, ChoiceNone, nil
	}

	r.log.WithError(fmt.Errorf("%w: %s", ErrOutputConflict, target)).Debug("asking for conflict decision")

	choice, err := r.decider.Decide(target)
	if err != nil {
		return "", ChoiceAbort, err
	}
	r.log.WithFields(logrus.Fields{"path": target, "choice": choice}).Debug("conflict resolved")

	switch choice {
	case ChoiceOverwrite:
		r.claimed[target] = true
		return target, choice, nil
	case ChoiceRename:
		alt := AlternatePath(target, r.taken)
		r.claimed[alt] = true
		return alt, choice, nil
	case ChoiceAbort:
		return "", choice, fmt.Errorf("%w: %s exists", ErrAbortedByUser, target)
	default:
		return "", ChoiceAbort, fmt.Errorf("unknown conflict choice %v for %s", choice, target)
	}
}

func (r *ConflictResolver) taken(path string) bool {
	return r.claimed[path] || r.exists(path)
}

// AlternatePath returns "<stem>_<n><ext>" next to path with the smallest
// n >= 1 for which taken reports false.
func AlternatePath(path string, taken func(string) bool) string {
	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)

	for n := 1; ; n++ {
		candidate := filepath.Join(dir, stem+"_"+strconv.Itoa(n)+ext)
		if !taken(candidate) {
			return candidate
		}
	}
}
