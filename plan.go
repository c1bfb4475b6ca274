package pdfer

// OutputTarget is one document an operation will write.
type OutputTarget struct {
	Path   string        // Planned path; after writing, the path actually used
	Label  string        // "page_001", "pages_005-007", or the merge output name
	Pages  PageSelection // Pages of the source, in output order (split only)
	Choice Choice        // Conflict choice applied, ChoiceNone if the path was free
}

// OperationPlan lists every target of one invocation. It is fully validated
// before the first target is written.
type OperationPlan struct {
	Targets []OutputTarget
}

// PageTotal returns the number of pages across all targets.
func (p *OperationPlan) PageTotal() int {
	n := 0
	for _, t := range p.Targets {
		n += len(t.Pages)
	}
	return n
}
