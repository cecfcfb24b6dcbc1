package types

// PackageSpec is a single manifest entry. Raw is what the installer
// receives; Name, Op and Version are derived from it for reporting.
type PackageSpec struct {
	Raw     string
	Name    string
	Op      ConstraintOp
	Version string
}

// Pinned reports whether the spec carries a version constraint.
func (p PackageSpec) Pinned() bool {
	return p.Op != ConstraintOpNone
}
