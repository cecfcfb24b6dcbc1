package types

import "strings"

// Command is a fully built child process invocation.
type Command struct {
	Name string
	Args []string
}

// Argv returns the command name followed by its arguments.
func (c Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

func (c Command) String() string {
	return strings.Join(c.Argv(), " ")
}

type InstalledPackage struct {
	Name    string
	Version string
}

// VersionChange records a package whose installed version moved between
// two inventory snapshots.
type VersionChange struct {
	Package string
	Before  string
	After   string
}

// ConstraintMismatch is an installed package that does not satisfy the
// manifest entry that requested it.
type ConstraintMismatch struct {
	Spec      PackageSpec
	Installed string
}
