package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"ros-pip-setup/internal/types"
)

// opTokens is the ordered list of constraint operators tried at the first
// operator character. Longer tokens must precede shorter ones to avoid
// false matches (e.g. ">=" before ">").
var opTokens = []types.ConstraintOp{
	types.ConstraintOpGte,
	types.ConstraintOpLte,
	types.ConstraintOpCompat,
	types.ConstraintOpNe,
	types.ConstraintOpEq2,
	types.ConstraintOpEq,
	types.ConstraintOpGt,
	types.ConstraintOpLt,
}

const opChars = "<>=!~"

// ParsePackageSpec splits a raw "name>=version" entry into a PackageSpec.
// Everything after the first operator is kept as the version so that
// multi-clause specifiers ("a>=1,<2") survive intact. Extras and
// environment markers are dropped from Name only.
func ParsePackageSpec(raw string) (types.PackageSpec, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return types.PackageSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("empty package spec")
	}
	requirement := raw
	if idx := strings.Index(requirement, ";"); idx != -1 {
		requirement = strings.TrimSpace(requirement[:idx])
	}
	idx := strings.IndexAny(requirement, opChars)
	if idx == -1 {
		return types.PackageSpec{
			Raw:  raw,
			Name: stripExtras(requirement),
			Op:   types.ConstraintOpNone,
		}, nil
	}
	name := stripExtras(requirement[:idx])
	rest := requirement[idx:]
	for _, op := range opTokens {
		if !strings.HasPrefix(rest, string(op)) {
			continue
		}
		version := strings.TrimSpace(strings.TrimPrefix(rest, string(op)))
		if name == "" || version == "" {
			break
		}
		return types.PackageSpec{
			Raw:     raw,
			Name:    name,
			Op:      op,
			Version: version,
		}, nil
	}
	return types.PackageSpec{}, errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("invalid package spec: %s", raw))
}

func stripExtras(value string) string {
	if idx := strings.Index(value, "["); idx != -1 {
		value = value[:idx]
	}
	return strings.TrimSpace(value)
}

// SpecifierString converts a parsed spec to a PEP 440 specifier set
// string (e.g. ">= 1.0", "== 2.*").
func SpecifierString(spec types.PackageSpec) string {
	op := string(spec.Op)
	if spec.Op == types.ConstraintOpEq {
		op = string(types.ConstraintOpEq2)
	}
	return strings.TrimSpace(fmt.Sprintf("%s %s", op, spec.Version))
}
