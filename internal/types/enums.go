package types

type ManifestKind string

const (
	ManifestKindPip ManifestKind = "pip-manifest"
)

type RosGeneration int

const (
	RosGenerationUnknown RosGeneration = 0
	RosGeneration1       RosGeneration = 1
	RosGeneration2       RosGeneration = 2
)

type ConstraintOp string

const (
	ConstraintOpNone   ConstraintOp = ""
	ConstraintOpEq     ConstraintOp = "="
	ConstraintOpEq2    ConstraintOp = "=="
	ConstraintOpNe     ConstraintOp = "!="
	ConstraintOpCompat ConstraintOp = "~="
	ConstraintOpGte    ConstraintOp = ">="
	ConstraintOpLte    ConstraintOp = "<="
	ConstraintOpGt     ConstraintOp = ">"
	ConstraintOpLt     ConstraintOp = "<"
)
