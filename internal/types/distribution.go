package types

// Distribution is a ROS distribution name, compared by exact match.
type Distribution string

const (
	DistributionKinetic  Distribution = "kinetic"
	DistributionLunar    Distribution = "lunar"
	DistributionMelodic  Distribution = "melodic"
	DistributionNoetic   Distribution = "noetic"
	DistributionDashing  Distribution = "dashing"
	DistributionEloquent Distribution = "eloquent"
	DistributionFoxy     Distribution = "foxy"
	DistributionGalactic Distribution = "galactic"
	DistributionRolling  Distribution = "rolling"
)

// KnownDistributions lists every accepted distribution in release order.
var KnownDistributions = []Distribution{
	DistributionKinetic,
	DistributionLunar,
	DistributionMelodic,
	DistributionNoetic,
	DistributionDashing,
	DistributionEloquent,
	DistributionFoxy,
	DistributionGalactic,
	DistributionRolling,
}

func (d Distribution) Generation() RosGeneration {
	switch d {
	case DistributionKinetic, DistributionLunar, DistributionMelodic, DistributionNoetic:
		return RosGeneration1
	case DistributionDashing, DistributionEloquent, DistributionFoxy, DistributionGalactic, DistributionRolling:
		return RosGeneration2
	default:
		return RosGenerationUnknown
	}
}
