package core

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"ros-pip-setup/internal/types"
)

var validDistributions = func() map[types.Distribution]struct{} {
	set := make(map[types.Distribution]struct{}, len(types.KnownDistributions))
	for _, distro := range types.KnownDistributions {
		set[distro] = struct{}{}
	}
	return set
}()

// ValidateDistributions reports whether every name is a supported ROS
// distribution. An empty list is valid.
func ValidateDistributions(names []string) bool {
	return len(UnknownDistributions(names)) == 0
}

// UnknownDistributions returns the names that are not supported, in input
// order.
func UnknownDistributions(names []string) []string {
	var unknown []string
	for _, name := range names {
		if _, ok := validDistributions[types.Distribution(name)]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// ParseDistributions splits a whitespace-delimited CI input and rejects the
// whole request if any entry is unsupported.
func ParseDistributions(raw string) ([]types.Distribution, error) {
	names := strings.Fields(raw)
	if unknown := UnknownDistributions(names); len(unknown) > 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("input has invalid distribution names: %s", strings.Join(unknown, ", ")))
	}
	distros := make([]types.Distribution, 0, len(names))
	for _, name := range names {
		distros = append(distros, types.Distribution(name))
	}
	return distros, nil
}
