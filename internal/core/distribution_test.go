package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"ros-pip-setup/internal/types"
)

func TestValidateDistributions(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  bool
	}{
		{"empty", nil, true},
		{"ros1 and ros2", []string{"noetic", "foxy"}, true},
		{"all known", []string{"kinetic", "lunar", "melodic", "noetic", "dashing", "eloquent", "foxy", "galactic", "rolling"}, true},
		{"ubuntu codename", []string{"noetic", "jammy"}, false},
		{"case sensitive", []string{"Noetic"}, false},
		{"empty entry", []string{""}, false},
		{"humble is not supported", []string{"humble"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateDistributions(tt.input))
		})
	}
}

func TestValidateDistributionsProperties(t *testing.T) {
	known := make([]string, 0, len(types.KnownDistributions))
	for _, distro := range types.KnownDistributions {
		known = append(known, string(distro))
	}

	t.Run("known only", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			names := rapid.SliceOf(rapid.SampledFrom(known)).Draw(t, "names")
			if !ValidateDistributions(names) {
				t.Fatalf("expected %v to be valid", names)
			}
		})
	})

	t.Run("one unknown poisons the list", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			names := rapid.SliceOf(rapid.SampledFrom(known)).Draw(t, "names")
			bad := rapid.StringMatching(`[a-z]{1,10}`).
				Filter(func(s string) bool {
					_, ok := validDistributions[types.Distribution(s)]
					return !ok
				}).
				Draw(t, "bad")
			pos := rapid.IntRange(0, len(names)).Draw(t, "pos")
			mixed := append(append(append([]string{}, names[:pos]...), bad), names[pos:]...)
			if ValidateDistributions(mixed) {
				t.Fatalf("expected %v to be invalid", mixed)
			}
		})
	})
}

func TestParseDistributions(t *testing.T) {
	distros, err := ParseDistributions("  noetic\tfoxy\n rolling ")
	require.NoError(t, err)
	want := []types.Distribution{types.DistributionNoetic, types.DistributionFoxy, types.DistributionRolling}
	if diff := cmp.Diff(want, distros); diff != "" {
		t.Fatalf("unexpected distributions (-want +got):\n%s", diff)
	}

	distros, err = ParseDistributions("")
	require.NoError(t, err)
	assert.Empty(t, distros)
}

func TestParseDistributionsRejectsUnknown(t *testing.T) {
	_, err := ParseDistributions("noetic jammy humble")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "jammy, humble")
}

func TestDistributionGeneration(t *testing.T) {
	assert.Equal(t, types.RosGeneration1, types.DistributionNoetic.Generation())
	assert.Equal(t, types.RosGeneration2, types.DistributionRolling.Generation())
	assert.Equal(t, types.RosGenerationUnknown, types.Distribution("jammy").Generation())
}
