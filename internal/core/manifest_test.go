package core

import (
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ros-pip-setup/internal/types"
)

func baseManifest() types.Manifest {
	return types.Manifest{
		APIVersion: "v1",
		Kind:       types.ManifestKindPip,
		Metadata:   types.Metadata{Name: "test", Version: "1"},
		Packages:   []string{"argcomplete", "colcon-core==0.6.1", "flake8<3.8"},
	}
}

func TestValidateManifestCases(t *testing.T) {
	tests := []struct {
		name    string
		build   func() types.Manifest
		wantErr string
	}{
		{
			name:  "valid",
			build: baseManifest,
		},
		{
			name: "missing api version",
			build: func() types.Manifest {
				m := baseManifest()
				m.APIVersion = ""
				return m
			},
			wantErr: "api_version",
		},
		{
			name: "no packages",
			build: func() types.Manifest {
				m := baseManifest()
				m.Packages = nil
				return m
			},
			wantErr: "at least one package",
		},
		{
			name: "duplicate after normalization",
			build: func() types.Manifest {
				m := baseManifest()
				m.Packages = append(m.Packages, "Colcon_Core>=0.5")
				return m
			},
			wantErr: "duplicate package",
		},
		{
			name: "unparseable entry",
			build: func() types.Manifest {
				m := baseManifest()
				m.Packages = append(m.Packages, "==1.0")
				return m
			},
			wantErr: "invalid package spec",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			specs, err := ValidateManifest(t.Context(), tt.build())
			if tt.wantErr == "" {
				require.NoError(t, err)
				require.Len(t, specs, 3)
				assert.Equal(t, "colcon-core==0.6.1", specs[1].Raw)
				return
			}
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
