package app

import (
	"github.com/rs/zerolog/log"

	"ros-pip-setup/internal/core"
)

func (s Service) ValidateDistributions(req ValidateRequest) (ValidateResult, error) {
	distros, err := core.ParseDistributions(req.Distributions)
	if err != nil {
		return ValidateResult{}, err
	}
	for _, distro := range distros {
		log.Debug().
			Str("distribution", string(distro)).
			Int("ros", int(distro.Generation())).
			Msg("distribution accepted")
	}
	return ValidateResult{Distributions: distros}, nil
}
