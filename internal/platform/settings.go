package platform

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/aretw0/substore/pkg/core"
)

// EnvPrefix prefixes every environment variable read by LoadSettings.
const EnvPrefix = "SUBSTORE_"

// LoadSettings reads user settings from SUBSTORE_* environment variables.
func LoadSettings() (core.Settings, error) {
	var s core.Settings
	if err := env.ParseWithOptions(&s, env.Options{Prefix: EnvPrefix}); err != nil {
		return core.Settings{}, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}

func resolveSettings(o *options) (core.Settings, error) {
	if o.settings != nil {
		return *o.settings, nil
	}
	return LoadSettings()
}
