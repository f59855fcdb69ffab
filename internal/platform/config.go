package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// configFile is the name of the persisted store configuration inside the store dir.
const configFile = "store.yaml"

// storeConfig is the persisted store configuration. Type records the Name()
// of the backend that created the store.
type storeConfig struct {
	Type string `yaml:"type"`
}

func readConfig(storeDir string) (storeConfig, error) {
	var cfg storeConfig

	data, err := os.ReadFile(filepath.Join(storeDir, configFile))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("%w: %s", ErrNotInitialized, storeDir)
		}
		return cfg, fmt.Errorf("failed to read store config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse store config: %w", err)
	}
	if cfg.Type == "" {
		return cfg, fmt.Errorf("store config %s has no type", filepath.Join(storeDir, configFile))
	}
	return cfg, nil
}

func writeConfig(storeDir string, cfg storeConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode store config: %w", err)
	}
	return writeFileAtomic(filepath.Join(storeDir, configFile), data, 0644)
}

func configExists(storeDir string) bool {
	_, err := os.Stat(filepath.Join(storeDir, configFile))
	return err == nil
}
