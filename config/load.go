package config

import (
	"dao/core"

	configUtil "github.com/fox-one/pkg/config"
)

// Load load config file
func Load(configFile string, config *core.Config) error {
	configUtil.AutomaticLoadEnv("DAO")
	if configFile != "" {
		if err := configUtil.LoadYaml(configFile, config); err != nil {
			return err
		}
	}

	defaultConfig(config)
	return nil
}
