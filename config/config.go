package config

import "dao/core"

const (
	defaultTreasury = "1000"
	defaultPort     = 9000
	defaultHost     = "http://localhost:9000"
)

func defaultMembers() []core.MemberConfig {
	return []core.MemberConfig{
		{ID: "alice", Balance: 100},
		{ID: "bob", Balance: 200},
		{ID: "carol", Balance: 50},
	}
}

func defaultConfig(cfg *core.Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "dao"
	}

	if cfg.App.Treasury == "" {
		cfg.App.Treasury = defaultTreasury
	}

	if len(cfg.Members) == 0 {
		cfg.Members = defaultMembers()
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}

	if cfg.Server.Host == "" {
		cfg.Server.Host = defaultHost
	}
}
