// Package config persists CLI settings under a config directory
// (default ~/.tip20cli).
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	defaultMode       = "mainnet"
	defaultMainnetRPC = "https://rpc.tempo.xyz"
	defaultTestnetRPC = "https://rpc.testnet.tempo.xyz"
	configFile        = "config.json"
	walletsFile       = "wallets.json"
)

// Config holds persisted CLI settings.
type Config struct {
	// NetworkMode is "mainnet" or "testnet".
	NetworkMode string `json:"network_mode"`
	// RPCs maps a network mode to its JSON-RPC endpoint.
	RPCs map[string]string `json:"rpcs"`
	// DefaultWallet is the wallet used when --wallet is not given.
	DefaultWallet string `json:"default_wallet"`
	// DefaultToken is the token (id or address) used when --token is not
	// given. Empty means the canonical USD token.
	DefaultToken string `json:"default_token"`

	configDir string
}

// Load reads config from dir (or creates defaults). dir defaults to
// ~/.tip20cli.
func Load(dir string) (*Config, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("could not determine home dir: %w", err)
		}
		dir = filepath.Join(home, ".tip20cli")
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("could not create config dir: %w", err)
	}

	cfg := defaults(dir)

	path := filepath.Join(dir, configFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.configDir = dir
	if cfg.RPCs == nil {
		cfg.RPCs = defaults(dir).RPCs
	}
	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.configDir, 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.configDir, configFile), data, 0o600)
}

// RPC returns the endpoint for the active network mode.
func (c *Config) RPC() (string, error) {
	url := c.RPCs[c.NetworkMode]
	if url == "" {
		return "", fmt.Errorf("no RPC configured for %q — run `t20 config set-rpc`", c.NetworkMode)
	}
	return url, nil
}

// SetRPC sets the endpoint for a network mode.
func (c *Config) SetRPC(mode, url string) {
	if c.RPCs == nil {
		c.RPCs = make(map[string]string)
	}
	c.RPCs[mode] = url
}

// Dir returns the config directory.
func (c *Config) Dir() string {
	return c.configDir
}

// WalletsPath returns the wallets file path.
func (c *Config) WalletsPath() string {
	return filepath.Join(c.configDir, walletsFile)
}

func defaults(dir string) *Config {
	return &Config{
		NetworkMode: defaultMode,
		RPCs: map[string]string{
			"mainnet": defaultMainnetRPC,
			"testnet": defaultTestnetRPC,
		},
		configDir: dir,
	}
}
