package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "mainnet", cfg.NetworkMode)
	assert.Equal(t, "https://rpc.tempo.xyz", cfg.RPCs["mainnet"])
	assert.Equal(t, "https://rpc.testnet.tempo.xyz", cfg.RPCs["testnet"])
	assert.Empty(t, cfg.DefaultWallet)
	assert.Empty(t, cfg.DefaultToken)
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)

	cfg.NetworkMode = "testnet"
	cfg.DefaultWallet = "alice"
	cfg.DefaultToken = "7"
	cfg.SetRPC("testnet", "http://localhost:8545")
	require.NoError(t, cfg.Save())

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "testnet", got.NetworkMode)
	assert.Equal(t, "alice", got.DefaultWallet)
	assert.Equal(t, "7", got.DefaultToken)

	url, err := got.RPC()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8545", url)
}

func TestRPCMissingMode(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	cfg.NetworkMode = "devnet"
	_, err = cfg.RPC()
	assert.Error(t, err)
}

func TestLoadCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", ".tip20cli")
	_, err := Load(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestConfigFilePermissions(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NoError(t, cfg.Save())

	info, err := os.Stat(filepath.Join(dir, "config.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoadCorruptConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0o600))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestWalletsPath(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "wallets.json"), cfg.WalletsPath())
	assert.Equal(t, dir, cfg.Dir())
}
