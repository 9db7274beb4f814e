package cmd

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t20labs/tip20cli/internal/config"
	"github.com/t20labs/tip20cli/tip20"
)

func resetFlags(t *testing.T) {
	t.Helper()
	prevToken, prevCfg := tokenFlag, cfg
	t.Cleanup(func() { tokenFlag, cfg = prevToken, prevCfg })
	tokenFlag = ""
	cfg = &config.Config{}
}

func TestParseAmountWholeUnits(t *testing.T) {
	got, err := parseAmount("5", 6)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(5_000_000), got)
}

func TestParseAmountFractional(t *testing.T) {
	got, err := parseAmount("1.5", 6)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1_500_000), got)
}

func TestParseAmountZeroDecimals(t *testing.T) {
	got, err := parseAmount("42", 0)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(42), got)
}

func TestParseAmountInvalid(t *testing.T) {
	_, err := parseAmount("lots", 6)
	assert.Error(t, err)
}

func TestFormatAmountRoundTrip(t *testing.T) {
	assert.Equal(t, "1.500000", formatAmount(big.NewInt(1_500_000), 6))
	assert.Equal(t, "42", formatAmount(big.NewInt(42), 0))
	assert.Equal(t, "0", formatAmount(nil, 6))
}

func TestParseAddress(t *testing.T) {
	addr, err := parseAddress("0xAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAa")
	require.NoError(t, err)
	assert.Equal(t, "0xAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAa", addr.Hex())
}

func TestParseAddressInvalid(t *testing.T) {
	for _, bad := range []string{"", "0x123", "not-an-address", "0xzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz"} {
		_, err := parseAddress(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestResolveTokenEmptyIsUSD(t *testing.T) {
	resetFlags(t)

	token, err := resolveToken()
	require.NoError(t, err)
	assert.Equal(t, tip20.TokenUSD.Address(), token.Address())
}

func TestResolveTokenByID(t *testing.T) {
	resetFlags(t)
	tokenFlag = "7"

	token, err := resolveToken()
	require.NoError(t, err)
	id, byID := token.ID()
	assert.True(t, byID)
	assert.Equal(t, uint64(7), id)
}

func TestResolveTokenByAddress(t *testing.T) {
	resetFlags(t)
	tokenFlag = "0x20C0000000000000000000000000000000000009"

	token, err := resolveToken()
	require.NoError(t, err)
	assert.Equal(t, tokenFlag, token.Address().Hex())
}

func TestResolveTokenConfigDefault(t *testing.T) {
	resetFlags(t)
	cfg.DefaultToken = "3"

	token, err := resolveToken()
	require.NoError(t, err)
	id, _ := token.ID()
	assert.Equal(t, uint64(3), id)
}

func TestResolveTokenFlagBeatsConfig(t *testing.T) {
	resetFlags(t)
	cfg.DefaultToken = "3"
	tokenFlag = "4"

	token, err := resolveToken()
	require.NoError(t, err)
	id, _ := token.ID()
	assert.Equal(t, uint64(4), id)
}

func TestResolveTokenInvalid(t *testing.T) {
	resetFlags(t)
	tokenFlag = "sevenish"

	_, err := resolveToken()
	assert.Error(t, err)
}

func TestParseRoleNames(t *testing.T) {
	role, err := parseRole("minter")
	require.NoError(t, err)
	assert.Equal(t, tip20.RoleMinter, role)

	role, err = parseRole("ADMIN")
	require.NoError(t, err)
	assert.Equal(t, tip20.RoleDefaultAdmin, role)
}

func TestParseRoleHex(t *testing.T) {
	role, err := parseRole("0x9f2df0fed2c77648de5860a4cc508cd0818c85b8b8a1ab4ceeef8d981c8956a6")
	require.NoError(t, err)
	assert.Equal(t, tip20.RoleMinter, role)
}

func TestParseRoleUnknown(t *testing.T) {
	_, err := parseRole("emperor")
	assert.Error(t, err)
}

func TestParseRolesList(t *testing.T) {
	roles, err := parseRoles("minter, pauser")
	require.NoError(t, err)
	assert.Equal(t, [][32]byte{tip20.RoleMinter, tip20.RolePauser}, roles)
}

func TestParseRolesEmpty(t *testing.T) {
	_, err := parseRoles(" , ")
	assert.Error(t, err)
}

func TestRoleNameRendering(t *testing.T) {
	assert.Equal(t, "MINTER", roleName(tip20.RoleMinter))
	assert.Equal(t, "ADMIN", roleName(tip20.RoleDefaultAdmin))

	var custom [32]byte
	custom[31] = 0x01
	assert.Contains(t, roleName(custom), "0x")
}
