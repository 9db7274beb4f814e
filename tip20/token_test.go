package tip20

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestTokenByIDAddress(t *testing.T) {
	token := TokenByID(1)
	assert.Equal(t, common.HexToAddress("0x20C0000000000000000000000000000000000001"), token.Address())
}

func TestTokenByIDAddressLargeID(t *testing.T) {
	token := TokenByID(0xDEADBEEF)
	assert.Equal(t, common.HexToAddress("0x20C00000000000000000000000000000DEADBEEF"), token.Address())
}

func TestTokenZeroValueIsUSD(t *testing.T) {
	var token Token
	assert.True(t, token.IsZero())
	assert.Equal(t, TokenUSD.Address(), token.Address())
}

func TestTokenByAddress(t *testing.T) {
	addr := common.HexToAddress("0x1111111111111111111111111111111111111111")
	token := TokenByAddress(addr)
	assert.Equal(t, addr, token.Address())
	assert.False(t, token.IsZero())

	_, byID := token.ID()
	assert.False(t, byID)
}

func TestTokenID(t *testing.T) {
	id, byID := TokenByID(42).ID()
	assert.True(t, byID)
	assert.Equal(t, uint64(42), id)
}

func TestTokenIDsProduceDistinctAddresses(t *testing.T) {
	seen := map[common.Address]bool{}
	for id := uint64(1); id <= 100; id++ {
		addr := TokenByID(id).Address()
		assert.False(t, seen[addr], "duplicate address for id %d", id)
		seen[addr] = true
	}
}

func TestTokenString(t *testing.T) {
	assert.Contains(t, TokenByID(7).String(), "token #7")

	addr := common.HexToAddress("0x2222222222222222222222222222222222222222")
	assert.Equal(t, addr.Hex(), TokenByAddress(addr).String())
}

func TestRoleIDMatchesKeccak(t *testing.T) {
	// keccak256("MINTER_ROLE") — the well-known OpenZeppelin value.
	assert.Equal(t,
		common.HexToHash("0x9f2df0fed2c77648de5860a4cc508cd0818c85b8b8a1ab4ceeef8d981c8956a6"),
		common.Hash(RoleMinter))
}

func TestRoleDefaultAdminIsZero(t *testing.T) {
	assert.Equal(t, [32]byte{}, RoleDefaultAdmin)
}
