package tip20

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testToken   = TokenByID(3)
	testAccount = common.HexToAddress("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	testOther   = common.HexToAddress("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
)

// unpackInputs decodes calldata back into its argument list so tests can
// verify encoding without fixed hex fixtures.
func unpackInputs(t *testing.T, method string, data []byte) []any {
	t.Helper()
	m, ok := TokenABI.Methods[method]
	require.True(t, ok, "method %s not in ABI", method)
	assert.Equal(t, m.ID, data[:4])
	out, err := m.Inputs.Unpack(data[4:])
	require.NoError(t, err)
	return out
}

func TestTransferCallPlain(t *testing.T) {
	call, err := TransferCall(TransferArgs{Token: testToken, To: testOther, Amount: big.NewInt(100)})
	require.NoError(t, err)

	assert.Equal(t, "transfer", call.Method)
	assert.Equal(t, testToken.Address(), call.To)

	args := unpackInputs(t, "transfer", call.Data)
	assert.Equal(t, testOther, args[0])
	assert.Equal(t, big.NewInt(100), args[1])
}

func TestTransferCallWithMemo(t *testing.T) {
	call, err := TransferCall(TransferArgs{
		Token:  testToken,
		To:     testOther,
		Amount: big.NewInt(100),
		Memo:   Memo("invoice 42"),
	})
	require.NoError(t, err)

	assert.Equal(t, "transferWithMemo", call.Method)
	args := unpackInputs(t, "transferWithMemo", call.Data)
	assert.Equal(t, *Memo("invoice 42"), args[2])
}

func TestTransferCallFrom(t *testing.T) {
	call, err := TransferCall(TransferArgs{
		Token:  testToken,
		To:     testOther,
		Amount: big.NewInt(100),
		From:   &testAccount,
	})
	require.NoError(t, err)

	assert.Equal(t, "transferFrom", call.Method)
	args := unpackInputs(t, "transferFrom", call.Data)
	assert.Equal(t, testAccount, args[0])
	assert.Equal(t, testOther, args[1])
}

func TestTransferCallFromWithMemo(t *testing.T) {
	call, err := TransferCall(TransferArgs{
		Token:  testToken,
		To:     testOther,
		Amount: big.NewInt(100),
		From:   &testAccount,
		Memo:   Memo("x"),
	})
	require.NoError(t, err)

	assert.Equal(t, "transferFromWithMemo", call.Method)
	args := unpackInputs(t, "transferFromWithMemo", call.Data)
	assert.Equal(t, testAccount, args[0])
	assert.Equal(t, testOther, args[1])
	assert.Equal(t, big.NewInt(100), args[2])
}

func TestTransferCallDefaultTokenMatchesUSD(t *testing.T) {
	implicit, err := TransferCall(TransferArgs{To: testOther, Amount: big.NewInt(5)})
	require.NoError(t, err)
	explicit, err := TransferCall(TransferArgs{Token: TokenUSD, To: testOther, Amount: big.NewInt(5)})
	require.NoError(t, err)

	assert.Equal(t, explicit.To, implicit.To)
	assert.Equal(t, explicit.Data, implicit.Data)
}

func TestMemoTruncates(t *testing.T) {
	m := Memo("this memo is much longer than thirty-two bytes and gets cut")
	assert.Equal(t, byte('t'), m[0])
	assert.Len(t, m, 32)
}

func TestApproveCall(t *testing.T) {
	call, err := ApproveCall(ApproveArgs{Token: testToken, Spender: testOther, Amount: big.NewInt(77)})
	require.NoError(t, err)

	assert.Equal(t, "approve", call.Method)
	args := unpackInputs(t, "approve", call.Data)
	assert.Equal(t, testOther, args[0])
	assert.Equal(t, big.NewInt(77), args[1])
}

func TestMintCall(t *testing.T) {
	call, err := MintCall(MintArgs{Token: testToken, To: testOther, Amount: big.NewInt(9)})
	require.NoError(t, err)

	assert.Equal(t, "mint", call.Method)
	args := unpackInputs(t, "mint", call.Data)
	assert.Equal(t, testOther, args[0])
}

func TestBurnCall(t *testing.T) {
	call, err := BurnCall(BurnArgs{Token: testToken, Amount: big.NewInt(9)})
	require.NoError(t, err)

	assert.Equal(t, "burn", call.Method)
	args := unpackInputs(t, "burn", call.Data)
	assert.Equal(t, big.NewInt(9), args[0])
}

func TestBurnBlockedCall(t *testing.T) {
	call, err := BurnBlockedCall(BurnBlockedArgs{Token: testToken, From: testAccount, Amount: big.NewInt(9)})
	require.NoError(t, err)

	assert.Equal(t, "burnBlocked", call.Method)
	args := unpackInputs(t, "burnBlocked", call.Data)
	assert.Equal(t, testAccount, args[0])
}

func TestPauseAndUnpauseCalls(t *testing.T) {
	pause, err := PauseCall(PauseArgs{Token: testToken})
	require.NoError(t, err)
	unpause, err := UnpauseCall(PauseArgs{Token: testToken})
	require.NoError(t, err)

	assert.Equal(t, TokenABI.Methods["pause"].ID, pause.Data)
	assert.Equal(t, TokenABI.Methods["unpause"].ID, unpause.Data)
	assert.NotEqual(t, pause.Data, unpause.Data)
}

func TestGrantRolesCall(t *testing.T) {
	roles := [][32]byte{RoleMinter, RolePauser}
	call, err := GrantRolesCall(GrantRolesArgs{Token: testToken, Account: testAccount, Roles: roles})
	require.NoError(t, err)

	assert.Equal(t, "grantRoles", call.Method)
	args := unpackInputs(t, "grantRoles", call.Data)
	assert.Equal(t, testAccount, args[0])
	assert.Equal(t, roles, args[1])
}

func TestRenounceRolesCall(t *testing.T) {
	call, err := RenounceRolesCall(RenounceRolesArgs{Token: testToken, Roles: [][32]byte{RoleBurner}})
	require.NoError(t, err)

	assert.Equal(t, "renounceRoles", call.Method)
	args := unpackInputs(t, "renounceRoles", call.Data)
	assert.Equal(t, [][32]byte{RoleBurner}, args[0])
}

func TestSetRoleAdminCall(t *testing.T) {
	call, err := SetRoleAdminCall(SetRoleAdminArgs{Token: testToken, Role: RoleMinter, AdminRole: RolePolicyAdmin})
	require.NoError(t, err)

	args := unpackInputs(t, "setRoleAdmin", call.Data)
	assert.Equal(t, RoleMinter, args[0])
	assert.Equal(t, RolePolicyAdmin, args[1])
}

func TestSetSupplyCapCall(t *testing.T) {
	call, err := SetSupplyCapCall(SetSupplyCapArgs{Token: testToken, Cap: big.NewInt(1_000_000)})
	require.NoError(t, err)

	args := unpackInputs(t, "setSupplyCap", call.Data)
	assert.Equal(t, big.NewInt(1_000_000), args[0])
}

func TestChangeTransferPolicyCall(t *testing.T) {
	call, err := ChangeTransferPolicyCall(ChangeTransferPolicyArgs{Token: testToken, PolicyID: 12})
	require.NoError(t, err)

	args := unpackInputs(t, "changeTransferPolicy", call.Data)
	assert.Equal(t, uint64(12), args[0])
}

func TestPermitCall(t *testing.T) {
	var r, s [32]byte
	r[0], s[0] = 0x01, 0x02
	call, err := PermitCall(PermitArgs{
		Token:    testToken,
		Owner:    testAccount,
		Spender:  testOther,
		Value:    big.NewInt(10),
		Deadline: big.NewInt(9999999999),
		V:        27,
		R:        r,
		S:        s,
	})
	require.NoError(t, err)

	args := unpackInputs(t, "permit", call.Data)
	assert.Equal(t, testAccount, args[0])
	assert.Equal(t, testOther, args[1])
	assert.Equal(t, uint8(27), args[4])
	assert.Equal(t, r, args[5])
	assert.Equal(t, s, args[6])
}

func TestCreateCallTargetsFactory(t *testing.T) {
	call, err := CreateCall(CreateArgs{
		Name: "Euro Token", Symbol: "EURT", Decimals: 6, Currency: "EUR", Admin: testAccount,
	})
	require.NoError(t, err)

	assert.Equal(t, FactoryAddress, call.To)
	assert.Equal(t, "createToken", call.Method)

	m := FactoryABI.Methods["createToken"]
	args, err := m.Inputs.Unpack(call.Data[4:])
	require.NoError(t, err)
	assert.Equal(t, "Euro Token", args[0])
	assert.Equal(t, "EURT", args[1])
	assert.Equal(t, uint8(6), args[2])
	assert.Equal(t, "EUR", args[3])
	assert.Equal(t, testAccount, args[4])
}

func TestBalanceCall(t *testing.T) {
	call, err := BalanceCall(testToken, testAccount)
	require.NoError(t, err)

	args := unpackInputs(t, "balanceOf", call.Data)
	assert.Equal(t, testAccount, args[0])
}

func TestAllowanceCall(t *testing.T) {
	call, err := AllowanceCall(testToken, testAccount, testOther)
	require.NoError(t, err)

	args := unpackInputs(t, "allowance", call.Data)
	assert.Equal(t, testAccount, args[0])
	assert.Equal(t, testOther, args[1])
}

func TestNonceCall(t *testing.T) {
	call, err := NonceCall(testToken, testAccount)
	require.NoError(t, err)

	args := unpackInputs(t, "nonces", call.Data)
	assert.Equal(t, testAccount, args[0])
}
