package wallet

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSigner(t *testing.T) (*Signer, *Wallet) {
	t.Helper()
	ks := NewInMemoryKeystore()
	m := NewManager(&MemStore{}, ks)
	w, err := m.Create("alice")
	require.NoError(t, err)
	return NewSigner(w, ks), w
}

func TestSignerAddressMatchesWallet(t *testing.T) {
	signer, w := newTestSigner(t)
	assert.Equal(t, common.HexToAddress(w.Address), signer.Address())
}

func TestSignTxRecoversSender(t *testing.T) {
	signer, _ := newTestSigner(t)
	chainID := big.NewInt(1337)

	to := common.HexToAddress("0x20C0000000000000000000000000000000000001")
	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     1,
		GasTipCap: big.NewInt(1),
		GasFeeCap: big.NewInt(2),
		Gas:       21000,
		To:        &to,
		Value:     big.NewInt(0),
	})

	raw, err := signer.SignTx(tx, chainID)
	require.NoError(t, err)

	var signed types.Transaction
	require.NoError(t, signed.UnmarshalBinary(raw))

	sender, err := types.Sender(types.NewLondonSigner(chainID), &signed)
	require.NoError(t, err)
	assert.Equal(t, signer.Address(), sender)
}

func TestSignDigestRecoversSigner(t *testing.T) {
	signer, _ := newTestSigner(t)

	var digest [32]byte
	copy(digest[:], crypto.Keccak256([]byte("permit payload")))

	v, r, s, err := signer.SignDigest(digest)
	require.NoError(t, err)
	assert.Contains(t, []uint8{27, 28}, v)

	sig := make([]byte, 65)
	copy(sig[:32], r[:])
	copy(sig[32:64], s[:])
	sig[64] = v - 27

	pub, err := crypto.SigToPub(digest[:], sig)
	require.NoError(t, err)
	assert.Equal(t, signer.Address(), crypto.PubkeyToAddress(*pub))
}

func TestSignerMissingKey(t *testing.T) {
	ks := NewInMemoryKeystore()
	w := &Wallet{Name: "ghost", Address: "0x0000000000000000000000000000000000000001", KeyRef: "tip20cli.ghost"}
	signer := NewSigner(w, ks)

	_, err := signer.SignTx(types.NewTx(&types.DynamicFeeTx{}), big.NewInt(1))
	assert.Error(t, err)

	_, _, _, err = signer.SignDigest([32]byte{})
	assert.Error(t, err)
}
