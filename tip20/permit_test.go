package tip20

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func digestArgs() (chainID *big.Int, value, nonce, deadline *big.Int) {
	return big.NewInt(42), big.NewInt(1000), big.NewInt(0), big.NewInt(1900000000)
}

func TestPermitDigestDeterministic(t *testing.T) {
	chainID, value, nonce, deadline := digestArgs()

	d1 := PermitDigest(chainID, testToken, testAccount, testOther, value, nonce, deadline)
	d2 := PermitDigest(chainID, testToken, testAccount, testOther, value, nonce, deadline)
	assert.Equal(t, d1, d2)
	assert.NotEqual(t, [32]byte{}, d1)
}

func TestPermitDigestFieldSensitivity(t *testing.T) {
	chainID, value, nonce, deadline := digestArgs()
	base := PermitDigest(chainID, testToken, testAccount, testOther, value, nonce, deadline)

	variants := map[string][32]byte{
		"chain id": PermitDigest(big.NewInt(43), testToken, testAccount, testOther, value, nonce, deadline),
		"token":    PermitDigest(chainID, TokenByID(4), testAccount, testOther, value, nonce, deadline),
		"owner":    PermitDigest(chainID, testToken, testOther, testOther, value, nonce, deadline),
		"spender":  PermitDigest(chainID, testToken, testAccount, testAccount, value, nonce, deadline),
		"value":    PermitDigest(chainID, testToken, testAccount, testOther, big.NewInt(1001), nonce, deadline),
		"nonce":    PermitDigest(chainID, testToken, testAccount, testOther, value, big.NewInt(1), deadline),
		"deadline": PermitDigest(chainID, testToken, testAccount, testOther, value, nonce, big.NewInt(1900000001)),
	}
	for field, d := range variants {
		assert.NotEqual(t, base, d, "digest should change with %s", field)
	}
}

func TestPermitDigestNilBigIntsTreatedAsZero(t *testing.T) {
	chainID, value, _, deadline := digestArgs()

	withNil := PermitDigest(chainID, testToken, testAccount, testOther, value, nil, deadline)
	withZero := PermitDigest(chainID, testToken, testAccount, testOther, value, big.NewInt(0), deadline)
	assert.Equal(t, withZero, withNil)
}

func TestPermitDigestSignatureRecovers(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	owner := crypto.PubkeyToAddress(key.PublicKey)

	chainID, value, nonce, deadline := digestArgs()
	digest := PermitDigest(chainID, testToken, owner, testOther, value, nonce, deadline)

	sig, err := crypto.Sign(digest[:], key)
	require.NoError(t, err)

	pub, err := crypto.SigToPub(digest[:], sig)
	require.NoError(t, err)
	assert.Equal(t, owner, crypto.PubkeyToAddress(*pub))
}
