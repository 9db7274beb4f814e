package wallet

import (
	"crypto/ecdsa"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

// Signer signs transactions and permit digests for one wallet. Keys are
// fetched from the keystore per operation and never cached.
type Signer struct {
	wallet *Wallet
	ks     SecretStore
}

// NewSigner creates a signer for the given wallet.
func NewSigner(w *Wallet, ks SecretStore) *Signer {
	return &Signer{wallet: w, ks: ks}
}

// Address returns the wallet's address.
func (s *Signer) Address() common.Address {
	return s.wallet.Addr()
}

// SignTx signs a transaction and returns the raw signed bytes.
func (s *Signer) SignTx(tx *types.Transaction, chainID *big.Int) ([]byte, error) {
	privKey, err := s.key()
	if err != nil {
		return nil, err
	}

	signer := types.NewLondonSigner(chainID)
	signed, err := types.SignTx(tx, signer, privKey)
	if err != nil {
		return nil, fmt.Errorf("signing transaction: %w", err)
	}

	raw, err := signed.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("marshaling signed tx: %w", err)
	}
	return raw, nil
}

// SignDigest signs a 32-byte typed-data digest (e.g. a permit digest) and
// returns the signature split into the contract-side (v, r, s) form.
func (s *Signer) SignDigest(digest [32]byte) (v uint8, r, sv [32]byte, err error) {
	privKey, err := s.key()
	if err != nil {
		return 0, r, sv, err
	}
	sig, err := crypto.Sign(digest[:], privKey)
	if err != nil {
		return 0, r, sv, fmt.Errorf("signing digest: %w", err)
	}
	copy(r[:], sig[:32])
	copy(sv[:], sig[32:64])
	return sig[64] + 27, r, sv, nil
}

func (s *Signer) key() (*ecdsa.PrivateKey, error) {
	hexKey, err := s.ks.Retrieve(s.wallet.KeyRef)
	if err != nil {
		return nil, fmt.Errorf("retrieving key: %w", err)
	}
	privKey, err := crypto.HexToECDSA(stripHexPrefix(hexKey))
	if err != nil {
		return nil, fmt.Errorf("parsing private key: %w", err)
	}
	return privKey, nil
}
