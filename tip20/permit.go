package tip20

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/sha3"
)

// PermitArgs are the parameters of permit: an off-chain-signed approval
// submitted on-chain. Signature verification happens in the contract.
type PermitArgs struct {
	Token    Token
	Owner    common.Address
	Spender  common.Address
	Value    *big.Int
	Deadline *big.Int
	V        uint8
	R        [32]byte
	S        [32]byte
}

// PermitCall encodes a permit invocation.
func PermitCall(args PermitArgs) (*Call, error) {
	return newCall(&TokenABI, args.Token.Address(), "permit",
		args.Owner, args.Spender, args.Value, args.Deadline, args.V, args.R, args.S)
}

// Permit broadcasts a permit and returns the transaction hash.
func Permit(ctx context.Context, c Client, args PermitArgs) (common.Hash, error) {
	call, err := PermitCall(args)
	if err != nil {
		return common.Hash{}, err
	}
	return c.SendTransaction(ctx, call.To, call.Data)
}

// PermitSync broadcasts a permit, waits for inclusion, and decodes the
// emitted Approval event.
func PermitSync(ctx context.Context, c Client, args PermitArgs) (*ApproveResult, error) {
	call, err := PermitCall(args)
	if err != nil {
		return nil, err
	}
	receipt, err := c.SendTransactionSync(ctx, call.To, call.Data)
	if err != nil {
		return nil, err
	}
	ev, err := ExtractApprovalEvent(args.Token, receipt.Logs)
	if err != nil {
		return nil, err
	}
	return &ApproveResult{Receipt: receipt, Event: ev}, nil
}

// EIP-712 type hashes for the permit message.
var (
	eip712DomainTypeHash = keccak([]byte("EIP712Domain(string name,string version,uint256 chainId,address verifyingContract)"))
	permitTypeHash       = keccak([]byte("Permit(address owner,address spender,uint256 value,uint256 nonce,uint256 deadline)"))
	tip20NameHash        = keccak([]byte("TIP20"))
	tip20VersionHash     = keccak([]byte("1"))
)

// PermitDigest computes the EIP-712 digest an owner signs to authorize a
// permit. nonce is the owner's current permit nonce (see GetNonce).
func PermitDigest(chainID *big.Int, token Token, owner, spender common.Address, value, nonce, deadline *big.Int) [32]byte {
	domain := keccak(
		eip712DomainTypeHash[:],
		tip20NameHash[:],
		tip20VersionHash[:],
		pad32(chainID),
		common.LeftPadBytes(token.Address().Bytes(), 32),
	)
	message := keccak(
		permitTypeHash[:],
		common.LeftPadBytes(owner.Bytes(), 32),
		common.LeftPadBytes(spender.Bytes(), 32),
		pad32(value),
		pad32(nonce),
		pad32(deadline),
	)
	return keccak([]byte{0x19, 0x01}, domain[:], message[:])
}

func keccak(chunks ...[]byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	for _, c := range chunks {
		h.Write(c)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func pad32(n *big.Int) []byte {
	if n == nil {
		n = new(big.Int)
	}
	return common.LeftPadBytes(n.Bytes(), 32)
}
