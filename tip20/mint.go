package tip20

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// MintArgs are the parameters of mint. The caller needs the minter role on
// the token.
type MintArgs struct {
	Token  Token
	To     common.Address
	Amount *big.Int
}

// MintCall encodes a mint invocation.
func MintCall(args MintArgs) (*Call, error) {
	return newCall(&TokenABI, args.Token.Address(), "mint", args.To, args.Amount)
}

// Mint broadcasts a mint and returns the transaction hash.
func Mint(ctx context.Context, c Client, args MintArgs) (common.Hash, error) {
	call, err := MintCall(args)
	if err != nil {
		return common.Hash{}, err
	}
	return c.SendTransaction(ctx, call.To, call.Data)
}

// MintSync broadcasts a mint, waits for inclusion, and decodes the emitted
// Transfer event (From is the zero address).
func MintSync(ctx context.Context, c Client, args MintArgs) (*TransferResult, error) {
	call, err := MintCall(args)
	if err != nil {
		return nil, err
	}
	receipt, err := c.SendTransactionSync(ctx, call.To, call.Data)
	if err != nil {
		return nil, err
	}
	ev, err := ExtractTransferEvent(args.Token, receipt.Logs)
	if err != nil {
		return nil, err
	}
	return &TransferResult{Receipt: receipt, Event: ev}, nil
}
