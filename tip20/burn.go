package tip20

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// BurnArgs are the parameters of burn, which destroys tokens held by the
// caller.
type BurnArgs struct {
	Token  Token
	Amount *big.Int
}

// BurnCall encodes a burn invocation.
func BurnCall(args BurnArgs) (*Call, error) {
	return newCall(&TokenABI, args.Token.Address(), "burn", args.Amount)
}

// Burn broadcasts a burn and returns the transaction hash.
func Burn(ctx context.Context, c Client, args BurnArgs) (common.Hash, error) {
	call, err := BurnCall(args)
	if err != nil {
		return common.Hash{}, err
	}
	return c.SendTransaction(ctx, call.To, call.Data)
}

// BurnSync broadcasts a burn, waits for inclusion, and decodes the emitted
// Transfer event (To is the zero address).
func BurnSync(ctx context.Context, c Client, args BurnArgs) (*TransferResult, error) {
	call, err := BurnCall(args)
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

// BurnBlockedArgs are the parameters of burnBlocked, which destroys tokens
// held by a blocked account. The caller needs the blocklister role.
type BurnBlockedArgs struct {
	Token  Token
	From   common.Address
	Amount *big.Int
}

// BurnBlockedCall encodes a burnBlocked invocation.
func BurnBlockedCall(args BurnBlockedArgs) (*Call, error) {
	return newCall(&TokenABI, args.Token.Address(), "burnBlocked", args.From, args.Amount)
}

// BurnBlocked broadcasts a burnBlocked and returns the transaction hash.
func BurnBlocked(ctx context.Context, c Client, args BurnBlockedArgs) (common.Hash, error) {
	call, err := BurnBlockedCall(args)
	if err != nil {
		return common.Hash{}, err
	}
	return c.SendTransaction(ctx, call.To, call.Data)
}

// BurnBlockedSync broadcasts a burnBlocked, waits for inclusion, and
// decodes the emitted Transfer event.
func BurnBlockedSync(ctx context.Context, c Client, args BurnBlockedArgs) (*TransferResult, error) {
	call, err := BurnBlockedCall(args)
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
