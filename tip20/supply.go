package tip20

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// SetSupplyCapArgs are the parameters of setSupplyCap.
type SetSupplyCapArgs struct {
	Token Token
	Cap   *big.Int
}

// SetSupplyCapCall encodes a setSupplyCap invocation.
func SetSupplyCapCall(args SetSupplyCapArgs) (*Call, error) {
	return newCall(&TokenABI, args.Token.Address(), "setSupplyCap", args.Cap)
}

// SetSupplyCap broadcasts a setSupplyCap and returns the transaction hash.
func SetSupplyCap(ctx context.Context, c Client, args SetSupplyCapArgs) (common.Hash, error) {
	call, err := SetSupplyCapCall(args)
	if err != nil {
		return common.Hash{}, err
	}
	return c.SendTransaction(ctx, call.To, call.Data)
}

// SetSupplyCapResult is a confirmed supply-cap change.
type SetSupplyCapResult struct {
	Receipt *types.Receipt
	Event   *SupplyCapEvent
}

// SetSupplyCapSync broadcasts a setSupplyCap, waits for inclusion, and
// decodes the emitted SupplyCapUpdated event.
func SetSupplyCapSync(ctx context.Context, c Client, args SetSupplyCapArgs) (*SetSupplyCapResult, error) {
	call, err := SetSupplyCapCall(args)
	if err != nil {
		return nil, err
	}
	receipt, err := c.SendTransactionSync(ctx, call.To, call.Data)
	if err != nil {
		return nil, err
	}
	ev, err := ExtractSupplyCapEvent(args.Token, receipt.Logs)
	if err != nil {
		return nil, err
	}
	return &SetSupplyCapResult{Receipt: receipt, Event: ev}, nil
}

// SupplyCapEvent is a decoded SupplyCapUpdated log.
type SupplyCapEvent struct {
	Cap *big.Int
	Raw types.Log
}

// ExtractSupplyCapEvent returns the first SupplyCapUpdated emitted by the
// token, or ErrEventNotFound.
func ExtractSupplyCapEvent(token Token, logs []*types.Log) (*SupplyCapEvent, error) {
	for _, lg := range matchingLogs(&TokenABI, token.Address(), "SupplyCapUpdated", logs) {
		var ev SupplyCapEvent
		if err := unpackLog(&TokenABI, &ev, "SupplyCapUpdated", *lg); err != nil {
			return nil, err
		}
		ev.Raw = *lg
		return &ev, nil
	}
	return nil, ErrEventNotFound
}
