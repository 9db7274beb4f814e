package tip20

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ChangeTransferPolicyArgs are the parameters of changeTransferPolicy. The
// policy itself is registered chain-side; this only points the token at a
// policy id.
type ChangeTransferPolicyArgs struct {
	Token    Token
	PolicyID uint64
}

// ChangeTransferPolicyCall encodes a changeTransferPolicy invocation.
func ChangeTransferPolicyCall(args ChangeTransferPolicyArgs) (*Call, error) {
	return newCall(&TokenABI, args.Token.Address(), "changeTransferPolicy", args.PolicyID)
}

// ChangeTransferPolicy broadcasts a changeTransferPolicy and returns the
// transaction hash.
func ChangeTransferPolicy(ctx context.Context, c Client, args ChangeTransferPolicyArgs) (common.Hash, error) {
	call, err := ChangeTransferPolicyCall(args)
	if err != nil {
		return common.Hash{}, err
	}
	return c.SendTransaction(ctx, call.To, call.Data)
}

// ChangeTransferPolicyResult is a confirmed policy change.
type ChangeTransferPolicyResult struct {
	Receipt *types.Receipt
	Event   *TransferPolicyEvent
}

// ChangeTransferPolicySync broadcasts a changeTransferPolicy, waits for
// inclusion, and decodes the emitted TransferPolicyUpdated event.
func ChangeTransferPolicySync(ctx context.Context, c Client, args ChangeTransferPolicyArgs) (*ChangeTransferPolicyResult, error) {
	call, err := ChangeTransferPolicyCall(args)
	if err != nil {
		return nil, err
	}
	receipt, err := c.SendTransactionSync(ctx, call.To, call.Data)
	if err != nil {
		return nil, err
	}
	ev, err := ExtractTransferPolicyEvent(args.Token, receipt.Logs)
	if err != nil {
		return nil, err
	}
	return &ChangeTransferPolicyResult{Receipt: receipt, Event: ev}, nil
}

// TransferPolicyEvent is a decoded TransferPolicyUpdated log.
type TransferPolicyEvent struct {
	PolicyId uint64
	Raw      types.Log
}

// ExtractTransferPolicyEvent returns the first TransferPolicyUpdated
// emitted by the token, or ErrEventNotFound.
func ExtractTransferPolicyEvent(token Token, logs []*types.Log) (*TransferPolicyEvent, error) {
	for _, lg := range matchingLogs(&TokenABI, token.Address(), "TransferPolicyUpdated", logs) {
		var ev TransferPolicyEvent
		if err := unpackLog(&TokenABI, &ev, "TransferPolicyUpdated", *lg); err != nil {
			return nil, err
		}
		ev.Raw = *lg
		return &ev, nil
	}
	return nil, ErrEventNotFound
}
