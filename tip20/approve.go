package tip20

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ApproveArgs are the parameters of approve.
type ApproveArgs struct {
	Token   Token
	Spender common.Address
	Amount  *big.Int
}

// ApproveCall encodes an approve invocation.
func ApproveCall(args ApproveArgs) (*Call, error) {
	return newCall(&TokenABI, args.Token.Address(), "approve", args.Spender, args.Amount)
}

// Approve broadcasts an approval and returns the transaction hash.
func Approve(ctx context.Context, c Client, args ApproveArgs) (common.Hash, error) {
	call, err := ApproveCall(args)
	if err != nil {
		return common.Hash{}, err
	}
	return c.SendTransaction(ctx, call.To, call.Data)
}

// ApproveResult is a confirmed approval: receipt plus the decoded Approval
// event.
type ApproveResult struct {
	Receipt *types.Receipt
	Event   *ApprovalEvent
}

// ApproveSync broadcasts an approval, waits for inclusion, and decodes the
// emitted Approval event.
func ApproveSync(ctx context.Context, c Client, args ApproveArgs) (*ApproveResult, error) {
	call, err := ApproveCall(args)
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

// ApprovalEvent is a decoded Approval log.
type ApprovalEvent struct {
	Owner   common.Address
	Spender common.Address
	Amount  *big.Int
	Raw     types.Log
}

// ExtractApprovalEvent returns the first Approval emitted by the token, or
// ErrEventNotFound.
func ExtractApprovalEvent(token Token, logs []*types.Log) (*ApprovalEvent, error) {
	evs, err := ExtractApprovalEvents(token, logs)
	if err != nil {
		return nil, err
	}
	if len(evs) == 0 {
		return nil, ErrEventNotFound
	}
	return &evs[0], nil
}

// ExtractApprovalEvents returns every Approval emitted by the token, in
// input order.
func ExtractApprovalEvents(token Token, logs []*types.Log) ([]ApprovalEvent, error) {
	var out []ApprovalEvent
	for _, lg := range matchingLogs(&TokenABI, token.Address(), "Approval", logs) {
		var ev ApprovalEvent
		if err := unpackLog(&TokenABI, &ev, "Approval", *lg); err != nil {
			return nil, err
		}
		ev.Raw = *lg
		out = append(out, ev)
	}
	return out, nil
}
