package tip20

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// PauseArgs identify the token to pause or unpause. The caller needs the
// pauser role.
type PauseArgs struct {
	Token Token
}

// PauseCall encodes a pause invocation.
func PauseCall(args PauseArgs) (*Call, error) {
	return newCall(&TokenABI, args.Token.Address(), "pause")
}

// UnpauseCall encodes an unpause invocation.
func UnpauseCall(args PauseArgs) (*Call, error) {
	return newCall(&TokenABI, args.Token.Address(), "unpause")
}

// Pause broadcasts a pause and returns the transaction hash.
func Pause(ctx context.Context, c Client, args PauseArgs) (common.Hash, error) {
	call, err := PauseCall(args)
	if err != nil {
		return common.Hash{}, err
	}
	return c.SendTransaction(ctx, call.To, call.Data)
}

// Unpause broadcasts an unpause and returns the transaction hash.
func Unpause(ctx context.Context, c Client, args PauseArgs) (common.Hash, error) {
	call, err := UnpauseCall(args)
	if err != nil {
		return common.Hash{}, err
	}
	return c.SendTransaction(ctx, call.To, call.Data)
}

// PauseResult is a confirmed pause-state change: receipt plus the decoded
// PauseStateUpdated event.
type PauseResult struct {
	Receipt *types.Receipt
	Event   *PauseStateEvent
}

// PauseSync broadcasts a pause, waits for inclusion, and decodes the
// emitted PauseStateUpdated event.
func PauseSync(ctx context.Context, c Client, args PauseArgs) (*PauseResult, error) {
	call, err := PauseCall(args)
	if err != nil {
		return nil, err
	}
	return pauseSync(ctx, c, args.Token, call)
}

// UnpauseSync broadcasts an unpause, waits for inclusion, and decodes the
// emitted PauseStateUpdated event.
func UnpauseSync(ctx context.Context, c Client, args PauseArgs) (*PauseResult, error) {
	call, err := UnpauseCall(args)
	if err != nil {
		return nil, err
	}
	return pauseSync(ctx, c, args.Token, call)
}

func pauseSync(ctx context.Context, c Client, token Token, call *Call) (*PauseResult, error) {
	receipt, err := c.SendTransactionSync(ctx, call.To, call.Data)
	if err != nil {
		return nil, err
	}
	ev, err := ExtractPauseStateEvent(token, receipt.Logs)
	if err != nil {
		return nil, err
	}
	return &PauseResult{Receipt: receipt, Event: ev}, nil
}

// PauseStateEvent is a decoded PauseStateUpdated log.
type PauseStateEvent struct {
	Paused bool
	Raw    types.Log
}

// ExtractPauseStateEvent returns the first PauseStateUpdated emitted by the
// token, or ErrEventNotFound.
func ExtractPauseStateEvent(token Token, logs []*types.Log) (*PauseStateEvent, error) {
	evs, err := ExtractPauseStateEvents(token, logs)
	if err != nil {
		return nil, err
	}
	if len(evs) == 0 {
		return nil, ErrEventNotFound
	}
	return &evs[0], nil
}

// ExtractPauseStateEvents returns every PauseStateUpdated emitted by the
// token, in input order.
func ExtractPauseStateEvents(token Token, logs []*types.Log) ([]PauseStateEvent, error) {
	var out []PauseStateEvent
	for _, lg := range matchingLogs(&TokenABI, token.Address(), "PauseStateUpdated", logs) {
		var ev PauseStateEvent
		if err := unpackLog(&TokenABI, &ev, "PauseStateUpdated", *lg); err != nil {
			return nil, err
		}
		ev.Raw = *lg
		out = append(out, ev)
	}
	return out, nil
}
