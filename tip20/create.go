package tip20

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// CreateArgs are the parameters of createToken on the factory predeploy.
// Admin receives the default admin role on the new token.
type CreateArgs struct {
	Name     string
	Symbol   string
	Decimals uint8
	Currency string
	Admin    common.Address
}

// CreateCall encodes a createToken invocation against the factory.
func CreateCall(args CreateArgs) (*Call, error) {
	return newCall(&FactoryABI, FactoryAddress, "createToken",
		args.Name, args.Symbol, args.Decimals, args.Currency, args.Admin)
}

// Create broadcasts a createToken and returns the transaction hash.
func Create(ctx context.Context, c Client, args CreateArgs) (common.Hash, error) {
	call, err := CreateCall(args)
	if err != nil {
		return common.Hash{}, err
	}
	return c.SendTransaction(ctx, call.To, call.Data)
}

// CreateResult is a confirmed token creation: receipt plus the decoded
// TokenCreated event, which carries the new token's id and address.
type CreateResult struct {
	Receipt *types.Receipt
	Event   *TokenCreatedEvent
}

// CreateSync broadcasts a createToken, waits for inclusion, and decodes the
// emitted TokenCreated event.
func CreateSync(ctx context.Context, c Client, args CreateArgs) (*CreateResult, error) {
	call, err := CreateCall(args)
	if err != nil {
		return nil, err
	}
	receipt, err := c.SendTransactionSync(ctx, call.To, call.Data)
	if err != nil {
		return nil, err
	}
	ev, err := ExtractTokenCreatedEvent(receipt.Logs)
	if err != nil {
		return nil, err
	}
	return &CreateResult{Receipt: receipt, Event: ev}, nil
}

// TokenCreatedEvent is a decoded TokenCreated log from the factory.
type TokenCreatedEvent struct {
	TokenId  uint64
	Token    common.Address
	Admin    common.Address
	Name     string
	Symbol   string
	Decimals uint8
	Currency string
	Raw      types.Log
}

// Ref returns a Token reference to the created token.
func (ev *TokenCreatedEvent) Ref() Token {
	return TokenByAddress(ev.Token)
}

// ExtractTokenCreatedEvent returns the first TokenCreated emitted by the
// factory, or ErrEventNotFound.
func ExtractTokenCreatedEvent(logs []*types.Log) (*TokenCreatedEvent, error) {
	evs, err := ExtractTokenCreatedEvents(logs)
	if err != nil {
		return nil, err
	}
	if len(evs) == 0 {
		return nil, ErrEventNotFound
	}
	return &evs[0], nil
}

// ExtractTokenCreatedEvents returns every TokenCreated emitted by the
// factory, in input order.
func ExtractTokenCreatedEvents(logs []*types.Log) ([]TokenCreatedEvent, error) {
	var out []TokenCreatedEvent
	for _, lg := range matchingLogs(&FactoryABI, FactoryAddress, "TokenCreated", logs) {
		var ev TokenCreatedEvent
		if err := unpackLog(&FactoryABI, &ev, "TokenCreated", *lg); err != nil {
			return nil, err
		}
		ev.Raw = *lg
		out = append(out, ev)
	}
	return out, nil
}
