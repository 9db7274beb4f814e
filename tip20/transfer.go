package tip20

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// TransferArgs are the parameters of the transfer family. From selects the
// transferFrom variants (spending an allowance); Memo selects the memo
// variants. An unset Token means TokenUSD.
type TransferArgs struct {
	Token  Token
	To     common.Address
	Amount *big.Int
	From   *common.Address
	Memo   *[32]byte
}

// Memo builds a bytes32 memo from s, truncating to 32 bytes.
func Memo(s string) *[32]byte {
	var m [32]byte
	copy(m[:], s)
	return &m
}

// TransferCall selects the ABI variant from the presence of From and Memo
// and encodes the calldata. The selection is total over the four cases:
//
//	From set, Memo set   → transferFromWithMemo
//	From unset, Memo set → transferWithMemo
//	From set, Memo unset → transferFrom
//	neither              → transfer
func TransferCall(args TransferArgs) (*Call, error) {
	to := args.Token.Address()
	switch {
	case args.From != nil && args.Memo != nil:
		return newCall(&TokenABI, to, "transferFromWithMemo", *args.From, args.To, args.Amount, *args.Memo)
	case args.Memo != nil:
		return newCall(&TokenABI, to, "transferWithMemo", args.To, args.Amount, *args.Memo)
	case args.From != nil:
		return newCall(&TokenABI, to, "transferFrom", *args.From, args.To, args.Amount)
	default:
		return newCall(&TokenABI, to, "transfer", args.To, args.Amount)
	}
}

// Transfer broadcasts a transfer and returns the transaction hash.
func Transfer(ctx context.Context, c Client, args TransferArgs) (common.Hash, error) {
	call, err := TransferCall(args)
	if err != nil {
		return common.Hash{}, err
	}
	return c.SendTransaction(ctx, call.To, call.Data)
}

// TransferResult is a confirmed transfer: the receipt plus the decoded
// Transfer event.
type TransferResult struct {
	Receipt *types.Receipt
	Event   *TransferEvent
}

// TransferSync broadcasts a transfer, waits for inclusion, and decodes the
// emitted Transfer event.
func TransferSync(ctx context.Context, c Client, args TransferArgs) (*TransferResult, error) {
	call, err := TransferCall(args)
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

// TransferEvent is a decoded Transfer log. Mints carry the zero address as
// From, burns the zero address as To.
type TransferEvent struct {
	From   common.Address
	To     common.Address
	Amount *big.Int
	Raw    types.Log
}

// ExtractTransferEvent returns the first Transfer emitted by the token, or
// ErrEventNotFound.
func ExtractTransferEvent(token Token, logs []*types.Log) (*TransferEvent, error) {
	evs, err := ExtractTransferEvents(token, logs)
	if err != nil {
		return nil, err
	}
	if len(evs) == 0 {
		return nil, ErrEventNotFound
	}
	return &evs[0], nil
}

// ExtractTransferEvents returns every Transfer emitted by the token, in
// input order.
func ExtractTransferEvents(token Token, logs []*types.Log) ([]TransferEvent, error) {
	var out []TransferEvent
	for _, lg := range matchingLogs(&TokenABI, token.Address(), "Transfer", logs) {
		var ev TransferEvent
		if err := unpackLog(&TokenABI, &ev, "Transfer", *lg); err != nil {
			return nil, err
		}
		ev.Raw = *lg
		out = append(out, ev)
	}
	return out, nil
}
