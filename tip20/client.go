package tip20

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Client is the external blockchain client this package delegates all I/O
// to. Transaction signing, nonce and gas management, RPC transport, and log
// subscription all live behind it; the chain package provides the standard
// implementation.
type Client interface {
	// ReadContract performs a read-only call and returns the raw return data.
	ReadContract(ctx context.Context, to common.Address, data []byte) ([]byte, error)

	// SendTransaction broadcasts a state-changing call and returns the
	// transaction hash without waiting for inclusion.
	SendTransaction(ctx context.Context, to common.Address, data []byte) (common.Hash, error)

	// SendTransactionSync broadcasts a state-changing call and blocks until
	// the transaction is included, returning the full receipt.
	SendTransactionSync(ctx context.Context, to common.Address, data []byte) (*types.Receipt, error)

	// WatchContractEvent registers onLog for every log matching q and
	// returns an unsubscribe function. Delivery order is whatever the
	// underlying subscription produces; there is no buffering or replay.
	WatchContractEvent(ctx context.Context, q WatchQuery, onLog func(types.Log)) (func(), error)
}

// WatchQuery selects the logs a watcher receives: one contract address and
// an optional set of accepted topic0 values (event signatures).
type WatchQuery struct {
	Address common.Address
	Topics  []common.Hash
}
