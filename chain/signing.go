package chain

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/t20labs/tip20cli/tip20"
)

const fallbackGasLimit = 200_000

// TxSigner signs transactions and typed digests for one address. The
// wallet package provides the keyring-backed implementation.
type TxSigner interface {
	Address() common.Address
	SignTx(tx *types.Transaction, chainID *big.Int) ([]byte, error)
}

// Option configures a SigningClient.
type Option func(*SigningClient)

// WithReceiptTimeout bounds how long SendTransactionSync waits for a
// transaction to be mined. Default 3 minutes.
func WithReceiptTimeout(d time.Duration) Option {
	return func(s *SigningClient) { s.receiptTimeout = d }
}

// WithPollInterval sets the receipt polling interval. Default 2 seconds.
func WithPollInterval(d time.Duration) Option {
	return func(s *SigningClient) { s.pollInterval = d }
}

// WithWatchInterval sets the log polling interval for watchers. Default
// 3 seconds.
func WithWatchInterval(d time.Duration) Option {
	return func(s *SigningClient) { s.watchInterval = d }
}

// SigningClient implements tip20.Client on top of a JSON-RPC Client and a
// TxSigner. Reads and watchers work without a signer; state-changing calls
// require one.
type SigningClient struct {
	rpc    *Client
	signer TxSigner

	chainID        *big.Int
	receiptTimeout time.Duration
	pollInterval   time.Duration
	watchInterval  time.Duration
}

// NewSigningClient wraps rpc. signer may be nil for read-only use.
func NewSigningClient(rpc *Client, signer TxSigner, opts ...Option) *SigningClient {
	s := &SigningClient{
		rpc:            rpc,
		signer:         signer,
		receiptTimeout: 3 * time.Minute,
		pollInterval:   2 * time.Second,
		watchInterval:  3 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RPC exposes the underlying JSON-RPC client.
func (s *SigningClient) RPC() *Client { return s.rpc }

// ReadContract performs a read-only call.
func (s *SigningClient) ReadContract(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
	return s.rpc.CallContract(ctx, to, data)
}

// SendTransaction signs and broadcasts a dynamic-fee transaction carrying
// data to the contract at to, and returns the hash without waiting.
func (s *SigningClient) SendTransaction(ctx context.Context, to common.Address, data []byte) (common.Hash, error) {
	if s.signer == nil {
		return common.Hash{}, fmt.Errorf("client has no signer (read-only)")
	}
	from := s.signer.Address()

	chainID, err := s.getChainID(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("getting chain id: %w", err)
	}
	gas, err := s.rpc.EstimateGas(ctx, from, to, data)
	if err != nil {
		gas = fallbackGasLimit
	}
	gasPrice, err := s.rpc.GasPrice(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("getting gas price: %w", err)
	}
	nonce, err := s.rpc.PendingNonce(ctx, from)
	if err != nil {
		return common.Hash{}, fmt.Errorf("getting nonce: %w", err)
	}

	tx := types.NewTx(&types.DynamicFeeTx{
		ChainID:   chainID,
		Nonce:     nonce,
		GasTipCap: gasPrice,
		GasFeeCap: new(big.Int).Mul(gasPrice, big.NewInt(2)),
		Gas:       gas,
		To:        &to,
		Value:     big.NewInt(0),
		Data:      data,
	})

	raw, err := s.signer.SignTx(tx, chainID)
	if err != nil {
		return common.Hash{}, fmt.Errorf("signing transaction: %w", err)
	}
	hash, err := s.rpc.SendRawTransaction(ctx, raw)
	if err != nil {
		return common.Hash{}, fmt.Errorf("broadcasting transaction: %w", err)
	}
	return hash, nil
}

// SendTransactionSync broadcasts like SendTransaction and then blocks until
// the transaction is mined, returning the full receipt.
func (s *SigningClient) SendTransactionSync(ctx context.Context, to common.Address, data []byte) (*types.Receipt, error) {
	hash, err := s.SendTransaction(ctx, to, data)
	if err != nil {
		return nil, err
	}
	return s.rpc.WaitForReceipt(ctx, hash, s.receiptTimeout, s.pollInterval)
}

// WatchContractEvent polls eth_getLogs for new logs matching q, anchored at
// the current head so history is not replayed. onLog runs on the polling
// goroutine in block order, then log-index order. The returned function
// stops the subscription; calling it more than once is safe.
func (s *SigningClient) WatchContractEvent(ctx context.Context, q tip20.WatchQuery, onLog func(types.Log)) (func(), error) {
	anchor, err := s.rpc.BlockNumber(ctx)
	if err != nil {
		return nil, fmt.Errorf("getting starting block: %w", err)
	}

	stop := make(chan struct{})
	go func() {
		last := anchor
		ticker := time.NewTicker(s.watchInterval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			latest, err := s.rpc.BlockNumber(ctx)
			if err != nil || latest <= last {
				continue
			}
			logs, err := s.rpc.GetLogs(ctx, FilterQuery{
				Address:   q.Address,
				Topics:    q.Topics,
				FromBlock: last + 1,
				ToBlock:   latest,
			})
			if err != nil {
				continue
			}
			for _, lg := range logs {
				onLog(lg)
			}
			last = latest
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(stop) })
	}, nil
}

func (s *SigningClient) getChainID(ctx context.Context) (*big.Int, error) {
	if s.chainID != nil {
		return s.chainID, nil
	}
	id, err := s.rpc.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	s.chainID = id
	return id, nil
}
