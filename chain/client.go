// Package chain is a minimal JSON-RPC client for TIP20-compatible EVM
// chains, plus a signing wrapper that implements tip20.Client.
package chain

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/t20labs/tip20cli/tip20"
)

// Client is a minimal EVM JSON-RPC client over HTTP.
type Client struct {
	url string
	hc  *http.Client
}

// NewClient creates a JSON-RPC client pointed at url.
func NewClient(url string) *Client {
	return &Client{
		url: url,
		hc: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ChainID returns the chain's id.
func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	var out hexutil.Big
	if err := c.call(ctx, &out, "eth_chainId"); err != nil {
		return nil, err
	}
	return out.ToInt(), nil
}

// GasPrice returns the current gas price.
func (c *Client) GasPrice(ctx context.Context) (*big.Int, error) {
	var out hexutil.Big
	if err := c.call(ctx, &out, "eth_gasPrice"); err != nil {
		return nil, err
	}
	return out.ToInt(), nil
}

// BlockNumber returns the latest block number.
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	var out hexutil.Uint64
	if err := c.call(ctx, &out, "eth_blockNumber"); err != nil {
		return 0, err
	}
	return uint64(out), nil
}

// PendingNonce returns the transaction count for addr including queued
// transactions.
func (c *Client) PendingNonce(ctx context.Context, addr common.Address) (uint64, error) {
	var out hexutil.Uint64
	if err := c.call(ctx, &out, "eth_getTransactionCount", addr.Hex(), "pending"); err != nil {
		return 0, err
	}
	return uint64(out), nil
}

// EstimateGas estimates gas for a contract call.
func (c *Client) EstimateGas(ctx context.Context, from, to common.Address, data []byte) (uint64, error) {
	params := map[string]string{
		"from": from.Hex(),
		"to":   to.Hex(),
	}
	if len(data) > 0 {
		params["data"] = hexutil.Encode(data)
	}
	var out hexutil.Uint64
	if err := c.call(ctx, &out, "eth_estimateGas", params, "latest"); err != nil {
		return 0, err
	}
	return uint64(out), nil
}

// CallContract performs a read-only eth_call against the latest block.
func (c *Client) CallContract(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
	params := map[string]string{
		"to":   to.Hex(),
		"data": hexutil.Encode(data),
	}
	var out hexutil.Bytes
	if err := c.call(ctx, &out, "eth_call", params, "latest"); err != nil {
		return nil, err
	}
	return out, nil
}

// SendRawTransaction broadcasts a signed raw transaction.
func (c *Client) SendRawTransaction(ctx context.Context, raw []byte) (common.Hash, error) {
	var out common.Hash
	if err := c.call(ctx, &out, "eth_sendRawTransaction", hexutil.Encode(raw)); err != nil {
		return common.Hash{}, err
	}
	return out, nil
}

// TransactionReceipt fetches the receipt for hash. Returns nil, nil while
// the transaction is still pending.
func (c *Client) TransactionReceipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	raw, err := c.callRaw(ctx, "eth_getTransactionReceipt", hash.Hex())
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil // still pending
	}
	var receipt types.Receipt
	if err := json.Unmarshal(raw, &receipt); err != nil {
		return nil, fmt.Errorf("parsing receipt: %w", err)
	}
	return &receipt, nil
}

// WaitForReceipt polls until the transaction is mined or timeout expires.
// Returns the receipt and an error if the transaction reverted.
func (c *Client) WaitForReceipt(ctx context.Context, hash common.Hash, timeout, interval time.Duration) (*types.Receipt, error) {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		receipt, err := c.TransactionReceipt(ctx, hash)
		if err != nil {
			return nil, err
		}
		if receipt != nil {
			if receipt.Status == types.ReceiptStatusFailed {
				return receipt, fmt.Errorf("transaction reverted (hash: %s)", hash.Hex())
			}
			return receipt, nil
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(interval):
		}
	}
	return nil, fmt.Errorf("transaction %s not mined within %s", hash.Hex(), timeout)
}

// FilterQuery is an eth_getLogs filter: one contract address, an optional
// topic0 set, and an inclusive block range.
type FilterQuery struct {
	Address   common.Address
	Topics    []common.Hash
	FromBlock uint64
	ToBlock   uint64
}

// GetLogs queries event logs matching q.
func (c *Client) GetLogs(ctx context.Context, q FilterQuery) ([]types.Log, error) {
	filter := map[string]interface{}{
		"address":   q.Address.Hex(),
		"fromBlock": hexutil.EncodeUint64(q.FromBlock),
		"toBlock":   hexutil.EncodeUint64(q.ToBlock),
	}
	if len(q.Topics) > 0 {
		topic0 := make([]string, len(q.Topics))
		for i, t := range q.Topics {
			topic0[i] = t.Hex()
		}
		filter["topics"] = []interface{}{topic0}
	}
	var logs []types.Log
	if err := c.call(ctx, &logs, "eth_getLogs", filter); err != nil {
		return nil, err
	}
	return logs, nil
}

// --- internal JSON-RPC plumbing ---

type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
	ID      int           `json:"id"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

type rpcError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// revertData extracts hex-encoded revert return data from the error's data
// field, when present.
func (e *rpcError) revertData() []byte {
	var hexData string
	if json.Unmarshal(e.Data, &hexData) != nil {
		return nil
	}
	b, err := hexutil.Decode(hexData)
	if err != nil {
		return nil
	}
	return b
}

func (c *Client) call(ctx context.Context, result interface{}, method string, params ...interface{}) error {
	raw, err := c.callRaw(ctx, method, params...)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return fmt.Errorf("parsing %s result: %w", method, err)
	}
	return nil
}

func (c *Client) callRaw(ctx context.Context, method string, params ...interface{}) (json.RawMessage, error) {
	if params == nil {
		params = []interface{}{}
	}
	reqBody, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      1,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, strings.NewReader(string(reqBody)))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("RPC request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(body, &rpcResp); err != nil {
		return nil, fmt.Errorf("parsing response: %w", err)
	}
	if rpcResp.Error != nil {
		if data := rpcResp.Error.revertData(); len(data) >= 4 {
			if rev, ok := tip20.UnpackRevert(data); ok {
				return nil, fmt.Errorf("RPC error %d: %w", rpcResp.Error.Code, rev)
			}
		}
		return nil, fmt.Errorf("RPC error %d: %s", rpcResp.Error.Code, rpcResp.Error.Message)
	}
	return rpcResp.Result, nil
}
