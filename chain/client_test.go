package chain

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t20labs/tip20cli/tip20"
)

// rpcMock serves canned JSON-RPC results keyed by method name and records
// the requests it saw.
func rpcMock(t *testing.T, results map[string]any) (*httptest.Server, *[]rpcRequest) {
	t.Helper()
	var seen []rpcRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req rpcRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		seen = append(seen, req)

		result, ok := results[req.Method]
		if !ok {
			fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%d,"error":{"code":-32601,"message":"method not found"}}`, req.ID)
			return
		}
		raw, err := json.Marshal(result)
		require.NoError(t, err)
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%d,"result":%s}`, req.ID, raw)
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

// rpcErrorServer always answers with the given JSON-RPC error object.
func rpcErrorServer(t *testing.T, code int, message, data string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		errObj := map[string]any{"code": code, "message": message}
		if data != "" {
			errObj["data"] = data
		}
		raw, _ := json.Marshal(errObj)
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":1,"error":%s}`, raw)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestChainID(t *testing.T) {
	srv, _ := rpcMock(t, map[string]any{"eth_chainId": "0x539"})

	id, err := NewClient(srv.URL).ChainID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1337), id)
}

func TestGasPrice(t *testing.T) {
	srv, _ := rpcMock(t, map[string]any{"eth_gasPrice": "0x3b9aca00"})

	price, err := NewClient(srv.URL).GasPrice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(1_000_000_000), price)
}

func TestBlockNumber(t *testing.T) {
	srv, _ := rpcMock(t, map[string]any{"eth_blockNumber": "0x64"})

	n, err := NewClient(srv.URL).BlockNumber(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(100), n)
}

func TestPendingNonce(t *testing.T) {
	srv, seen := rpcMock(t, map[string]any{"eth_getTransactionCount": "0x7"})

	addr := common.HexToAddress("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	nonce, err := NewClient(srv.URL).PendingNonce(context.Background(), addr)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), nonce)

	require.Len(t, *seen, 1)
	assert.Equal(t, "pending", (*seen)[0].Params[1])
}

func TestCallContract(t *testing.T) {
	srv, seen := rpcMock(t, map[string]any{"eth_call": "0x00000000000000000000000000000000000000000000000000000000000000ff"})

	to := common.HexToAddress("0x20C0000000000000000000000000000000000001")
	out, err := NewClient(srv.URL).CallContract(context.Background(), to, []byte{0x70, 0xa0, 0x82, 0x31})
	require.NoError(t, err)
	assert.Len(t, out, 32)
	assert.Equal(t, byte(0xff), out[31])

	require.Len(t, *seen, 1)
	assert.Equal(t, "eth_call", (*seen)[0].Method)
}

func TestSendRawTransaction(t *testing.T) {
	hash := "0x1111111111111111111111111111111111111111111111111111111111111111"
	srv, _ := rpcMock(t, map[string]any{"eth_sendRawTransaction": hash})

	got, err := NewClient(srv.URL).SendRawTransaction(context.Background(), []byte{0x02, 0xf8})
	require.NoError(t, err)
	assert.Equal(t, common.HexToHash(hash), got)
}

func TestTransactionReceiptPending(t *testing.T) {
	srv, _ := rpcMock(t, map[string]any{"eth_getTransactionReceipt": nil})

	receipt, err := NewClient(srv.URL).TransactionReceipt(context.Background(), common.HexToHash("0x1"))
	require.NoError(t, err)
	assert.Nil(t, receipt)
}

func receiptJSON(status string) map[string]any {
	return map[string]any{
		"status":            status,
		"transactionHash":   "0x2222222222222222222222222222222222222222222222222222222222222222",
		"transactionIndex":  "0x0",
		"blockHash":         "0x3333333333333333333333333333333333333333333333333333333333333333",
		"blockNumber":       "0x10",
		"gasUsed":           "0x5208",
		"cumulativeGasUsed": "0x5208",
		"contractAddress":   nil,
		"logsBloom":         "0x" + fmt.Sprintf("%0512x", 0),
		"type":              "0x2",
		"effectiveGasPrice": "0x1",
		"logs":              []any{},
	}
}

func TestTransactionReceiptMined(t *testing.T) {
	srv, _ := rpcMock(t, map[string]any{"eth_getTransactionReceipt": receiptJSON("0x1")})

	receipt, err := NewClient(srv.URL).TransactionReceipt(context.Background(), common.HexToHash("0x2"))
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)
	assert.Equal(t, big.NewInt(16), receipt.BlockNumber)
}

func TestWaitForReceiptSuccess(t *testing.T) {
	srv, _ := rpcMock(t, map[string]any{"eth_getTransactionReceipt": receiptJSON("0x1")})

	receipt, err := NewClient(srv.URL).WaitForReceipt(context.Background(),
		common.HexToHash("0x2"), time.Second, 10*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)
}

func TestWaitForReceiptReverted(t *testing.T) {
	srv, _ := rpcMock(t, map[string]any{"eth_getTransactionReceipt": receiptJSON("0x0")})

	receipt, err := NewClient(srv.URL).WaitForReceipt(context.Background(),
		common.HexToHash("0x2"), time.Second, 10*time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reverted")
	require.NotNil(t, receipt)
	assert.Equal(t, types.ReceiptStatusFailed, receipt.Status)
}

func TestWaitForReceiptTimeout(t *testing.T) {
	srv, _ := rpcMock(t, map[string]any{"eth_getTransactionReceipt": nil})

	_, err := NewClient(srv.URL).WaitForReceipt(context.Background(),
		common.HexToHash("0x2"), 50*time.Millisecond, 10*time.Millisecond)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not mined")
}

func TestGetLogsFilterShape(t *testing.T) {
	srv, seen := rpcMock(t, map[string]any{"eth_getLogs": []any{}})

	addr := common.HexToAddress("0x20C0000000000000000000000000000000000001")
	topic := common.HexToHash("0x4444444444444444444444444444444444444444444444444444444444444444")
	_, err := NewClient(srv.URL).GetLogs(context.Background(), FilterQuery{
		Address:   addr,
		Topics:    []common.Hash{topic},
		FromBlock: 5,
		ToBlock:   9,
	})
	require.NoError(t, err)

	require.Len(t, *seen, 1)
	filter, ok := (*seen)[0].Params[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, addr.Hex(), filter["address"])
	assert.Equal(t, "0x5", filter["fromBlock"])
	assert.Equal(t, "0x9", filter["toBlock"])

	// topics is positional: one accepted set at position 0.
	topics, ok := filter["topics"].([]any)
	require.True(t, ok)
	require.Len(t, topics, 1)
	assert.Equal(t, []any{topic.Hex()}, topics[0])
}

func TestRPCErrorSurfaced(t *testing.T) {
	srv := rpcErrorServer(t, -32000, "insufficient funds", "")

	_, err := NewClient(srv.URL).GasPrice(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "-32000")
	assert.Contains(t, err.Error(), "insufficient funds")
}

func TestRPCErrorRevertDataDecoded(t *testing.T) {
	data := "0x" + common.Bytes2Hex(tip20.TokenABI.Errors["ContractPaused"].ID.Bytes()[:4])
	srv := rpcErrorServer(t, 3, "execution reverted", data)

	_, err := NewClient(srv.URL).CallContract(context.Background(),
		common.HexToAddress("0x20C0000000000000000000000000000000000001"), []byte{0x01, 0x02, 0x03, 0x04})
	require.Error(t, err)

	rev, ok := tip20.AsRevertError(err)
	require.True(t, ok)
	assert.Equal(t, "ContractPaused", rev.Name)
}

func TestRPCErrorBadRevertDataIgnored(t *testing.T) {
	srv := rpcErrorServer(t, 3, "execution reverted", "0xzznotdata")

	_, err := NewClient(srv.URL).CallContract(context.Background(),
		common.HexToAddress("0x20C0000000000000000000000000000000000001"), []byte{0x01})
	require.Error(t, err)
	_, ok := tip20.AsRevertError(err)
	assert.False(t, ok)
}
