// Package rpc measures the health of configured JSON-RPC endpoints.
package rpc

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/t20labs/tip20cli/chain"
)

const pingTimeout = 5 * time.Second

// Endpoint is the measured state of one configured RPC endpoint.
type Endpoint struct {
	Mode        string // "mainnet" or "testnet"
	URL         string
	Latency     time.Duration
	BlockNumber uint64
	Healthy     bool
	Err         string
}

// Check pings a single endpoint: one eth_blockNumber round trip under a
// 5-second deadline.
func Check(ctx context.Context, mode, url string) Endpoint {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	ep := Endpoint{Mode: mode, URL: url}

	start := time.Now()
	block, err := chain.NewClient(url).BlockNumber(ctx)
	ep.Latency = time.Since(start)
	if err != nil {
		ep.Err = err.Error()
		return ep
	}
	ep.BlockNumber = block
	ep.Healthy = true
	return ep
}

// CheckAll pings every configured endpoint in parallel and returns the
// results sorted by mode.
func CheckAll(ctx context.Context, rpcs map[string]string) []Endpoint {
	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		out []Endpoint
	)
	for mode, url := range rpcs {
		wg.Add(1)
		go func(mode, url string) {
			defer wg.Done()
			ep := Check(ctx, mode, url)
			mu.Lock()
			out = append(out, ep)
			mu.Unlock()
		}(mode, url)
	}
	wg.Wait()

	sort.Slice(out, func(i, j int) bool { return out[i].Mode < out[j].Mode })
	return out
}
