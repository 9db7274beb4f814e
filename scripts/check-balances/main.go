// check-balances: queries the TIP20 USD balance for a set of wallets on
// mainnet and testnet in parallel and prints a summary table.
//
// Run from the module root:
//
//	go run ./scripts/check-balances
package main

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"sort"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"github.com/t20labs/tip20cli/chain"
	"github.com/t20labs/tip20cli/tip20"

	"github.com/ethereum/go-ethereum/common"
)

var wallets = []string{
	"0x802D8097eC1D49808F3c2c866020442891adde57",
	"0x315a352720E52EaDCB62f5e0879D5Fea82B959A4",
	"0x5d1D0b1d5790B1c88cC1e94366D3B242991DC05d",
}

var networks = map[string]string{
	"mainnet": "https://rpc.tempo.xyz",
	"testnet": "https://rpc.testnet.tempo.xyz",
}

const (
	rpcTimeout  = 12 * time.Second
	usdDecimals = 6
)

type result struct {
	mode    string
	wallet  string // short form
	balance string
	err     string
}

func main() {
	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results []result
	)

	for mode, url := range networks {
		client := chain.NewSigningClient(chain.NewClient(url), nil)

		for _, wallet := range wallets {
			wg.Add(1)
			go func(mode, wallet string) {
				defer wg.Done()

				ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
				defer cancel()

				r := result{mode: mode, wallet: shortAddr(wallet)}

				bal, err := tip20.GetBalance(ctx, client, tip20.TokenUSD, common.HexToAddress(wallet))
				if err != nil {
					r.balance = "—"
					r.err = shortErr(err)
				} else {
					r.balance = formatUnits(bal, usdDecimals)
				}

				mu.Lock()
				results = append(results, r)
				mu.Unlock()
			}(mode, wallet)
		}
	}

	wg.Wait()
	printTable(results)
}

func printTable(results []result) {
	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.mode != b.mode {
			return a.mode < b.mode // mainnet < testnet alphabetically
		}
		return a.wallet < b.wallet
	})

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintln(w, "MODE\tWALLET\tUSD BALANCE\tNOTE")
	fmt.Fprintln(w, strings.Repeat("-", 8)+"\t"+
		strings.Repeat("-", 14)+"\t"+
		strings.Repeat("-", 18)+"\t"+
		strings.Repeat("-", 12))

	for _, r := range results {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.mode, r.wallet, r.balance, r.err)
	}
	w.Flush()
}

func shortAddr(addr string) string {
	if len(addr) < 10 {
		return addr
	}
	return addr[:6] + "…" + addr[len(addr)-4:]
}

func shortErr(err error) string {
	s := err.Error()
	if len(s) > 30 {
		return s[:30] + "…"
	}
	return s
}

// formatUnits renders base units as a trimmed decimal string:
// 1500000 with 6 decimals → "1.5".
func formatUnits(raw *big.Int, decimals int) string {
	div := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	f := new(big.Float).SetInt(raw)
	f.Quo(f, new(big.Float).SetInt(div))
	s := f.Text('f', decimals)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" {
		return "0"
	}
	return s
}
