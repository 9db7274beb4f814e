package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/t20labs/tip20cli/internal/ui"
	"github.com/t20labs/tip20cli/tip20"
)

var balanceCmd = &cobra.Command{
	Use:   "balance [address]",
	Short: "Show a token balance",
	Long: `Show the token balance of an address.

Without an argument the balance of the active wallet is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newReadClient()
		if err != nil {
			return err
		}
		token, err := resolveToken()
		if err != nil {
			return err
		}

		var account string
		if len(args) == 1 {
			account = args[0]
		} else {
			_, w, err := loadSigner()
			if err != nil {
				return err
			}
			account = w.Address
		}
		addr, err := parseAddress(account)
		if err != nil {
			return err
		}

		ctx := context.Background()
		sp := ui.NewSpinner("Fetching balance…")
		sp.Start()
		md, err := tip20.GetMetadata(ctx, client, token)
		if err != nil {
			sp.Stop()
			return fmt.Errorf("reading token metadata: %w", err)
		}
		bal, err := tip20.GetBalance(ctx, client, token, addr)
		sp.Stop()
		if err != nil {
			return fmt.Errorf("reading balance: %w", err)
		}

		fmt.Println(ui.KeyValueBlock("Balance", [][2]string{
			{"Token", fmt.Sprintf("%s (%s)", md.Symbol, ui.TruncateAddr(token.Address().Hex()))},
			{"Account", ui.Addr(addr.Hex())},
			{"Balance", fmt.Sprintf("%s %s", formatAmount(bal, md.Decimals), md.Symbol)},
		}))
		return nil
	},
}
