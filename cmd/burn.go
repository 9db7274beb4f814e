package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/t20labs/tip20cli/internal/ui"
	"github.com/t20labs/tip20cli/tip20"
)

var (
	burnBlockedFrom string
	burnYes         bool
)

var burnCmd = &cobra.Command{
	Use:   "burn <amount>",
	Short: "Burn tokens",
	Long: `Burn tokens from the wallet's own balance.

--blocked-from burns from a blocked account instead (blocklister role).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, w, err := newSigningClient()
		if err != nil {
			return err
		}
		token, err := resolveToken()
		if err != nil {
			return err
		}

		ctx := context.Background()
		md, err := tip20.GetMetadata(ctx, client, token)
		if err != nil {
			return fmt.Errorf("reading token metadata: %w", err)
		}
		amount, err := parseAmount(args[0], md.Decimals)
		if err != nil {
			return err
		}

		holder := w.Address
		if burnBlockedFrom != "" {
			holder = burnBlockedFrom
		}
		fmt.Println(ui.KeyValueBlock("Burn", [][2]string{
			{"Token", fmt.Sprintf("%s (%s)", md.Symbol, ui.TruncateAddr(token.Address().Hex()))},
			{"From", ui.Addr(holder)},
			{"Amount", fmt.Sprintf("%s %s", args[0], md.Symbol)},
		}))
		if !burnYes && !ui.ConfirmDanger("Burning is irreversible. Continue?") {
			return nil
		}

		sp := ui.NewSpinner("Waiting for confirmation…")
		sp.Start()
		var res *tip20.TransferResult
		if burnBlockedFrom != "" {
			from, perr := parseAddress(burnBlockedFrom)
			if perr != nil {
				sp.Stop()
				return perr
			}
			res, err = tip20.BurnBlockedSync(ctx, client, tip20.BurnBlockedArgs{Token: token, From: from, Amount: amount})
		} else {
			res, err = tip20.BurnSync(ctx, client, tip20.BurnArgs{Token: token, Amount: amount})
		}
		sp.Stop()
		if err != nil {
			return revertHint(err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Burned %s %s", formatAmount(res.Event.Amount, md.Decimals), md.Symbol)))
		fmt.Println(ui.Meta(fmt.Sprintf("tx %s · block %d", res.Receipt.TxHash.Hex(), res.Receipt.BlockNumber)))
		return nil
	},
}

func init() {
	burnCmd.Flags().StringVar(&burnBlockedFrom, "blocked-from", "", "burn from this blocked account (blocklister role)")
	burnCmd.Flags().BoolVarP(&burnYes, "yes", "y", false, "skip confirmation prompt")
}
