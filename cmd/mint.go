package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/t20labs/tip20cli/internal/ui"
	"github.com/t20labs/tip20cli/tip20"
)

var mintYes bool

var mintCmd = &cobra.Command{
	Use:   "mint <to> <amount>",
	Short: "Mint new tokens (minter role)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, w, err := newSigningClient()
		if err != nil {
			return err
		}
		token, err := resolveToken()
		if err != nil {
			return err
		}
		to, err := parseAddress(args[0])
		if err != nil {
			return err
		}

		ctx := context.Background()
		md, err := tip20.GetMetadata(ctx, client, token)
		if err != nil {
			return fmt.Errorf("reading token metadata: %w", err)
		}
		amount, err := parseAmount(args[1], md.Decimals)
		if err != nil {
			return err
		}

		fmt.Println(ui.KeyValueBlock("Mint", [][2]string{
			{"Token", fmt.Sprintf("%s (%s)", md.Symbol, ui.TruncateAddr(token.Address().Hex()))},
			{"Minter", ui.Addr(w.Address)},
			{"To", ui.Addr(to.Hex())},
			{"Amount", fmt.Sprintf("%s %s", args[1], md.Symbol)},
		}))
		if !mintYes && !ui.Confirm("Mint these tokens?") {
			return nil
		}

		sp := ui.NewSpinner("Waiting for confirmation…")
		sp.Start()
		res, err := tip20.MintSync(ctx, client, tip20.MintArgs{Token: token, To: to, Amount: amount})
		sp.Stop()
		if err != nil {
			return revertHint(err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Minted %s %s to %s",
			formatAmount(res.Event.Amount, md.Decimals), md.Symbol, ui.TruncateAddr(res.Event.To.Hex()))))
		fmt.Println(ui.Meta(fmt.Sprintf("tx %s · block %d", res.Receipt.TxHash.Hex(), res.Receipt.BlockNumber)))
		return nil
	},
}

func init() {
	mintCmd.Flags().BoolVarP(&mintYes, "yes", "y", false, "skip confirmation prompt")
}
