package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/t20labs/tip20cli/internal/ui"
	"github.com/t20labs/tip20cli/tip20"
)

var supplyCapYes bool

var supplyCapCmd = &cobra.Command{
	Use:   "supply-cap <amount>",
	Short: "Set the token's supply cap (admin role)",
	Long: `Set the maximum total supply. Minting beyond the cap reverts.

An amount of 0 removes the cap.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newSigningClient()
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
		cap, err := parseAmount(args[0], md.Decimals)
		if err != nil {
			return err
		}

		fmt.Println(ui.KeyValueBlock("Set supply cap", [][2]string{
			{"Token", fmt.Sprintf("%s (%s)", md.Symbol, ui.TruncateAddr(token.Address().Hex()))},
			{"Current supply", fmt.Sprintf("%s %s", formatAmount(md.TotalSupply, md.Decimals), md.Symbol)},
			{"New cap", fmt.Sprintf("%s %s", args[0], md.Symbol)},
		}))
		if !supplyCapYes && !ui.Confirm("Set this supply cap?") {
			return nil
		}

		sp := ui.NewSpinner("Waiting for confirmation…")
		sp.Start()
		res, err := tip20.SetSupplyCapSync(ctx, client, tip20.SetSupplyCapArgs{Token: token, Cap: cap})
		sp.Stop()
		if err != nil {
			return revertHint(err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Supply cap set to %s %s", formatAmount(res.Event.Cap, md.Decimals), md.Symbol)))
		fmt.Println(ui.Meta(fmt.Sprintf("tx %s · block %d", res.Receipt.TxHash.Hex(), res.Receipt.BlockNumber)))
		return nil
	},
}

func init() {
	supplyCapCmd.Flags().BoolVarP(&supplyCapYes, "yes", "y", false, "skip confirmation prompt")
}
