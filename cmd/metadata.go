package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/t20labs/tip20cli/internal/ui"
	"github.com/t20labs/tip20cli/tip20"
)

var metadataCmd = &cobra.Command{
	Use:     "metadata",
	Aliases: []string{"info"},
	Short:   "Show token metadata and supply state",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newReadClient()
		if err != nil {
			return err
		}
		token, err := resolveToken()
		if err != nil {
			return err
		}

		sp := ui.NewSpinner("Fetching metadata…")
		sp.Start()
		md, err := tip20.GetMetadata(context.Background(), client, token)
		sp.Stop()
		if err != nil {
			return fmt.Errorf("reading token metadata: %w", err)
		}

		paused := "no"
		if md.Paused {
			paused = ui.StyleError.Render("yes")
		}
		cap := "unlimited"
		if md.SupplyCap != nil && md.SupplyCap.Sign() > 0 {
			cap = fmt.Sprintf("%s %s", formatAmount(md.SupplyCap, md.Decimals), md.Symbol)
		}

		fmt.Println(ui.KeyValueBlock(fmt.Sprintf("%s — %s", md.Symbol, md.Name), [][2]string{
			{"Address", ui.Addr(token.Address().Hex())},
			{"Currency", md.Currency},
			{"Decimals", fmt.Sprintf("%d", md.Decimals)},
			{"Total supply", fmt.Sprintf("%s %s", formatAmount(md.TotalSupply, md.Decimals), md.Symbol)},
			{"Supply cap", cap},
			{"Paused", paused},
			{"Transfer policy", fmt.Sprintf("%d", md.TransferPolicyID)},
		}))
		return nil
	},
}
