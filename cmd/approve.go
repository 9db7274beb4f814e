package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/t20labs/tip20cli/internal/ui"
	"github.com/t20labs/tip20cli/tip20"
)

var (
	approveAsync bool
	approveYes   bool
)

var approveCmd = &cobra.Command{
	Use:   "approve <spender> <amount>",
	Short: "Approve a spender allowance",
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
		spender, err := parseAddress(args[0])
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

		fmt.Println(ui.KeyValueBlock("Approve", [][2]string{
			{"Token", fmt.Sprintf("%s (%s)", md.Symbol, ui.TruncateAddr(token.Address().Hex()))},
			{"Owner", ui.Addr(w.Address)},
			{"Spender", ui.Addr(spender.Hex())},
			{"Allowance", fmt.Sprintf("%s %s", args[1], md.Symbol)},
		}))
		if !approveYes && !ui.Confirm("Approve this allowance?") {
			return nil
		}

		aargs := tip20.ApproveArgs{Token: token, Spender: spender, Amount: amount}
		if approveAsync {
			hash, err := tip20.Approve(ctx, client, aargs)
			if err != nil {
				return revertHint(err)
			}
			fmt.Println(ui.Success("Transaction broadcast"))
			fmt.Println(ui.Meta("tx " + hash.Hex()))
			return nil
		}

		sp := ui.NewSpinner("Waiting for confirmation…")
		sp.Start()
		res, err := tip20.ApproveSync(ctx, client, aargs)
		sp.Stop()
		if err != nil {
			return revertHint(err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Approved %s %s for %s",
			formatAmount(res.Event.Amount, md.Decimals), md.Symbol, ui.TruncateAddr(res.Event.Spender.Hex()))))
		fmt.Println(ui.Meta(fmt.Sprintf("tx %s · block %d", res.Receipt.TxHash.Hex(), res.Receipt.BlockNumber)))
		return nil
	},
}

func init() {
	approveCmd.Flags().BoolVar(&approveAsync, "async", false, "broadcast without waiting for confirmation")
	approveCmd.Flags().BoolVarP(&approveYes, "yes", "y", false, "skip confirmation prompt")
}
