package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/t20labs/tip20cli/internal/ui"
	"github.com/t20labs/tip20cli/tip20"
)

var (
	transferMemo  string
	transferFrom  string
	transferAsync bool
	transferYes   bool
)

var transferCmd = &cobra.Command{
	Use:   "transfer <to> <amount>",
	Short: "Transfer tokens",
	Long: `Transfer tokens to an address.

--memo attaches a 32-byte memo to the transfer. --from spends an allowance
granted by another holder instead of the wallet's own balance.`,
	Args: cobra.ExactArgs(2),
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

		targs := tip20.TransferArgs{Token: token, To: to, Amount: amount}
		sender := w.Address
		if transferFrom != "" {
			from, err := parseAddress(transferFrom)
			if err != nil {
				return err
			}
			targs.From = &from
			sender = from.Hex()
		}
		if transferMemo != "" {
			targs.Memo = tip20.Memo(transferMemo)
		}

		rows := [][2]string{
			{"Token", fmt.Sprintf("%s (%s)", md.Symbol, ui.TruncateAddr(token.Address().Hex()))},
			{"From", ui.Addr(sender)},
			{"To", ui.Addr(to.Hex())},
			{"Amount", fmt.Sprintf("%s %s", args[1], md.Symbol)},
		}
		if transferMemo != "" {
			rows = append(rows, [2]string{"Memo", transferMemo})
		}
		fmt.Println(ui.KeyValueBlock("Transfer", rows))

		if !transferYes && !ui.Confirm("Send this transfer?") {
			return nil
		}

		if transferAsync {
			hash, err := tip20.Transfer(ctx, client, targs)
			if err != nil {
				return revertHint(err)
			}
			fmt.Println(ui.Success("Transaction broadcast"))
			fmt.Println(ui.Meta("tx " + hash.Hex()))
			return nil
		}

		sp := ui.NewSpinner("Waiting for confirmation…")
		sp.Start()
		res, err := tip20.TransferSync(ctx, client, targs)
		sp.Stop()
		if err != nil {
			return revertHint(err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Transferred %s %s", formatAmount(res.Event.Amount, md.Decimals), md.Symbol)))
		fmt.Println(ui.Meta(fmt.Sprintf("tx %s · block %d", res.Receipt.TxHash.Hex(), res.Receipt.BlockNumber)))
		return nil
	},
}

// revertHint decodes TIP20 revert data into a readable error when possible.
func revertHint(err error) error {
	if rev, ok := tip20.AsRevertError(err); ok {
		return fmt.Errorf("reverted: %s", rev.Error())
	}
	return err
}

func init() {
	transferCmd.Flags().StringVar(&transferMemo, "memo", "", "32-byte memo to attach")
	transferCmd.Flags().StringVar(&transferFrom, "from", "", "spend an allowance from this address")
	transferCmd.Flags().BoolVar(&transferAsync, "async", false, "broadcast without waiting for confirmation")
	transferCmd.Flags().BoolVarP(&transferYes, "yes", "y", false, "skip confirmation prompt")
}
