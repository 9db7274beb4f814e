package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/t20labs/tip20cli/internal/ui"
	"github.com/t20labs/tip20cli/tip20"
)

var policyYes bool

var policyCmd = &cobra.Command{
	Use:   "policy <id>",
	Short: "Point the token at a transfer policy (policy admin role)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newSigningClient()
		if err != nil {
			return err
		}
		token, err := resolveToken()
		if err != nil {
			return err
		}
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid policy id %q", args[0])
		}

		if !policyYes && !ui.Confirm(fmt.Sprintf("Switch token %s to transfer policy %d?", token, id)) {
			return nil
		}

		sp := ui.NewSpinner("Waiting for confirmation…")
		sp.Start()
		res, err := tip20.ChangeTransferPolicySync(context.Background(), client,
			tip20.ChangeTransferPolicyArgs{Token: token, PolicyID: id})
		sp.Stop()
		if err != nil {
			return revertHint(err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Transfer policy is now %d", res.Event.PolicyId)))
		fmt.Println(ui.Meta(fmt.Sprintf("tx %s · block %d", res.Receipt.TxHash.Hex(), res.Receipt.BlockNumber)))
		return nil
	},
}

func init() {
	policyCmd.Flags().BoolVarP(&policyYes, "yes", "y", false, "skip confirmation prompt")
}
