package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/t20labs/tip20cli/internal/ui"
	"github.com/t20labs/tip20cli/tip20"
)

var pauseYes bool

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause all token transfers (pauser role)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPauseState(true)
	},
}

var unpauseCmd = &cobra.Command{
	Use:   "unpause",
	Short: "Resume token transfers (pauser role)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPauseState(false)
	},
}

func runPauseState(pause bool) error {
	client, _, err := newSigningClient()
	if err != nil {
		return err
	}
	token, err := resolveToken()
	if err != nil {
		return err
	}

	verb := "Unpause"
	if pause {
		verb = "Pause"
	}
	if !pauseYes && !ui.ConfirmDanger(fmt.Sprintf("%s token %s?", verb, token)) {
		return nil
	}

	ctx := context.Background()
	sp := ui.NewSpinner("Waiting for confirmation…")
	sp.Start()
	var res *tip20.PauseResult
	if pause {
		res, err = tip20.PauseSync(ctx, client, tip20.PauseArgs{Token: token})
	} else {
		res, err = tip20.UnpauseSync(ctx, client, tip20.PauseArgs{Token: token})
	}
	sp.Stop()
	if err != nil {
		return revertHint(err)
	}

	state := "unpaused"
	if res.Event.Paused {
		state = "paused"
	}
	fmt.Println(ui.Success(fmt.Sprintf("Token is now %s", state)))
	fmt.Println(ui.Meta(fmt.Sprintf("tx %s · block %d", res.Receipt.TxHash.Hex(), res.Receipt.BlockNumber)))
	return nil
}

func init() {
	pauseCmd.Flags().BoolVarP(&pauseYes, "yes", "y", false, "skip confirmation prompt")
	unpauseCmd.Flags().BoolVarP(&pauseYes, "yes", "y", false, "skip confirmation prompt")
}
