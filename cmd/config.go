package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/t20labs/tip20cli/internal/rpc"
	"github.com/t20labs/tip20cli/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show and edit CLI settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		token := cfg.DefaultToken
		if token == "" {
			token = "USD (canonical)"
		}
		wallet := cfg.DefaultWallet
		if wallet == "" {
			wallet = ui.Meta("(manager default)")
		}
		fmt.Println(ui.KeyValueBlock("Config", [][2]string{
			{"Directory", cfg.Dir()},
			{"Network mode", ui.StyleValue.Render(cfg.NetworkMode)},
			{"Mainnet RPC", cfg.RPCs["mainnet"]},
			{"Testnet RPC", cfg.RPCs["testnet"]},
			{"Default wallet", wallet},
			{"Default token", token},
		}))
		return nil
	},
}

var configSetRPCCmd = &cobra.Command{
	Use:   "set-rpc <url>",
	Short: "Set the RPC endpoint for the active network mode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.SetRPC(cfg.NetworkMode, args[0])
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("%s RPC set to %s", cfg.NetworkMode, args[0])))
		return nil
	},
}

var configSetModeCmd = &cobra.Command{
	Use:       "set-network-mode <mainnet|testnet>",
	Short:     "Set the active network mode",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"mainnet", "testnet"},
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := args[0]
		if mode != "mainnet" && mode != "testnet" {
			return fmt.Errorf("invalid mode %q (want mainnet or testnet)", mode)
		}
		cfg.NetworkMode = mode
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success("Network mode set to " + mode))
		return nil
	},
}

var configSetWalletCmd = &cobra.Command{
	Use:   "set-default-wallet <name>",
	Short: "Set the wallet used when --wallet is not given",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := newManager().Get(args[0]); err != nil {
			return err
		}
		cfg.DefaultWallet = args[0]
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Default wallet is now %q", args[0])))
		return nil
	},
}

var configSetTokenCmd = &cobra.Command{
	Use:   "set-default-token <id-or-address>",
	Short: "Set the token used when --token is not given",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tokenFlag = args[0]
		if _, err := resolveToken(); err != nil {
			return err
		}
		cfg.DefaultToken = args[0]
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Println(ui.Success("Default token set to " + args[0]))
		return nil
	},
}

var configPingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Measure latency of the configured RPC endpoints",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sp := ui.NewSpinner("Pinging endpoints…")
		sp.Start()
		eps := rpc.CheckAll(context.Background(), cfg.RPCs)
		sp.Stop()

		for _, ep := range eps {
			if ep.Healthy {
				fmt.Printf("%s %-9s %s  %s\n",
					ui.StyleSuccess.Render("●"), ep.Mode, ui.Addr(ep.URL),
					ui.Meta(fmt.Sprintf("%dms · block %d", ep.Latency.Milliseconds(), ep.BlockNumber)))
			} else {
				fmt.Printf("%s %-9s %s  %s\n",
					ui.StyleError.Render("●"), ep.Mode, ui.Addr(ep.URL), ui.Meta(ep.Err))
			}
		}
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetRPCCmd, configSetModeCmd, configSetWalletCmd, configSetTokenCmd, configPingCmd)
}
