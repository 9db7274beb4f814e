package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/t20labs/tip20cli/internal/config"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/t20labs/tip20cli/cmd.Version=1.2.3" .
var Version = "0.3.0"

var (
	cfgDir  string
	cfg     *config.Config
	rpcFlag string
	testnet bool
	mainnet bool

	// Persistent selection flags shared by most commands.
	walletFlag string
	tokenFlag  string
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "t20",
	Short: "TIP20 token CLI",
	Long: `t20 — terminal client for TIP20 tokens.

  Check balances, transfer with memos, mint and burn, manage roles,
  pause tokens, sign permits, create new tokens via the factory, and
  stream live token events.

Global flags --testnet and --mainnet override the configured network mode
for a single invocation. Persist with: t20 config set-network-mode <mode>`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		cfg, err = config.Load(cfgDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if testnet {
			cfg.NetworkMode = "testnet"
		}
		if mainnet {
			cfg.NetworkMode = "mainnet"
		}
		if rpcFlag != "" {
			cfg.SetRPC(cfg.NetworkMode, rpcFlag)
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// TIP20_CONFIG_DIR env var overrides --config flag.
	if envDir := os.Getenv("TIP20_CONFIG_DIR"); envDir != "" {
		cfgDir = envDir
	}

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", cfgDir, "config directory (default: ~/.tip20cli)")
	rootCmd.PersistentFlags().StringVar(&rpcFlag, "rpc", "", "JSON-RPC endpoint (default: config)")
	rootCmd.PersistentFlags().StringVar(&walletFlag, "wallet", "", "signing wallet (default: config)")
	rootCmd.PersistentFlags().StringVar(&tokenFlag, "token", "", "token id or address (default: USD)")
	rootCmd.PersistentFlags().BoolVar(&testnet, "testnet", false, "use testnet instead of mainnet")
	rootCmd.PersistentFlags().BoolVar(&mainnet, "mainnet", false, "use mainnet instead of testnet")
	rootCmd.MarkFlagsMutuallyExclusive("testnet", "mainnet")

	rootCmd.AddCommand(
		balanceCmd,
		metadataCmd,
		transferCmd,
		approveCmd,
		mintCmd,
		burnCmd,
		pauseCmd,
		unpauseCmd,
		rolesCmd,
		supplyCapCmd,
		policyCmd,
		createCmd,
		permitCmd,
		watchCmd,
		walletCmd,
		configCmd,
	)
}
