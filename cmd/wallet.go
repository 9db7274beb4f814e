package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/t20labs/tip20cli/internal/ui"
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Manage signing wallets",
	Long: `Manage signing wallets.

Private keys are stored in the OS keychain (or an encrypted file store on
headless Linux), never in plain config files.`,
}

var walletCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Generate a new wallet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := newManager().Create(args[0])
		if err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Created wallet %q", w.Name)))
		fmt.Println(ui.Meta("address " + w.Address))
		return nil
	},
}

var walletImportCmd = &cobra.Command{
	Use:   "import <name>",
	Short: "Import a wallet from a private key",
	Long:  `Import a wallet. The private key is prompted for, not passed as an argument, to keep it out of shell history.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hexKey := ui.PromptInput("Private key (hex)")
		if hexKey == "" {
			return fmt.Errorf("no key given")
		}
		w, err := newManager().Import(args[0], hexKey)
		if err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Imported wallet %q", w.Name)))
		fmt.Println(ui.Meta("address " + w.Address))
		return nil
	},
}

var walletListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List wallets",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := newManager().List()
		if err != nil {
			return err
		}
		if len(ws) == 0 {
			fmt.Println("No wallets yet.")
			fmt.Println(ui.Hint("t20 wallet create <name>"))
			return nil
		}
		for _, w := range ws {
			marker := "  "
			if w.IsDefault {
				marker = ui.StyleSuccess.Render("* ")
			}
			fmt.Printf("%s%-16s %s\n", marker, w.Name, ui.Addr(w.Address))
		}
		return nil
	},
}

var walletSetDefaultCmd = &cobra.Command{
	Use:   "set-default <name>",
	Short: "Set the default wallet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newManager().SetDefault(args[0]); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Default wallet is now %q", args[0])))
		return nil
	},
}

var walletRemoveCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Delete a wallet and its stored key",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !ui.ConfirmDanger(fmt.Sprintf("Delete wallet %q and its private key?", args[0])) {
			return nil
		}
		if err := newManager().Remove(args[0]); err != nil {
			return err
		}
		fmt.Println(ui.Success(fmt.Sprintf("Removed wallet %q", args[0])))
		return nil
	},
}

func init() {
	walletCmd.AddCommand(walletCreateCmd, walletImportCmd, walletListCmd, walletSetDefaultCmd, walletRemoveCmd)
}
