package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/t20labs/tip20cli/internal/ui"
	"github.com/t20labs/tip20cli/tip20"
)

var (
	createName     string
	createSymbol   string
	createDecimals uint8
	createCurrency string
	createAdmin    string
	createYes      bool
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new token via the factory",
	Long: `Create a new TIP20 token through the factory predeploy.

The admin address receives the default admin role on the new token and can
grant the operational roles from there. Defaults to the active wallet.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, w, err := newSigningClient()
		if err != nil {
			return err
		}

		if createName == "" {
			createName = ui.PromptInput("Token name")
		}
		if createSymbol == "" {
			createSymbol = ui.PromptInput("Token symbol")
		}
		if createName == "" || createSymbol == "" {
			return fmt.Errorf("name and symbol are required")
		}

		admin := w.Addr()
		if createAdmin != "" {
			admin, err = parseAddress(createAdmin)
			if err != nil {
				return err
			}
		}

		fmt.Println(ui.KeyValueBlock("Create token", [][2]string{
			{"Name", createName},
			{"Symbol", ui.StyleToken.Render(createSymbol)},
			{"Decimals", fmt.Sprintf("%d", createDecimals)},
			{"Currency", createCurrency},
			{"Admin", ui.Addr(admin.Hex())},
			{"Factory", ui.Addr(tip20.FactoryAddress.Hex())},
		}))
		if !createYes && !ui.Confirm("Create this token?") {
			return nil
		}

		sp := ui.NewSpinner("Waiting for confirmation…")
		sp.Start()
		res, err := tip20.CreateSync(context.Background(), client, tip20.CreateArgs{
			Name:     createName,
			Symbol:   createSymbol,
			Decimals: createDecimals,
			Currency: createCurrency,
			Admin:    admin,
		})
		sp.Stop()
		if err != nil {
			return revertHint(err)
		}

		ev := res.Event
		fmt.Println(ui.Success(fmt.Sprintf("Created %s (token id %d)", ev.Symbol, ev.TokenId)))
		fmt.Println(ui.KeyValueBlock("New token", [][2]string{
			{"Id", fmt.Sprintf("%d", ev.TokenId)},
			{"Address", ui.Addr(ev.Token.Hex())},
			{"Admin", ui.Addr(ev.Admin.Hex())},
		}))
		fmt.Println(ui.Hint(fmt.Sprintf("use it with: t20 --token %d <command>", ev.TokenId)))
		fmt.Println(ui.Meta(fmt.Sprintf("tx %s · block %d", res.Receipt.TxHash.Hex(), res.Receipt.BlockNumber)))
		return nil
	},
}

func init() {
	createCmd.Flags().StringVar(&createName, "name", "", "token name")
	createCmd.Flags().StringVar(&createSymbol, "symbol", "", "token symbol")
	createCmd.Flags().Uint8Var(&createDecimals, "decimals", 6, "token decimals")
	createCmd.Flags().StringVar(&createCurrency, "currency", "USD", "quote currency code")
	createCmd.Flags().StringVar(&createAdmin, "admin", "", "admin address (default: active wallet)")
	createCmd.Flags().BoolVarP(&createYes, "yes", "y", false, "skip confirmation prompt")
}
