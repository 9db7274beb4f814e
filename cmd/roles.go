package cmd

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/t20labs/tip20cli/internal/ui"
	"github.com/t20labs/tip20cli/tip20"
)

var rolesYes bool

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Manage token roles",
	Long: `Grant, revoke, renounce, and inspect token roles.

Roles are named (minter, burner, pauser, blocklister, policyadmin, admin)
or given as raw bytes32 hex. Multiple roles are comma-separated.`,
}

var rolesGrantCmd = &cobra.Command{
	Use:   "grant <account> <roles>",
	Short: "Grant roles to an account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRoleChange("Grant", args[0], args[1])
	},
}

var rolesRevokeCmd = &cobra.Command{
	Use:   "revoke <account> <roles>",
	Short: "Revoke roles from an account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRoleChange("Revoke", args[0], args[1])
	},
}

var rolesRenounceCmd = &cobra.Command{
	Use:   "renounce <roles>",
	Short: "Renounce the wallet's own roles",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, w, err := newSigningClient()
		if err != nil {
			return err
		}
		token, err := resolveToken()
		if err != nil {
			return err
		}
		roles, err := parseRoles(args[0])
		if err != nil {
			return err
		}

		if !rolesYes && !ui.ConfirmDanger(fmt.Sprintf("Renounce %s for %s? This cannot be undone by you.",
			args[0], ui.TruncateAddr(w.Address))) {
			return nil
		}

		sp := ui.NewSpinner("Waiting for confirmation…")
		sp.Start()
		res, err := tip20.RenounceRolesSync(context.Background(), client,
			tip20.RenounceRolesArgs{Token: token, Roles: roles})
		sp.Stop()
		if err != nil {
			return revertHint(err)
		}
		printRoleEvents(res.Events)
		fmt.Println(ui.Meta(fmt.Sprintf("tx %s · block %d", res.Receipt.TxHash.Hex(), res.Receipt.BlockNumber)))
		return nil
	},
}

var rolesSetAdminCmd = &cobra.Command{
	Use:   "set-admin <role> <admin-role>",
	Short: "Set the admin role that governs a role",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newSigningClient()
		if err != nil {
			return err
		}
		token, err := resolveToken()
		if err != nil {
			return err
		}
		role, err := parseRole(args[0])
		if err != nil {
			return err
		}
		admin, err := parseRole(args[1])
		if err != nil {
			return err
		}

		if !rolesYes && !ui.ConfirmDanger(fmt.Sprintf("Make %s the admin of %s?", args[1], args[0])) {
			return nil
		}

		sp := ui.NewSpinner("Waiting for confirmation…")
		sp.Start()
		res, err := tip20.SetRoleAdminSync(context.Background(), client,
			tip20.SetRoleAdminArgs{Token: token, Role: role, AdminRole: admin})
		sp.Stop()
		if err != nil {
			return revertHint(err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("%s is now governed by %s",
			roleName(res.Event.Role), roleName(res.Event.AdminRole))))
		fmt.Println(ui.Meta(fmt.Sprintf("tx %s · block %d", res.Receipt.TxHash.Hex(), res.Receipt.BlockNumber)))
		return nil
	},
}

var rolesHasCmd = &cobra.Command{
	Use:   "has <role> <account>",
	Short: "Check whether an account holds a role",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newReadClient()
		if err != nil {
			return err
		}
		token, err := resolveToken()
		if err != nil {
			return err
		}
		role, err := parseRole(args[0])
		if err != nil {
			return err
		}
		account, err := parseAddress(args[1])
		if err != nil {
			return err
		}

		has, err := tip20.HasRole(context.Background(), client, token, role, account)
		if err != nil {
			return err
		}
		if has {
			fmt.Println(ui.Success(fmt.Sprintf("%s holds %s", ui.TruncateAddr(account.Hex()), roleName(role))))
		} else {
			fmt.Printf("%s does not hold %s\n", ui.TruncateAddr(account.Hex()), roleName(role))
		}
		return nil
	},
}

var rolesAdminCmd = &cobra.Command{
	Use:   "admin <role>",
	Short: "Show the admin role governing a role",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newReadClient()
		if err != nil {
			return err
		}
		token, err := resolveToken()
		if err != nil {
			return err
		}
		role, err := parseRole(args[0])
		if err != nil {
			return err
		}

		admin, err := tip20.GetRoleAdmin(context.Background(), client, token, role)
		if err != nil {
			return err
		}
		fmt.Printf("%s is governed by %s\n", roleName(role), ui.StyleValue.Render(roleName(admin)))
		return nil
	},
}

func runRoleChange(verb, accountArg, rolesArg string) error {
	client, _, err := newSigningClient()
	if err != nil {
		return err
	}
	token, err := resolveToken()
	if err != nil {
		return err
	}
	account, err := parseAddress(accountArg)
	if err != nil {
		return err
	}
	roles, err := parseRoles(rolesArg)
	if err != nil {
		return err
	}

	fmt.Println(ui.KeyValueBlock(verb+" roles", [][2]string{
		{"Token", ui.Addr(token.Address().Hex())},
		{"Account", ui.Addr(account.Hex())},
		{"Roles", rolesArg},
	}))
	if !rolesYes && !ui.Confirm(verb + " these roles?") {
		return nil
	}

	ctx := context.Background()
	sp := ui.NewSpinner("Waiting for confirmation…")
	sp.Start()
	var res *tip20.RolesResult
	if verb == "Grant" {
		res, err = tip20.GrantRolesSync(ctx, client, tip20.GrantRolesArgs{Token: token, Account: account, Roles: roles})
	} else {
		res, err = tip20.RevokeRolesSync(ctx, client, tip20.RevokeRolesArgs{Token: token, Account: account, Roles: roles})
	}
	sp.Stop()
	if err != nil {
		return revertHint(err)
	}
	printRoleEvents(res.Events)
	fmt.Println(ui.Meta(fmt.Sprintf("tx %s · block %d", res.Receipt.TxHash.Hex(), res.Receipt.BlockNumber)))
	return nil
}

func printRoleEvents(events []tip20.RoleEvent) {
	for _, ev := range events {
		if ev.HasRole {
			fmt.Println(ui.Success(fmt.Sprintf("granted %s to %s", roleName(ev.Role), ui.TruncateAddr(ev.Account.Hex()))))
		} else {
			fmt.Println(ui.StyleWarning.Render(fmt.Sprintf("✗ removed %s from %s", roleName(ev.Role), ui.TruncateAddr(ev.Account.Hex()))))
		}
	}
}

// roleName renders a role id as its well-known name, or bytes32 hex.
func roleName(role [32]byte) string {
	for name, id := range roleNames {
		if id == role {
			return strings.ToUpper(name)
		}
	}
	return "0x" + hex.EncodeToString(role[:])
}

func init() {
	rolesCmd.PersistentFlags().BoolVarP(&rolesYes, "yes", "y", false, "skip confirmation prompt")
	rolesCmd.AddCommand(rolesGrantCmd, rolesRevokeCmd, rolesRenounceCmd, rolesSetAdminCmd, rolesHasCmd, rolesAdminCmd)
}
