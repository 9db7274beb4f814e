package cmd

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"github.com/spf13/cobra"

	"github.com/t20labs/tip20cli/internal/ui"
	"github.com/t20labs/tip20cli/tip20"
)

var (
	permitDeadline time.Duration
	permitSignOnly bool
	permitYes      bool
)

var permitCmd = &cobra.Command{
	Use:   "permit <spender> <amount>",
	Short: "Sign and submit a gasless approval",
	Long: `Sign an EIP-712 permit authorizing a spender allowance and submit it.

With --sign-only the signature is printed instead of broadcast, so a relayer
or the spender can submit it and pay the gas.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, w, err := newSigningClient()
		if err != nil {
			return err
		}
		signer, _, err := loadSigner()
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
		value, err := parseAmount(args[1], md.Decimals)
		if err != nil {
			return err
		}

		chainID, err := client.RPC().ChainID(ctx)
		if err != nil {
			return fmt.Errorf("getting chain id: %w", err)
		}
		owner := w.Addr()
		nonce, err := tip20.GetNonce(ctx, client, token, owner)
		if err != nil {
			return fmt.Errorf("reading permit nonce: %w", err)
		}
		deadline := big.NewInt(time.Now().Add(permitDeadline).Unix())

		digest := tip20.PermitDigest(chainID, token, owner, spender, value, nonce, deadline)
		v, r, s, err := signer.SignDigest(digest)
		if err != nil {
			return err
		}

		fmt.Println(ui.KeyValueBlock("Permit", [][2]string{
			{"Token", fmt.Sprintf("%s (%s)", md.Symbol, ui.TruncateAddr(token.Address().Hex()))},
			{"Owner", ui.Addr(owner.Hex())},
			{"Spender", ui.Addr(spender.Hex())},
			{"Allowance", fmt.Sprintf("%s %s", args[1], md.Symbol)},
			{"Nonce", nonce.String()},
			{"Deadline", time.Unix(deadline.Int64(), 0).UTC().Format(time.RFC3339)},
		}))

		if permitSignOnly {
			fmt.Println(ui.Success("Permit signed"))
			fmt.Println(ui.KeyValueBlock("Signature", [][2]string{
				{"v", fmt.Sprintf("%d", v)},
				{"r", "0x" + hex.EncodeToString(r[:])},
				{"s", "0x" + hex.EncodeToString(s[:])},
			}))
			return nil
		}

		if !permitYes && !ui.Confirm("Submit this permit?") {
			return nil
		}

		sp := ui.NewSpinner("Waiting for confirmation…")
		sp.Start()
		res, err := tip20.PermitSync(ctx, client, tip20.PermitArgs{
			Token:    token,
			Owner:    owner,
			Spender:  spender,
			Value:    value,
			Deadline: deadline,
			V:        v,
			R:        r,
			S:        s,
		})
		sp.Stop()
		if err != nil {
			return revertHint(err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Permit applied: %s %s for %s",
			formatAmount(res.Event.Amount, md.Decimals), md.Symbol, ui.TruncateAddr(res.Event.Spender.Hex()))))
		fmt.Println(ui.Meta(fmt.Sprintf("tx %s · block %d", res.Receipt.TxHash.Hex(), res.Receipt.BlockNumber)))
		return nil
	},
}

func init() {
	permitCmd.Flags().DurationVar(&permitDeadline, "deadline", time.Hour, "how long the permit stays valid")
	permitCmd.Flags().BoolVar(&permitSignOnly, "sign-only", false, "print the signature instead of broadcasting")
	permitCmd.Flags().BoolVarP(&permitYes, "yes", "y", false, "skip confirmation prompt")
}
