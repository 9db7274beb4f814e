package cmd

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/t20labs/tip20cli/internal/ui"
	"github.com/t20labs/tip20cli/tip20"
)

var watchCmd = &cobra.Command{
	Use:       "watch [transfers|approvals|roles|pause|created]",
	Short:     "Stream live token events",
	Long:      `Stream decoded token events into an interactive view. Defaults to transfers.`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"transfers", "approvals", "roles", "pause", "created"},
	RunE: func(cmd *cobra.Command, args []string) error {
		mode := "transfers"
		if len(args) == 1 {
			mode = args[0]
		}

		client, err := newReadClient()
		if err != nil {
			return err
		}
		token, err := resolveToken()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		symbol := token.String()
		watched := token.Address()
		var decimals uint8 = 6
		if mode != "created" {
			md, err := tip20.GetMetadata(ctx, client, token)
			if err != nil {
				return fmt.Errorf("reading token metadata: %w", err)
			}
			symbol = md.Symbol
			decimals = md.Decimals
		} else {
			symbol = "factory"
			watched = tip20.FactoryAddress
		}

		p := tea.NewProgram(ui.EventModel{
			Token:  watched.Hex(),
			Symbol: symbol,
			Mode:   mode,
		})

		unsubscribe, err := subscribeEvents(ctx, client, token, mode, decimals, p)
		if err != nil {
			return err
		}
		defer unsubscribe()

		// Feed the status line with the chain head.
		go func() {
			ticker := time.NewTicker(3 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
				}
				n, err := client.RPC().BlockNumber(ctx)
				if err != nil {
					p.Send(ui.EventStatusMsg{ErrMsg: "rpc unreachable"})
					continue
				}
				p.Send(ui.EventStatusMsg{BlockNum: n})
			}
		}()

		_, err = p.Run()
		return err
	},
}

// subscribeEvents starts the watcher for mode and forwards decoded events to
// the Bubble Tea program.
func subscribeEvents(ctx context.Context, client tip20.Client, token tip20.Token, mode string, decimals uint8, p *tea.Program) (func(), error) {
	onError := func(err error) {
		p.Send(ui.EventStatusMsg{ErrMsg: err.Error()})
	}

	switch mode {
	case "transfers":
		return tip20.WatchTransfers(ctx, client, tip20.WatchTransfersOptions{
			Token: token,
			OnEvent: func(ev tip20.TransferEvent) {
				p.Send(ui.EventMsg{
					Kind:     "transfer",
					From:     ui.TruncateAddr(ev.From.Hex()),
					To:       ui.TruncateAddr(ev.To.Hex()),
					Detail:   formatAmount(ev.Amount, decimals),
					TxHash:   ev.Raw.TxHash.Hex(),
					BlockNum: ev.Raw.BlockNumber,
				})
			},
			OnError: onError,
		})

	case "approvals":
		return tip20.WatchApprovals(ctx, client, tip20.WatchApprovalsOptions{
			Token: token,
			OnEvent: func(ev tip20.ApprovalEvent) {
				p.Send(ui.EventMsg{
					Kind:     "approval",
					From:     ui.TruncateAddr(ev.Owner.Hex()),
					To:       ui.TruncateAddr(ev.Spender.Hex()),
					Detail:   formatAmount(ev.Amount, decimals),
					TxHash:   ev.Raw.TxHash.Hex(),
					BlockNum: ev.Raw.BlockNumber,
				})
			},
			OnError: onError,
		})

	case "roles":
		return tip20.WatchRoles(ctx, client, tip20.WatchRolesOptions{
			Token: token,
			OnEvent: func(ev tip20.RoleChange) {
				p.Send(ui.EventMsg{
					Kind:     "role",
					From:     ui.TruncateAddr(ev.Sender.Hex()),
					To:       ui.TruncateAddr(ev.Account.Hex()),
					Detail:   fmt.Sprintf("%s %s", ev.Type, roleName(ev.Role)),
					TxHash:   ev.Raw.TxHash.Hex(),
					BlockNum: ev.Raw.BlockNumber,
				})
			},
			OnError: onError,
		})

	case "pause":
		return tip20.WatchPauseState(ctx, client, tip20.WatchPauseStateOptions{
			Token: token,
			OnEvent: func(ev tip20.PauseStateEvent) {
				state := "unpaused"
				if ev.Paused {
					state = "paused"
				}
				p.Send(ui.EventMsg{
					Kind:     "pause",
					Detail:   state,
					TxHash:   ev.Raw.TxHash.Hex(),
					BlockNum: ev.Raw.BlockNumber,
				})
			},
			OnError: onError,
		})

	case "created":
		return tip20.WatchTokenCreated(ctx, client, tip20.WatchTokenCreatedOptions{
			OnEvent: func(ev tip20.TokenCreatedEvent) {
				p.Send(ui.EventMsg{
					Kind:     "created",
					From:     ui.TruncateAddr(ev.Admin.Hex()),
					To:       ui.TruncateAddr(ev.Token.Hex()),
					Detail:   fmt.Sprintf("%s (id %d)", ev.Symbol, ev.TokenId),
					TxHash:   ev.Raw.TxHash.Hex(),
					BlockNum: ev.Raw.BlockNumber,
				})
			},
			OnError: onError,
		})

	default:
		return nil, fmt.Errorf("unknown watch mode %q", mode)
	}
}
