package tip20

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Watchers are direct pass-through registrations on the client's event
// subscription: no buffering, no replay, no dedup. Callback order is the
// order the client delivers logs in. Logs that fail to decode are dropped
// (reported through OnError when set).

// WatchTransfersOptions configure a Transfer subscription.
type WatchTransfersOptions struct {
	Token   Token
	OnEvent func(TransferEvent)
	OnError func(error)
}

// WatchTransfers streams decoded Transfer events for one token until the
// returned unsubscribe function is called.
func WatchTransfers(ctx context.Context, c Client, opts WatchTransfersOptions) (func(), error) {
	return watchToken(ctx, c, opts.Token, "Transfer", opts.OnError, func(lg types.Log) error {
		var ev TransferEvent
		if err := unpackLog(&TokenABI, &ev, "Transfer", lg); err != nil {
			return err
		}
		ev.Raw = lg
		opts.OnEvent(ev)
		return nil
	})
}

// WatchApprovalsOptions configure an Approval subscription.
type WatchApprovalsOptions struct {
	Token   Token
	OnEvent func(ApprovalEvent)
	OnError func(error)
}

// WatchApprovals streams decoded Approval events for one token.
func WatchApprovals(ctx context.Context, c Client, opts WatchApprovalsOptions) (func(), error) {
	return watchToken(ctx, c, opts.Token, "Approval", opts.OnError, func(lg types.Log) error {
		var ev ApprovalEvent
		if err := unpackLog(&TokenABI, &ev, "Approval", lg); err != nil {
			return err
		}
		ev.Raw = lg
		opts.OnEvent(ev)
		return nil
	})
}

// Role change kinds synthesized by WatchRoles.
const (
	RoleChangeGranted = "granted"
	RoleChangeRevoked = "revoked"
)

// RoleChange is a RoleMembershipUpdated event with a derived Type field:
// "granted" when HasRole is true, "revoked" otherwise.
type RoleChange struct {
	RoleEvent
	Type string
}

// WatchRolesOptions configure a role-membership subscription.
type WatchRolesOptions struct {
	Token   Token
	OnEvent func(RoleChange)
	OnError func(error)
}

// WatchRoles streams decoded RoleMembershipUpdated events for one token.
func WatchRoles(ctx context.Context, c Client, opts WatchRolesOptions) (func(), error) {
	return watchToken(ctx, c, opts.Token, "RoleMembershipUpdated", opts.OnError, func(lg types.Log) error {
		var ev RoleEvent
		if err := unpackLog(&TokenABI, &ev, "RoleMembershipUpdated", lg); err != nil {
			return err
		}
		ev.Raw = lg
		change := RoleChange{RoleEvent: ev, Type: RoleChangeRevoked}
		if ev.HasRole {
			change.Type = RoleChangeGranted
		}
		opts.OnEvent(change)
		return nil
	})
}

// WatchPauseStateOptions configure a pause-state subscription.
type WatchPauseStateOptions struct {
	Token   Token
	OnEvent func(PauseStateEvent)
	OnError func(error)
}

// WatchPauseState streams decoded PauseStateUpdated events for one token.
func WatchPauseState(ctx context.Context, c Client, opts WatchPauseStateOptions) (func(), error) {
	return watchToken(ctx, c, opts.Token, "PauseStateUpdated", opts.OnError, func(lg types.Log) error {
		var ev PauseStateEvent
		if err := unpackLog(&TokenABI, &ev, "PauseStateUpdated", lg); err != nil {
			return err
		}
		ev.Raw = lg
		opts.OnEvent(ev)
		return nil
	})
}

// WatchTokenCreatedOptions configure a factory TokenCreated subscription.
type WatchTokenCreatedOptions struct {
	OnEvent func(TokenCreatedEvent)
	OnError func(error)
}

// WatchTokenCreated streams decoded TokenCreated events from the factory.
func WatchTokenCreated(ctx context.Context, c Client, opts WatchTokenCreatedOptions) (func(), error) {
	q := WatchQuery{
		Address: FactoryAddress,
		Topics:  []common.Hash{FactoryABI.Events["TokenCreated"].ID},
	}
	return c.WatchContractEvent(ctx, q, func(lg types.Log) {
		var ev TokenCreatedEvent
		if err := unpackLog(&FactoryABI, &ev, "TokenCreated", lg); err != nil {
			if opts.OnError != nil {
				opts.OnError(err)
			}
			return
		}
		ev.Raw = lg
		opts.OnEvent(ev)
	})
}

func watchToken(ctx context.Context, c Client, token Token, event string, onError func(error), handle func(types.Log) error) (func(), error) {
	q := WatchQuery{
		Address: token.Address(),
		Topics:  []common.Hash{TokenABI.Events[event].ID},
	}
	return c.WatchContractEvent(ctx, q, func(lg types.Log) {
		if err := handle(lg); err != nil && onError != nil {
			onError(err)
		}
	})
}
