package tip20

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/crypto/sha3"
)

// Well-known TIP20 roles. A role id is the keccak256 hash of its name;
// the default admin role is the zero value.
var (
	RoleDefaultAdmin = [32]byte{}
	RoleMinter       = RoleID("MINTER_ROLE")
	RoleBurner       = RoleID("BURNER_ROLE")
	RolePauser       = RoleID("PAUSER_ROLE")
	RoleBlocklister  = RoleID("BLOCKLISTER_ROLE")
	RolePolicyAdmin  = RoleID("POLICY_ADMIN_ROLE")
)

// RoleID hashes a role name into its bytes32 id.
func RoleID(name string) [32]byte {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(name))
	var id [32]byte
	copy(id[:], h.Sum(nil))
	return id
}

// GrantRolesArgs are the parameters of grantRoles. One RoleMembershipUpdated
// event is emitted per role.
type GrantRolesArgs struct {
	Token   Token
	Account common.Address
	Roles   [][32]byte
}

// GrantRolesCall encodes a grantRoles invocation.
func GrantRolesCall(args GrantRolesArgs) (*Call, error) {
	return newCall(&TokenABI, args.Token.Address(), "grantRoles", args.Account, args.Roles)
}

// GrantRoles broadcasts a grantRoles and returns the transaction hash.
func GrantRoles(ctx context.Context, c Client, args GrantRolesArgs) (common.Hash, error) {
	call, err := GrantRolesCall(args)
	if err != nil {
		return common.Hash{}, err
	}
	return c.SendTransaction(ctx, call.To, call.Data)
}

// RolesResult is a confirmed role-membership change: receipt plus every
// decoded RoleMembershipUpdated event, one per role touched.
type RolesResult struct {
	Receipt *types.Receipt
	Events  []RoleEvent
}

// GrantRolesSync broadcasts a grantRoles, waits for inclusion, and decodes
// all emitted RoleMembershipUpdated events.
func GrantRolesSync(ctx context.Context, c Client, args GrantRolesArgs) (*RolesResult, error) {
	call, err := GrantRolesCall(args)
	if err != nil {
		return nil, err
	}
	return rolesSync(ctx, c, args.Token, call)
}

// RevokeRolesArgs are the parameters of revokeRoles.
type RevokeRolesArgs struct {
	Token   Token
	Account common.Address
	Roles   [][32]byte
}

// RevokeRolesCall encodes a revokeRoles invocation.
func RevokeRolesCall(args RevokeRolesArgs) (*Call, error) {
	return newCall(&TokenABI, args.Token.Address(), "revokeRoles", args.Account, args.Roles)
}

// RevokeRoles broadcasts a revokeRoles and returns the transaction hash.
func RevokeRoles(ctx context.Context, c Client, args RevokeRolesArgs) (common.Hash, error) {
	call, err := RevokeRolesCall(args)
	if err != nil {
		return common.Hash{}, err
	}
	return c.SendTransaction(ctx, call.To, call.Data)
}

// RevokeRolesSync broadcasts a revokeRoles, waits for inclusion, and
// decodes all emitted RoleMembershipUpdated events.
func RevokeRolesSync(ctx context.Context, c Client, args RevokeRolesArgs) (*RolesResult, error) {
	call, err := RevokeRolesCall(args)
	if err != nil {
		return nil, err
	}
	return rolesSync(ctx, c, args.Token, call)
}

// RenounceRolesArgs are the parameters of renounceRoles, which removes
// roles from the caller itself.
type RenounceRolesArgs struct {
	Token Token
	Roles [][32]byte
}

// RenounceRolesCall encodes a renounceRoles invocation.
func RenounceRolesCall(args RenounceRolesArgs) (*Call, error) {
	return newCall(&TokenABI, args.Token.Address(), "renounceRoles", args.Roles)
}

// RenounceRoles broadcasts a renounceRoles and returns the transaction hash.
func RenounceRoles(ctx context.Context, c Client, args RenounceRolesArgs) (common.Hash, error) {
	call, err := RenounceRolesCall(args)
	if err != nil {
		return common.Hash{}, err
	}
	return c.SendTransaction(ctx, call.To, call.Data)
}

// RenounceRolesSync broadcasts a renounceRoles, waits for inclusion, and
// decodes all emitted RoleMembershipUpdated events.
func RenounceRolesSync(ctx context.Context, c Client, args RenounceRolesArgs) (*RolesResult, error) {
	call, err := RenounceRolesCall(args)
	if err != nil {
		return nil, err
	}
	return rolesSync(ctx, c, args.Token, call)
}

func rolesSync(ctx context.Context, c Client, token Token, call *Call) (*RolesResult, error) {
	receipt, err := c.SendTransactionSync(ctx, call.To, call.Data)
	if err != nil {
		return nil, err
	}
	evs, err := ExtractRoleEvents(token, receipt.Logs)
	if err != nil {
		return nil, err
	}
	return &RolesResult{Receipt: receipt, Events: evs}, nil
}

// SetRoleAdminArgs are the parameters of setRoleAdmin.
type SetRoleAdminArgs struct {
	Token     Token
	Role      [32]byte
	AdminRole [32]byte
}

// SetRoleAdminCall encodes a setRoleAdmin invocation.
func SetRoleAdminCall(args SetRoleAdminArgs) (*Call, error) {
	return newCall(&TokenABI, args.Token.Address(), "setRoleAdmin", args.Role, args.AdminRole)
}

// SetRoleAdmin broadcasts a setRoleAdmin and returns the transaction hash.
func SetRoleAdmin(ctx context.Context, c Client, args SetRoleAdminArgs) (common.Hash, error) {
	call, err := SetRoleAdminCall(args)
	if err != nil {
		return common.Hash{}, err
	}
	return c.SendTransaction(ctx, call.To, call.Data)
}

// SetRoleAdminResult is a confirmed admin-role change.
type SetRoleAdminResult struct {
	Receipt *types.Receipt
	Event   *RoleAdminEvent
}

// SetRoleAdminSync broadcasts a setRoleAdmin, waits for inclusion, and
// decodes the emitted RoleAdminUpdated event.
func SetRoleAdminSync(ctx context.Context, c Client, args SetRoleAdminArgs) (*SetRoleAdminResult, error) {
	call, err := SetRoleAdminCall(args)
	if err != nil {
		return nil, err
	}
	receipt, err := c.SendTransactionSync(ctx, call.To, call.Data)
	if err != nil {
		return nil, err
	}
	ev, err := ExtractRoleAdminEvent(args.Token, receipt.Logs)
	if err != nil {
		return nil, err
	}
	return &SetRoleAdminResult{Receipt: receipt, Event: ev}, nil
}

// RoleEvent is a decoded RoleMembershipUpdated log. HasRole reports the
// membership state after the change: true for a grant, false for a
// revocation or renouncement.
type RoleEvent struct {
	Role    [32]byte
	Account common.Address
	Sender  common.Address
	HasRole bool
	Raw     types.Log
}

// ExtractRoleEvent returns the first RoleMembershipUpdated emitted by the
// token, or ErrEventNotFound.
func ExtractRoleEvent(token Token, logs []*types.Log) (*RoleEvent, error) {
	evs, err := ExtractRoleEvents(token, logs)
	if err != nil {
		return nil, err
	}
	if len(evs) == 0 {
		return nil, ErrEventNotFound
	}
	return &evs[0], nil
}

// ExtractRoleEvents returns every RoleMembershipUpdated emitted by the
// token, in input order. Batched grants emit one event per role.
func ExtractRoleEvents(token Token, logs []*types.Log) ([]RoleEvent, error) {
	var out []RoleEvent
	for _, lg := range matchingLogs(&TokenABI, token.Address(), "RoleMembershipUpdated", logs) {
		var ev RoleEvent
		if err := unpackLog(&TokenABI, &ev, "RoleMembershipUpdated", *lg); err != nil {
			return nil, err
		}
		ev.Raw = *lg
		out = append(out, ev)
	}
	return out, nil
}

// RoleAdminEvent is a decoded RoleAdminUpdated log.
type RoleAdminEvent struct {
	Role      [32]byte
	AdminRole [32]byte
	Sender    common.Address
	Raw       types.Log
}

// ExtractRoleAdminEvent returns the first RoleAdminUpdated emitted by the
// token, or ErrEventNotFound.
func ExtractRoleAdminEvent(token Token, logs []*types.Log) (*RoleAdminEvent, error) {
	for _, lg := range matchingLogs(&TokenABI, token.Address(), "RoleAdminUpdated", logs) {
		var ev RoleAdminEvent
		if err := unpackLog(&TokenABI, &ev, "RoleAdminUpdated", *lg); err != nil {
			return nil, err
		}
		ev.Raw = *lg
		return &ev, nil
	}
	return nil, ErrEventNotFound
}
