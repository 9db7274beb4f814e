package tip20

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// BalanceCall encodes a balanceOf read.
func BalanceCall(token Token, account common.Address) (*Call, error) {
	return newCall(&TokenABI, token.Address(), "balanceOf", account)
}

// GetBalance reads a token balance.
func GetBalance(ctx context.Context, c Client, token Token, account common.Address) (*big.Int, error) {
	call, err := BalanceCall(token, account)
	if err != nil {
		return nil, err
	}
	out, err := readCall(ctx, c, call)
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

// AllowanceCall encodes an allowance read.
func AllowanceCall(token Token, owner, spender common.Address) (*Call, error) {
	return newCall(&TokenABI, token.Address(), "allowance", owner, spender)
}

// GetAllowance reads the amount owner has approved for spender.
func GetAllowance(ctx context.Context, c Client, token Token, owner, spender common.Address) (*big.Int, error) {
	call, err := AllowanceCall(token, owner, spender)
	if err != nil {
		return nil, err
	}
	out, err := readCall(ctx, c, call)
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

// NonceCall encodes a nonces read (the owner's next permit nonce).
func NonceCall(token Token, owner common.Address) (*Call, error) {
	return newCall(&TokenABI, token.Address(), "nonces", owner)
}

// GetNonce reads the owner's current permit nonce.
func GetNonce(ctx context.Context, c Client, token Token, owner common.Address) (*big.Int, error) {
	call, err := NonceCall(token, owner)
	if err != nil {
		return nil, err
	}
	out, err := readCall(ctx, c, call)
	if err != nil {
		return nil, err
	}
	return out[0].(*big.Int), nil
}

// Metadata is the token's descriptive and supply state, assembled from the
// individual view functions.
type Metadata struct {
	Name             string
	Symbol           string
	Decimals         uint8
	Currency         string
	TotalSupply      *big.Int
	SupplyCap        *big.Int
	Paused           bool
	TransferPolicyID uint64
}

// GetMetadata reads the token's metadata with one call per field.
func GetMetadata(ctx context.Context, c Client, token Token) (*Metadata, error) {
	md := &Metadata{}
	fields := []struct {
		method string
		dst    func([]any)
	}{
		{"name", func(out []any) { md.Name = out[0].(string) }},
		{"symbol", func(out []any) { md.Symbol = out[0].(string) }},
		{"decimals", func(out []any) { md.Decimals = out[0].(uint8) }},
		{"currency", func(out []any) { md.Currency = out[0].(string) }},
		{"totalSupply", func(out []any) { md.TotalSupply = out[0].(*big.Int) }},
		{"supplyCap", func(out []any) { md.SupplyCap = out[0].(*big.Int) }},
		{"paused", func(out []any) { md.Paused = out[0].(bool) }},
		{"transferPolicyId", func(out []any) { md.TransferPolicyID = out[0].(uint64) }},
	}
	for _, f := range fields {
		call, err := newCall(&TokenABI, token.Address(), f.method)
		if err != nil {
			return nil, err
		}
		out, err := readCall(ctx, c, call)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.method, err)
		}
		f.dst(out)
	}
	return md, nil
}

// HasRole reads whether account holds role on the token.
func HasRole(ctx context.Context, c Client, token Token, role [32]byte, account common.Address) (bool, error) {
	call, err := newCall(&TokenABI, token.Address(), "hasRole", role, account)
	if err != nil {
		return false, err
	}
	out, err := readCall(ctx, c, call)
	if err != nil {
		return false, err
	}
	return out[0].(bool), nil
}

// GetRoleAdmin reads the admin role governing role.
func GetRoleAdmin(ctx context.Context, c Client, token Token, role [32]byte) ([32]byte, error) {
	call, err := newCall(&TokenABI, token.Address(), "getRoleAdmin", role)
	if err != nil {
		return [32]byte{}, err
	}
	out, err := readCall(ctx, c, call)
	if err != nil {
		return [32]byte{}, err
	}
	return out[0].([32]byte), nil
}

// GetTokenCount reads how many tokens the factory has created.
func GetTokenCount(ctx context.Context, c Client) (uint64, error) {
	call, err := newCall(&FactoryABI, FactoryAddress, "tokenCount")
	if err != nil {
		return 0, err
	}
	out, err := readCall(ctx, c, call)
	if err != nil {
		return 0, err
	}
	return out[0].(uint64), nil
}

// GetTokenAddress asks the factory for the address of a token id.
func GetTokenAddress(ctx context.Context, c Client, id uint64) (common.Address, error) {
	call, err := newCall(&FactoryABI, FactoryAddress, "tokenAddress", id)
	if err != nil {
		return common.Address{}, err
	}
	out, err := readCall(ctx, c, call)
	if err != nil {
		return common.Address{}, err
	}
	return out[0].(common.Address), nil
}

func readCall(ctx context.Context, c Client, call *Call) ([]any, error) {
	raw, err := c.ReadContract(ctx, call.To, call.Data)
	if err != nil {
		return nil, err
	}
	out, err := call.ABI.Unpack(call.Method, raw)
	if err != nil {
		return nil, fmt.Errorf("decoding %s result: %w", call.Method, err)
	}
	return out, nil
}
