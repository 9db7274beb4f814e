package cmd

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/t20labs/tip20cli/chain"
	"github.com/t20labs/tip20cli/internal/wallet"
	"github.com/t20labs/tip20cli/tip20"
)

// newManager returns the wallet manager backed by the config dir and the
// OS keychain.
func newManager() *wallet.Manager {
	return wallet.NewManager(&wallet.JSONStore{Path: cfg.WalletsPath()}, wallet.DefaultKeystore())
}

// loadSigner resolves the signing wallet: --wallet flag, then the config
// default, then the manager's default.
func loadSigner() (*wallet.Signer, *wallet.Wallet, error) {
	mgr := newManager()

	name := walletFlag
	if name == "" {
		name = cfg.DefaultWallet
	}

	var w *wallet.Wallet
	var err error
	if name == "" {
		w, err = mgr.Default()
	} else {
		w, err = mgr.Get(name)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w — run `t20 wallet create`", err)
	}
	return wallet.NewSigner(w, wallet.DefaultKeystore()), w, nil
}

// newReadClient builds a read-only client for the active network.
func newReadClient() (*chain.SigningClient, error) {
	url, err := cfg.RPC()
	if err != nil {
		return nil, err
	}
	return chain.NewSigningClient(chain.NewClient(url), nil), nil
}

// newSigningClient builds a signing client for the active network.
func newSigningClient() (*chain.SigningClient, *wallet.Wallet, error) {
	url, err := cfg.RPC()
	if err != nil {
		return nil, nil, err
	}
	signer, w, err := loadSigner()
	if err != nil {
		return nil, nil, err
	}
	return chain.NewSigningClient(chain.NewClient(url), signer), w, nil
}

// resolveToken parses the --token flag (or config default): a decimal
// token id or a 0x-address. Empty resolves to the USD token.
func resolveToken() (tip20.Token, error) {
	ref := tokenFlag
	if ref == "" {
		ref = cfg.DefaultToken
	}
	if ref == "" {
		return tip20.Token{}, nil // USD
	}
	if strings.HasPrefix(ref, "0x") || strings.HasPrefix(ref, "0X") {
		addr, err := parseAddress(ref)
		if err != nil {
			return tip20.Token{}, err
		}
		return tip20.TokenByAddress(addr), nil
	}
	id, err := strconv.ParseUint(ref, 10, 64)
	if err != nil {
		return tip20.Token{}, fmt.Errorf("invalid token reference %q (want id or 0x-address)", ref)
	}
	return tip20.TokenByID(id), nil
}

// parseAddress parses a 20-byte 0x-address.
func parseAddress(s string) (addr common.Address, err error) {
	h := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, e := hex.DecodeString(h)
	if e != nil || len(b) != 20 {
		return addr, fmt.Errorf("invalid address %q", s)
	}
	copy(addr[:], b)
	return addr, nil
}

// parseAmount scales a decimal token-unit amount into base units.
func parseAmount(s string, decimals uint8) (*big.Int, error) {
	f, ok := new(big.Float).SetString(s)
	if !ok {
		return nil, fmt.Errorf("invalid amount %q", s)
	}
	scale := new(big.Float).SetInt(
		new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil))
	out, _ := new(big.Float).Mul(f, scale).Int(nil)
	return out, nil
}

// formatAmount renders base units as a decimal token-unit string.
func formatAmount(raw *big.Int, decimals uint8) string {
	if raw == nil {
		return "0"
	}
	if decimals == 0 {
		return raw.String()
	}
	div := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	f := new(big.Float).SetInt(raw)
	f.Quo(f, new(big.Float).SetInt(div))
	return f.Text('f', int(decimals))
}

// roleNames maps CLI role names to their bytes32 ids.
var roleNames = map[string][32]byte{
	"admin":       tip20.RoleDefaultAdmin,
	"minter":      tip20.RoleMinter,
	"burner":      tip20.RoleBurner,
	"pauser":      tip20.RolePauser,
	"blocklister": tip20.RoleBlocklister,
	"policyadmin": tip20.RolePolicyAdmin,
}

// parseRole accepts a named role or a 0x-prefixed bytes32.
func parseRole(s string) ([32]byte, error) {
	if r, ok := roleNames[strings.ToLower(s)]; ok {
		return r, nil
	}
	h := strings.TrimPrefix(s, "0x")
	b, err := hex.DecodeString(h)
	if err != nil || len(b) != 32 {
		return [32]byte{}, fmt.Errorf("unknown role %q (want one of admin/minter/burner/pauser/blocklister/policyadmin or bytes32 hex)", s)
	}
	var r [32]byte
	copy(r[:], b)
	return r, nil
}

// parseRoles parses a comma-separated role list.
func parseRoles(s string) ([][32]byte, error) {
	var out [][32]byte
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		r, err := parseRole(part)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no roles given")
	}
	return out, nil
}
