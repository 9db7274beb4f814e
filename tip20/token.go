package tip20

import (
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// FactoryAddress is the token factory predeploy.
var FactoryAddress = common.HexToAddress("0x20Fa000000000000000000000000000000000000")

// TokenUSD is the canonical USD token (id 1). Operations that accept an
// optional token reference fall back to it when none is supplied.
var TokenUSD = TokenByID(1)

// Token is a reference to a TIP20 token: either a numeric token id or a
// literal contract address, never both. The zero value means "unset" and
// resolves to TokenUSD.
type Token struct {
	byID bool
	id   uint64
	addr common.Address
}

// TokenByID references a token by its numeric id.
func TokenByID(id uint64) Token {
	return Token{byID: true, id: id}
}

// TokenByAddress references a token by its contract address.
func TokenByAddress(addr common.Address) Token {
	return Token{addr: addr}
}

// IsZero reports whether the reference is unset.
func (t Token) IsZero() bool {
	return !t.byID && t.addr == (common.Address{})
}

// ID returns the token id and true when the reference was made by id.
func (t Token) ID() (uint64, bool) {
	return t.id, t.byID
}

// Address resolves the reference to a contract address. Id references use
// the predeploy scheme: 0x20C0, ten zero bytes, then the big-endian id.
// An unset reference resolves to TokenUSD.
func (t Token) Address() common.Address {
	if t.byID {
		return addressForID(t.id)
	}
	if t.addr == (common.Address{}) {
		return addressForID(1) // TokenUSD
	}
	return t.addr
}

func (t Token) String() string {
	if t.byID {
		return fmt.Sprintf("token #%d (%s)", t.id, t.Address().Hex())
	}
	return t.Address().Hex()
}

func addressForID(id uint64) common.Address {
	var a common.Address
	a[0], a[1] = 0x20, 0xc0
	binary.BigEndian.PutUint64(a[12:], id)
	return a
}
