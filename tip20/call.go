package tip20

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// Call is a self-describing contract invocation: the ABI and method it was
// built from, the original arguments, the target contract, and the fully
// encoded calldata. Builders return it so callers can hand it to gas
// estimation, simulation, or batching APIs instead of broadcasting.
type Call struct {
	ABI    *abi.ABI
	Method string
	Args   []any
	To     common.Address
	Data   []byte
}

func newCall(a *abi.ABI, to common.Address, method string, args ...any) (*Call, error) {
	data, err := a.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", method, err)
	}
	return &Call{ABI: a, Method: method, Args: args, To: to, Data: data}, nil
}
