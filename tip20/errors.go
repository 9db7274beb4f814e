package tip20

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// RevertError is a TIP20 custom error decoded from revert return data. The
// contract defines the taxonomy (ContractPaused, Unauthorized, …); this
// package only names it for typed matching and does no recovery of its own.
type RevertError struct {
	Name string
	Args []any
}

func (e *RevertError) Error() string {
	if len(e.Args) == 0 {
		return "tip20: reverted: " + e.Name
	}
	return fmt.Sprintf("tip20: reverted: %s%v", e.Name, e.Args)
}

// AsRevertError unwraps a RevertError from an error chain.
func AsRevertError(err error) (*RevertError, bool) {
	var rev *RevertError
	if errors.As(err, &rev) {
		return rev, true
	}
	return nil, false
}

// UnpackRevert decodes revert return data against the token and factory
// error tables. ok is false when the data does not match a declared error.
func UnpackRevert(data []byte) (*RevertError, bool) {
	if len(data) < 4 {
		return nil, false
	}
	for _, a := range []*abi.ABI{&TokenABI, &FactoryABI} {
		for name, abiErr := range a.Errors {
			if !bytes.Equal(abiErr.ID.Bytes()[:4], data[:4]) {
				continue
			}
			unpacked, err := abiErr.Unpack(data)
			if err != nil {
				return nil, false
			}
			args, _ := unpacked.([]any)
			return &RevertError{Name: name, Args: args}, true
		}
	}
	return nil, false
}
