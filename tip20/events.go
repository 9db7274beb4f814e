package tip20

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ErrEventNotFound is returned by single-event extractors when the receipt
// logs do not contain the expected event.
var ErrEventNotFound = errors.New("tip20: expected event not found in logs")

// unpackLog decodes one log into out: non-indexed fields from the data
// segment, indexed fields from the topics.
func unpackLog(a *abi.ABI, out any, name string, log types.Log) error {
	ev, ok := a.Events[name]
	if !ok {
		return fmt.Errorf("event %q not in ABI", name)
	}
	if len(log.Topics) == 0 || log.Topics[0] != ev.ID {
		return fmt.Errorf("log is not a %s event", name)
	}
	if len(log.Data) > 0 {
		if err := a.UnpackIntoInterface(out, name, log.Data); err != nil {
			return fmt.Errorf("decoding %s data: %w", name, err)
		}
	}
	var indexed abi.Arguments
	for _, arg := range ev.Inputs {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}
	if err := abi.ParseTopics(out, indexed, log.Topics[1:]); err != nil {
		return fmt.Errorf("decoding %s topics: %w", name, err)
	}
	return nil
}

// matchingLogs filters receipt logs down to those emitted by addr with the
// named event's signature, preserving input order.
func matchingLogs(a *abi.ABI, addr common.Address, name string, logs []*types.Log) []*types.Log {
	id := a.Events[name].ID
	var out []*types.Log
	for _, lg := range logs {
		if lg == nil || lg.Address != addr {
			continue
		}
		if len(lg.Topics) == 0 || lg.Topics[0] != id {
			continue
		}
		out = append(out, lg)
	}
	return out
}
