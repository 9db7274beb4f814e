// Package tip20 is a typed client layer for the TIP20 token standard.
//
// Every token operation comes in three forms: a pure call builder
// (TransferCall, ApproveCall, …) producing a self-describing Call
// descriptor, an action function (Transfer, Approve, …) that broadcasts
// the call through a Client and returns the transaction hash, and a Sync
// variant (TransferSync, …) that waits for inclusion and decodes the
// operation's event(s) from the receipt logs. Watch functions subscribe
// to live event streams. All chain-side semantics — balances, roles,
// pause state, permit verification, the supply cap — live in the
// contract; this package only shapes parameters, encodes calls, and
// decodes logs.
package tip20

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// TokenABI is the parsed interface of a TIP20 token contract. It is
// immutable and shared by every operation in this package; it must match
// the deployed contract exactly or encoding and log matching will be wrong.
var TokenABI = mustParseABI(tokenABIJSON)

// FactoryABI is the parsed interface of the TIP20 token factory predeploy.
var FactoryABI = mustParseABI(factoryABIJSON)

func mustParseABI(s string) abi.ABI {
	a, err := abi.JSON(strings.NewReader(s))
	if err != nil {
		panic("tip20: bad ABI constant: " + err.Error())
	}
	return a
}

const tokenABIJSON = `[
  {"type":"function","name":"name","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
  {"type":"function","name":"symbol","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
  {"type":"function","name":"decimals","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint8"}]},
  {"type":"function","name":"currency","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"string"}]},
  {"type":"function","name":"totalSupply","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"supplyCap","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"paused","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"transferPolicyId","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint64"}]},
  {"type":"function","name":"balanceOf","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"allowance","stateMutability":"view","inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"nonces","stateMutability":"view","inputs":[{"name":"owner","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"hasRole","stateMutability":"view","inputs":[{"name":"role","type":"bytes32"},{"name":"account","type":"address"}],"outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"getRoleAdmin","stateMutability":"view","inputs":[{"name":"role","type":"bytes32"}],"outputs":[{"name":"","type":"bytes32"}]},

  {"type":"function","name":"transfer","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"transferWithMemo","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"},{"name":"memo","type":"bytes32"}],"outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"transferFrom","stateMutability":"nonpayable","inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"transferFromWithMemo","stateMutability":"nonpayable","inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"amount","type":"uint256"},{"name":"memo","type":"bytes32"}],"outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"approve","stateMutability":"nonpayable","inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"burn","stateMutability":"nonpayable","inputs":[{"name":"amount","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"burnBlocked","stateMutability":"nonpayable","inputs":[{"name":"from","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"pause","stateMutability":"nonpayable","inputs":[],"outputs":[]},
  {"type":"function","name":"unpause","stateMutability":"nonpayable","inputs":[],"outputs":[]},
  {"type":"function","name":"permit","stateMutability":"nonpayable","inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"},{"name":"value","type":"uint256"},{"name":"deadline","type":"uint256"},{"name":"v","type":"uint8"},{"name":"r","type":"bytes32"},{"name":"s","type":"bytes32"}],"outputs":[]},
  {"type":"function","name":"grantRoles","stateMutability":"nonpayable","inputs":[{"name":"account","type":"address"},{"name":"roles","type":"bytes32[]"}],"outputs":[]},
  {"type":"function","name":"revokeRoles","stateMutability":"nonpayable","inputs":[{"name":"account","type":"address"},{"name":"roles","type":"bytes32[]"}],"outputs":[]},
  {"type":"function","name":"renounceRoles","stateMutability":"nonpayable","inputs":[{"name":"roles","type":"bytes32[]"}],"outputs":[]},
  {"type":"function","name":"setRoleAdmin","stateMutability":"nonpayable","inputs":[{"name":"role","type":"bytes32"},{"name":"adminRole","type":"bytes32"}],"outputs":[]},
  {"type":"function","name":"setSupplyCap","stateMutability":"nonpayable","inputs":[{"name":"cap","type":"uint256"}],"outputs":[]},
  {"type":"function","name":"changeTransferPolicy","stateMutability":"nonpayable","inputs":[{"name":"policyId","type":"uint64"}],"outputs":[]},

  {"type":"event","name":"Transfer","anonymous":false,"inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"amount","type":"uint256","indexed":false}]},
  {"type":"event","name":"Approval","anonymous":false,"inputs":[{"name":"owner","type":"address","indexed":true},{"name":"spender","type":"address","indexed":true},{"name":"amount","type":"uint256","indexed":false}]},
  {"type":"event","name":"RoleMembershipUpdated","anonymous":false,"inputs":[{"name":"role","type":"bytes32","indexed":true},{"name":"account","type":"address","indexed":true},{"name":"sender","type":"address","indexed":true},{"name":"hasRole","type":"bool","indexed":false}]},
  {"type":"event","name":"RoleAdminUpdated","anonymous":false,"inputs":[{"name":"role","type":"bytes32","indexed":true},{"name":"adminRole","type":"bytes32","indexed":true},{"name":"sender","type":"address","indexed":false}]},
  {"type":"event","name":"PauseStateUpdated","anonymous":false,"inputs":[{"name":"paused","type":"bool","indexed":false}]},
  {"type":"event","name":"SupplyCapUpdated","anonymous":false,"inputs":[{"name":"cap","type":"uint256","indexed":false}]},
  {"type":"event","name":"TransferPolicyUpdated","anonymous":false,"inputs":[{"name":"policyId","type":"uint64","indexed":false}]},

  {"type":"error","name":"ContractPaused","inputs":[]},
  {"type":"error","name":"Expired","inputs":[]},
  {"type":"error","name":"InsufficientAllowance","inputs":[]},
  {"type":"error","name":"InsufficientBalance","inputs":[]},
  {"type":"error","name":"InvalidCurrency","inputs":[]},
  {"type":"error","name":"InvalidRecipient","inputs":[]},
  {"type":"error","name":"InvalidSignature","inputs":[]},
  {"type":"error","name":"PolicyForbids","inputs":[]},
  {"type":"error","name":"SupplyCapExceeded","inputs":[]},
  {"type":"error","name":"Unauthorized","inputs":[]}
]`

const factoryABIJSON = `[
  {"type":"function","name":"createToken","stateMutability":"nonpayable","inputs":[{"name":"name","type":"string"},{"name":"symbol","type":"string"},{"name":"decimals","type":"uint8"},{"name":"currency","type":"string"},{"name":"admin","type":"address"}],"outputs":[{"name":"tokenId","type":"uint64"},{"name":"token","type":"address"}]},
  {"type":"function","name":"tokenAddress","stateMutability":"view","inputs":[{"name":"tokenId","type":"uint64"}],"outputs":[{"name":"","type":"address"}]},
  {"type":"function","name":"tokenCount","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint64"}]},

  {"type":"event","name":"TokenCreated","anonymous":false,"inputs":[{"name":"tokenId","type":"uint64","indexed":true},{"name":"token","type":"address","indexed":true},{"name":"admin","type":"address","indexed":true},{"name":"name","type":"string","indexed":false},{"name":"symbol","type":"string","indexed":false},{"name":"decimals","type":"uint8","indexed":false},{"name":"currency","type":"string","indexed":false}]},

  {"type":"error","name":"InvalidCurrency","inputs":[]},
  {"type":"error","name":"Unauthorized","inputs":[]}
]`
