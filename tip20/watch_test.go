package tip20

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchTransfersQueryAndDecoding(t *testing.T) {
	fc := &fakeClient{watchedLogs: []types.Log{
		*transferLog(t, testToken, testAccount, testOther, big.NewInt(11)),
		*transferLog(t, testToken, testOther, testAccount, big.NewInt(22)),
	}}

	var got []TransferEvent
	unsubscribe, err := WatchTransfers(context.Background(), fc, WatchTransfersOptions{
		Token:   testToken,
		OnEvent: func(ev TransferEvent) { got = append(got, ev) },
	})
	require.NoError(t, err)
	defer unsubscribe()

	assert.Equal(t, testToken.Address(), fc.watchQuery.Address)
	assert.Equal(t, []common.Hash{TokenABI.Events["Transfer"].ID}, fc.watchQuery.Topics)

	require.Len(t, got, 2)
	assert.Equal(t, big.NewInt(11), got[0].Amount)
	assert.Equal(t, big.NewInt(22), got[1].Amount)
}

func TestWatchTransfersReportsDecodeErrors(t *testing.T) {
	// A log with the wrong signature cannot decode as Transfer.
	bad := makeLog(t, &TokenABI, testToken.Address(), "PauseStateUpdated", nil, true)
	fc := &fakeClient{watchedLogs: []types.Log{*bad}}

	var events int
	var errs []error
	unsubscribe, err := WatchTransfers(context.Background(), fc, WatchTransfersOptions{
		Token:   testToken,
		OnEvent: func(TransferEvent) { events++ },
		OnError: func(e error) { errs = append(errs, e) },
	})
	require.NoError(t, err)
	defer unsubscribe()

	assert.Zero(t, events)
	assert.Len(t, errs, 1)
}

func TestWatchApprovals(t *testing.T) {
	fc := &fakeClient{watchedLogs: []types.Log{
		*makeLog(t, &TokenABI, testToken.Address(), "Approval",
			[]common.Hash{addrTopic(testAccount), addrTopic(testOther)}, big.NewInt(5)),
	}}

	var got []ApprovalEvent
	unsubscribe, err := WatchApprovals(context.Background(), fc, WatchApprovalsOptions{
		Token:   testToken,
		OnEvent: func(ev ApprovalEvent) { got = append(got, ev) },
	})
	require.NoError(t, err)
	defer unsubscribe()

	assert.Equal(t, []common.Hash{TokenABI.Events["Approval"].ID}, fc.watchQuery.Topics)
	require.Len(t, got, 1)
	assert.Equal(t, testOther, got[0].Spender)
}

func TestWatchRolesDerivesChangeType(t *testing.T) {
	fc := &fakeClient{watchedLogs: []types.Log{
		*roleLog(t, testToken, RoleMinter, testOther, testAccount, true),
		*roleLog(t, testToken, RoleMinter, testOther, testAccount, false),
	}}

	var got []RoleChange
	unsubscribe, err := WatchRoles(context.Background(), fc, WatchRolesOptions{
		Token:   testToken,
		OnEvent: func(ev RoleChange) { got = append(got, ev) },
	})
	require.NoError(t, err)
	defer unsubscribe()

	require.Len(t, got, 2)
	assert.Equal(t, RoleChangeGranted, got[0].Type)
	assert.Equal(t, RoleChangeRevoked, got[1].Type)
	assert.Equal(t, RoleMinter, got[0].Role)
}

func TestWatchPauseState(t *testing.T) {
	fc := &fakeClient{watchedLogs: []types.Log{
		*makeLog(t, &TokenABI, testToken.Address(), "PauseStateUpdated", nil, true),
	}}

	var got []PauseStateEvent
	unsubscribe, err := WatchPauseState(context.Background(), fc, WatchPauseStateOptions{
		Token:   testToken,
		OnEvent: func(ev PauseStateEvent) { got = append(got, ev) },
	})
	require.NoError(t, err)
	defer unsubscribe()

	require.Len(t, got, 1)
	assert.True(t, got[0].Paused)
}

func TestWatchTokenCreatedTargetsFactory(t *testing.T) {
	newToken := common.HexToAddress("0x20C0000000000000000000000000000000000005")
	fc := &fakeClient{watchedLogs: []types.Log{
		*tokenCreatedLog(t, 5, newToken, testAccount),
	}}

	var got []TokenCreatedEvent
	unsubscribe, err := WatchTokenCreated(context.Background(), fc, WatchTokenCreatedOptions{
		OnEvent: func(ev TokenCreatedEvent) { got = append(got, ev) },
	})
	require.NoError(t, err)
	defer unsubscribe()

	assert.Equal(t, FactoryAddress, fc.watchQuery.Address)
	assert.Equal(t, []common.Hash{FactoryABI.Events["TokenCreated"].ID}, fc.watchQuery.Topics)
	require.Len(t, got, 1)
	assert.Equal(t, uint64(5), got[0].TokenId)
}
