package services

import (
	"context"
	"errors"
	"testing"

	"github.com/vermaanurag1532/Restro-sub000/clients"
	"github.com/vermaanurag1532/Restro-sub000/entity"
	"github.com/vermaanurag1532/Restro-sub000/repository"

	"github.com/stretchr/testify/require"
)

type fakeDispatcher struct {
	err  error
	sent []clients.DispatchRequest
}

func (f *fakeDispatcher) Dispatch(ctx context.Context, req clients.DispatchRequest) error {
	f.sent = append(f.sent, req)
	return f.err
}

type recordingNotifier struct {
	calls []*entity.RobotCall
}

func (n *recordingNotifier) BroadcastCall(call *entity.RobotCall) {
	n.calls = append(n.calls, call)
}

func newRobotService(t *testing.T, dispatcher Dispatcher, notifier CallNotifier) *RobotService {
	t.Helper()
	db := newTestDB(t, &entity.Robot{}, &entity.RobotCall{})
	return NewRobotService(db, repository.NewRobotRepository(db), dispatcher, notifier)
}

func TestRobotCallDispatchesAndBroadcasts(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	notifier := &recordingNotifier{}
	svc := newRobotService(t, dispatcher, notifier)

	call, err := svc.Call(context.Background(), &RobotCallReq{
		RestaurantID: "restro-1",
		TableNo:      4,
		CustomerID:   "CUSTOMER-1",
	})
	require.NoError(t, err)
	require.Equal(t, "CALL-1", call.CallID)
	require.Equal(t, "dispatched", call.Status)

	require.Len(t, dispatcher.sent, 1)
	require.Equal(t, "CALL-1", dispatcher.sent[0].CallID)
	require.Equal(t, 4, dispatcher.sent[0].TableNo)

	require.Len(t, notifier.calls, 1)
	require.Equal(t, "dispatched", notifier.calls[0].Status)

	stored, err := svc.GetCall("CALL-1")
	require.NoError(t, err)
	require.Equal(t, "dispatched", stored.Status)
}

func TestRobotCallSurvivesFailedDispatch(t *testing.T) {
	dispatcher := &fakeDispatcher{err: errors.New("robot service down")}
	notifier := &recordingNotifier{}
	svc := newRobotService(t, dispatcher, notifier)

	call, err := svc.Call(context.Background(), &RobotCallReq{
		RestaurantID: "restro-1",
		TableNo:      4,
		CustomerID:   "CUSTOMER-1",
	})
	require.NoError(t, err)
	require.Equal(t, "failed", call.Status)

	// The row is kept so the client can retry.
	stored, err := svc.GetCall(call.CallID)
	require.NoError(t, err)
	require.Equal(t, "failed", stored.Status)
}

func TestRobotCallStatusCallback(t *testing.T) {
	dispatcher := &fakeDispatcher{}
	notifier := &recordingNotifier{}
	svc := newRobotService(t, dispatcher, notifier)

	call, err := svc.Call(context.Background(), &RobotCallReq{
		RestaurantID: "restro-1",
		TableNo:      4,
		CustomerID:   "CUSTOMER-1",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateCallStatus(call.CallID, "completed")
	require.NoError(t, err)
	require.Equal(t, "completed", updated.Status)
	require.Len(t, notifier.calls, 2)

	_, err = svc.UpdateCallStatus("CALL-404", "completed")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = svc.UpdateCallStatus(call.CallID, "")
	require.ErrorIs(t, err, ErrValidation)
}
