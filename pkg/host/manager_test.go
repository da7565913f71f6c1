package host_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexGronaCW/tickwork/pkg/domain"
	"github.com/AlexGronaCW/tickwork/pkg/host"
	"github.com/AlexGronaCW/tickwork/pkg/latent"
)

func newOutputs(frame *host.Frame) latent.Outputs[int] {
	return latent.Outputs[int]{
		Status:  host.Alloc[domain.OperationResult](frame),
		Outcome: host.Alloc[domain.Outcome](frame),
		Result:  host.Alloc[int](frame),
	}
}

func launchImmediate(t *testing.T, mgr *host.Manager, frame *host.Frame, owner string, value int, opts ...latent.Option[string, int]) *latent.Operation[string, int] {
	t.Helper()
	op, err := latent.Launch(mgr, frame, owner, "req", newOutputs(frame),
		func(st *latent.State[int]) {
			st.SetResult(value)
			st.SetStatus(domain.Success())
		}, opts...)
	require.NoError(t, err)
	return op
}

func waitDone(t *testing.T, op *latent.Operation[string, int]) {
	t.Helper()
	select {
	case <-op.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("worker did not finish in time")
	}
}

func TestManager_DuplicateRegistrationRejected(t *testing.T) {
	mgr := host.NewManager()
	frame := host.NewFrame()
	outputs := newOutputs(frame)

	release := make(chan struct{})
	defer close(release)
	work := func(st *latent.State[int]) {
		<-release
		st.SetStatus(domain.Success())
	}

	_, err := latent.Launch(mgr, frame, "owner", "req", outputs, work,
		latent.WithOperationID[string, int]("op-1"))
	require.NoError(t, err)

	_, err = latent.Launch(mgr, frame, "owner", "req", outputs, work,
		latent.WithOperationID[string, int]("op-1"))
	assert.ErrorIs(t, err, domain.ErrDuplicateOperation)

	// Same ID under a different owner is a different key.
	_, err = latent.Launch(mgr, frame, "other", "req", outputs, work,
		latent.WithOperationID[string, int]("op-1"))
	assert.NoError(t, err)

	assert.Equal(t, 2, mgr.Active())
}

func TestManager_TickCommitsFinishedOperations(t *testing.T) {
	mgr := host.NewManager()
	frame := host.NewFrame()
	outputs := newOutputs(frame)

	op, err := latent.Launch(mgr, frame, "owner", "req", outputs,
		func(st *latent.State[int]) {
			st.SetResult(42)
			st.SetStatus(domain.Success())
		})
	require.NoError(t, err)
	waitDone(t, op)

	require.Equal(t, 1, mgr.Active())
	mgr.Tick()

	assert.Zero(t, mgr.Active())
	assert.Equal(t, 42, *outputs.Result)
	assert.Equal(t, domain.OutcomeSuccess, *outputs.Outcome)

	// Further ticks on an empty manager are harmless.
	mgr.Tick()
}

func TestManager_PollsInRegistrationOrder(t *testing.T) {
	var polled []string
	mgr := host.NewManager(host.WithLifecycleHooks(domain.LifecycleHooks{
		OnOperationPoll: func(ev *domain.OperationEvent) {
			polled = append(polled, ev.Owner)
		},
	}))
	frame := host.NewFrame()

	release := make(chan struct{})
	defer close(release)
	work := func(st *latent.State[int]) {
		<-release
		st.SetStatus(domain.Success())
	}

	for _, owner := range []string{"first", "second", "third"} {
		_, err := latent.Launch(mgr, frame, owner, "req", newOutputs(frame), work)
		require.NoError(t, err)
	}

	mgr.Tick()
	assert.Equal(t, []string{"first", "second", "third"}, polled)
}

func TestManager_ContinuationRunsAfterRemoval(t *testing.T) {
	mgr := host.NewManager()
	frame := host.NewFrame()

	activeInContinuation := -1
	op := launchImmediate(t, mgr, frame, "owner", 1,
		latent.WithContinuation[string, int](func() {
			activeInContinuation = mgr.Active()
		}))
	waitDone(t, op)

	mgr.Tick()
	assert.Zero(t, activeInContinuation, "continuation must observe its operation as already removed")
}

func TestManager_ContinuationMayLaunchFollowUp(t *testing.T) {
	mgr := host.NewManager()
	frame := host.NewFrame()
	followUp := newOutputs(frame)

	var chained *latent.Operation[string, int]
	op := launchImmediate(t, mgr, frame, "owner", 1,
		latent.WithContinuation[string, int](func() {
			var err error
			chained, err = latent.Launch(mgr, frame, "owner", "req", followUp,
				func(st *latent.State[int]) {
					st.SetResult(2)
					st.SetStatus(domain.Success())
				})
			require.NoError(t, err)
		}))
	waitDone(t, op)

	mgr.Tick()
	require.NotNil(t, chained)
	waitDone(t, chained)

	mgr.Tick()
	assert.Zero(t, mgr.Active())
	assert.Equal(t, 2, *followUp.Result)
}

func TestManager_LifecycleHooks(t *testing.T) {
	var events []domain.EventType
	var finish *domain.OperationEvent
	mgr := host.NewManager(host.WithLifecycleHooks(domain.LifecycleHooks{
		OnOperationStart:  func(ev *domain.OperationEvent) { events = append(events, ev.Type) },
		OnOperationPoll:   func(ev *domain.OperationEvent) { events = append(events, ev.Type) },
		OnOperationFinish: func(ev *domain.OperationEvent) { events = append(events, ev.Type); finish = ev },
	}))
	frame := host.NewFrame()

	var got []int
	op, err := latent.Launch(mgr, frame, "owner", "req", newOutputs(frame),
		func(st *latent.State[int]) {
			st.Stream(10)
			st.SetResult(10)
			st.SetStatus(domain.Success())
		},
		latent.WithObserver[string, int](func(req string, partial int, final bool) {
			got = append(got, partial)
		}),
		latent.WithOperationID[string, int]("hooked"),
	)
	require.NoError(t, err)
	waitDone(t, op)

	mgr.Tick()

	require.Equal(t, []domain.EventType{
		domain.EventOperationStart,
		domain.EventOperationPoll,
		domain.EventOperationFinish,
	}, events)

	require.NotNil(t, finish)
	assert.Equal(t, "owner", finish.Owner)
	assert.Equal(t, "hooked", finish.OperationID)
	assert.Equal(t, domain.StatusSuccess, finish.Status)
	assert.Equal(t, domain.OutcomeSuccess, finish.Outcome)
	assert.Equal(t, 1, finish.Partials)
	assert.Greater(t, finish.Duration, time.Duration(0))
	assert.Equal(t, []int{10}, got)
}

func TestManager_OperationsSnapshot(t *testing.T) {
	mgr := host.NewManager()
	frame := host.NewFrame()

	release := make(chan struct{})
	defer close(release)
	_, err := latent.Launch(mgr, frame, "owner", "req", newOutputs(frame),
		func(st *latent.State[int]) {
			<-release
			st.SetStatus(domain.Success())
		},
		latent.WithOperationID[string, int]("snapshot-op"))
	require.NoError(t, err)

	ops := mgr.Operations()
	require.Len(t, ops, 1)
	assert.Equal(t, "owner", ops[0].Owner)
	assert.Equal(t, "snapshot-op", ops[0].OperationID)
	assert.False(t, ops[0].StartedAt.IsZero())
}

func TestManager_ShutdownAbandonsOperations(t *testing.T) {
	mgr := host.NewManager()
	frame := host.NewFrame()
	outputs := newOutputs(frame)

	release := make(chan struct{})
	op, err := latent.Launch(mgr, frame, "owner", "req", outputs,
		func(st *latent.State[int]) {
			<-release
			st.SetResult(99)
			st.SetStatus(domain.Success())
		})
	require.NoError(t, err)

	mgr.Shutdown()
	assert.Zero(t, mgr.Active())

	// The worker still runs to completion, but nothing polls it: the
	// durable outputs keep their zero values.
	close(release)
	waitDone(t, op)
	mgr.Tick()
	assert.Zero(t, *outputs.Result)

	// Registration after shutdown is rejected.
	_, err = latent.Launch(mgr, frame, "owner", "req", outputs,
		func(st *latent.State[int]) { st.SetStatus(domain.Success()) })
	assert.ErrorIs(t, err, domain.ErrManagerClosed)
}
