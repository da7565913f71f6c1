package latent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexGronaCW/tickwork/pkg/domain"
	"github.com/AlexGronaCW/tickwork/pkg/host"
)

func testOutputs(frame *host.Frame) Outputs[int] {
	return Outputs[int]{
		Status:  host.Alloc[domain.OperationResult](frame),
		Outcome: host.Alloc[domain.Outcome](frame),
		Result:  host.Alloc[int](frame),
	}
}

func TestLaunch_RegistrationFailureAbortsLaunch(t *testing.T) {
	mgr := &captureManager{err: domain.ErrDuplicateOperation}
	frame := host.NewFrame()

	started := make(chan struct{})
	op, err := Launch(mgr, frame, "test", "req", testOutputs(frame), func(st *State[int]) {
		close(started)
	})

	require.ErrorIs(t, err, domain.ErrDuplicateOperation)
	assert.Nil(t, op)

	select {
	case <-started:
		t.Fatal("worker must not start when registration fails")
	default:
	}
}

func TestLaunch_GeneratesUniqueOperationIDs(t *testing.T) {
	mgr := &captureManager{}
	frame := host.NewFrame()
	outputs := testOutputs(frame)

	work := func(st *State[int]) { st.SetStatus(domain.Success()) }

	a, err := Launch(mgr, frame, "test", "req", outputs, work)
	require.NoError(t, err)
	b, err := Launch(mgr, frame, "test", "req", outputs, work)
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestLaunch_WithOperationID(t *testing.T) {
	mgr := &captureManager{}
	frame := host.NewFrame()

	op, err := Launch(mgr, frame, "test", "req", testOutputs(frame),
		func(st *State[int]) { st.SetStatus(domain.Success()) },
		WithOperationID[string, int]("fixed-id"),
	)
	require.NoError(t, err)
	assert.Equal(t, "fixed-id", op.ID())
}

func TestLaunch_IgnoredOutputsLandInDiscardSlot(t *testing.T) {
	mgr := &captureManager{}
	frame := host.NewFrame()
	status := host.Alloc[domain.OperationResult](frame)

	// Outcome and Result are ignored by the caller.
	op, err := Launch(mgr, frame, "test", "req",
		Outputs[int]{Status: status},
		func(st *State[int]) {
			st.SetResult(99)
			st.SetStatus(domain.Success())
		})
	require.NoError(t, err)
	waitDone(t, op)

	mgr.action.Poll(&testSink{})

	assert.True(t, status.OK())
	assert.Equal(t, 99, *DiscardSlot[int]())
}

func TestLaunch_WorkerPanicBecomesWorkerFailed(t *testing.T) {
	mgr := &captureManager{}
	frame := host.NewFrame()
	outputs := testOutputs(frame)

	op, err := Launch(mgr, frame, "test", "req", outputs, func(st *State[int]) {
		panic("worker exploded")
	})
	require.NoError(t, err)
	waitDone(t, op)

	sink := &testSink{}
	mgr.action.Poll(sink)

	require.Equal(t, 1, sink.finished)
	assert.Equal(t, domain.StatusWorkerFailed, outputs.Status.Code)
	assert.Contains(t, outputs.Status.Message, "worker exploded")
	assert.Equal(t, domain.OutcomeFailure, *outputs.Outcome)
}

func TestLaunch_ContinuationPassedToSink(t *testing.T) {
	mgr := &captureManager{}
	frame := host.NewFrame()

	ran := false
	op, err := Launch(mgr, frame, "test", "req", testOutputs(frame),
		func(st *State[int]) { st.SetStatus(domain.Success()) },
		WithContinuation[string, int](func() { ran = true }),
	)
	require.NoError(t, err)
	waitDone(t, op)

	sink := &testSink{}
	mgr.action.Poll(sink)

	require.Len(t, sink.continuations, 1)
	require.NotNil(t, sink.continuations[0])
	sink.continuations[0]()
	assert.True(t, ran)
}
