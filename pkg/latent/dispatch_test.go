package latent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type delivery struct {
	value int
	final bool
}

func collectObserver(got *[]delivery) Observer[string, int] {
	return func(req string, partial int, final bool) {
		*got = append(*got, delivery{value: partial, final: final})
	}
}

func TestPartialQueue_FIFO(t *testing.T) {
	q := &partialQueue[int]{}
	q.push(1)
	q.push(2)
	q.push(3)

	for _, want := range []int{1, 2, 3} {
		v, ok := q.pop()
		require.True(t, ok)
		assert.Equal(t, want, v)
	}

	_, ok := q.pop()
	assert.False(t, ok)
	assert.True(t, q.empty())
}

func TestDrain_FinalFlagOnLastPartial(t *testing.T) {
	var got []delivery
	d := dispatcher[string, int]{observer: collectObserver(&got), request: "req"}

	st := newState[int](true)
	st.Stream(1)
	st.Stream(2)
	st.Stream(3)
	st.finish()

	d.drain(st, true)

	require.Equal(t, []delivery{
		{value: 1, final: false},
		{value: 2, final: false},
		{value: 3, final: true},
	}, got)
	assert.Equal(t, 3, d.delivered)
}

func TestDrain_EmptyQueueGetsSyntheticFinal(t *testing.T) {
	var got []delivery
	d := dispatcher[string, int]{observer: collectObserver(&got), request: "req"}

	st := newState[int](true)
	st.finish()

	d.drain(st, true)

	require.Equal(t, []delivery{{value: 0, final: true}}, got)
	assert.Equal(t, 0, d.delivered)
}

func TestDrain_WhileRunningNeverFlagsFinal(t *testing.T) {
	var got []delivery
	d := dispatcher[string, int]{observer: collectObserver(&got), request: "req"}

	st := newState[int](true)
	st.Stream(7)
	st.Stream(8)

	d.drain(st, false)

	require.Equal(t, []delivery{
		{value: 7, final: false},
		{value: 8, final: false},
	}, got)

	// The worker streamed nothing else before finishing, so the terminal
	// notification is the synthetic zero-value call.
	st.finish()
	d.drain(st, true)
	require.Len(t, got, 3)
	assert.Equal(t, delivery{value: 0, final: true}, got[2])
}

func TestDrain_PartialsSplitAcrossPolls(t *testing.T) {
	var got []delivery
	d := dispatcher[string, int]{observer: collectObserver(&got), request: "req"}

	st := newState[int](true)
	st.Stream(1)
	d.drain(st, false)

	st.Stream(2)
	st.Stream(3)
	st.finish()
	d.drain(st, true)

	require.Equal(t, []delivery{
		{value: 1, final: false},
		{value: 2, final: false},
		{value: 3, final: true},
	}, got)
	assert.Equal(t, 3, d.delivered)
}

func TestDrain_NoObserverIsNoop(t *testing.T) {
	d := dispatcher[string, int]{}

	// Without an observer no queue exists either; drain must not touch it.
	st := newState[int](false)
	st.Stream(1)
	st.finish()

	d.drain(st, true)
	assert.Equal(t, 0, d.delivered)
}
