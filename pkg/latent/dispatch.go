package latent

// Observer receives streamed partial results for one operation. It is always
// invoked on the host goroutine during a poll, never from the worker. The
// final call per operation carries final=true; with partials [a,b,c] the
// observer sees (req,a,false), (req,b,false), (req,c,true), and with no
// partials at all it sees a single (req, zero, true) call.
type Observer[Req, Res any] func(request Req, partial Res, final bool)

// dispatcher drains the partial queue into the observer. Constructed in one
// of two modes: with an observer it owns the delivery guarantees, without one
// every call is a no-op and no queue exists to drain.
type dispatcher[Req, Res any] struct {
	observer  Observer[Req, Res]
	request   Req
	delivered int
}

// drain pumps all currently queued partials to the observer in FIFO order.
// On the completion poll (workerDone) the last drained entry is flagged
// final; if nothing was drained at all, one synthetic zero-value final call
// is made so the terminal notification is delivered exactly once regardless
// of how many partials the worker produced.
func (d *dispatcher[Req, Res]) drain(st *State[Res], workerDone bool) {
	if d.observer == nil {
		return
	}

	finalSent := false
	for {
		v, ok := st.queue.pop()
		if !ok {
			break
		}
		// Before completion the producer may still be appending, so the
		// emptiness probe would race; the final flag is only computed once
		// the worker has finished and the queue is quiescent.
		final := workerDone && st.queue.empty()
		finalSent = finalSent || final
		d.observer(d.request, v, final)
		d.delivered++
	}

	if workerDone && !finalSent {
		var zero Res
		d.observer(d.request, zero, true)
	}
}
