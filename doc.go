/*
Package tickwork lets a cooperative, tick-driven host run long, blocking
operations on dedicated goroutines without ever blocking its own loop.

It implements a "poll-driven latent operation" architecture: a worker
goroutine performs the blocking call and publishes partial and final
results through a shared handoff State, while a controller registered
with the host's Manager drains those results one poll at a time, always
on the host goroutine.

# Concept

The host owns a single loop that must never stall. Anything slow, a
network call, a config reload, a storage round trip, is launched as an
operation: the work runs elsewhere, and each Tick the host polls the
operation's controller. While the worker runs, polls flush streamed
partials to an observer. When the worker finishes, the final poll commits
the result, status, and outcome into durable output slots, fires the
completion continuation exactly once, and removes the operation.

# Key Guarantees

  - The host goroutine never blocks on a worker, and observers and
    continuations only ever run on the host goroutine.
  - Partial results arrive in the order the worker streamed them, and
    exactly one notification carries the terminal marker.
  - Output destinations are verified against the host's durable Frame;
    writes aimed at transient storage are diverted to a discard slot
    instead of corrupting memory that may be gone.

# Usage

Allocate output slots on the host, launch the operation, and keep
ticking until it completes.

	package main

	import (
		"fmt"
		"time"

		"github.com/AlexGronaCW/tickwork"
	)

	func main() {
		h := tickwork.NewHost()

		status := tickwork.Alloc[tickwork.OperationResult](h)
		outcome := tickwork.Alloc[tickwork.Outcome](h)
		result := tickwork.Alloc[string](h)

		op, err := tickwork.Launch(h, "demo", "request payload",
			tickwork.Outputs[string]{Status: status, Outcome: outcome, Result: result},
			func(st *tickwork.State[string]) {
				// Runs on its own goroutine; free to block.
				time.Sleep(200 * time.Millisecond)
				st.SetResult("done")
				st.SetStatus(tickwork.Success())
			},
		)
		if err != nil {
			panic(err)
		}

		// Main loop: poll until the operation commits.
		for h.Active() > 0 {
			h.Tick()
			time.Sleep(10 * time.Millisecond)
		}

		fmt.Println(op.ID(), *outcome, *result)
	}
*/
package tickwork
