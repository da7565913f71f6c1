/*
Package host provides a reference implementation of the cooperative,
tick-driven runtime side of the adapter: a poll-driven action manager and the
durable per-invocation storage frame.

The Manager owns registered operations exclusively. Its Tick method is the
host's discrete advancement point: it polls every registered action in
registration order, removes the ones that finished, and then runs their
scheduled continuations. Tick (and everything it calls into) runs on a single
goroutine; the manager never runs two of its own operations concurrently.

The Frame is the host's durable per-invocation storage block. Output slots
allocated from it are guaranteed valid until the operation completes, which
is what makes deferred writes at poll time safe.
*/
package host
