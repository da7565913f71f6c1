/*
Package latent implements long-running operations for cooperative,
tick-driven hosts.

A host that advances only at discrete poll points cannot block on a slow
call. This package bridges that gap: a Launch starts the blocking work on a
dedicated goroutine, registers a polling controller with the host's action
manager, and commits the final result into host-owned durable output slots
once the worker finishes, all without the host loop ever blocking, and
without deferred writes into storage whose lifetime has ended.

# Handoff protocol

Exactly two execution contexts exist per operation. The worker has exclusive
write access to the operation's result and status until it signals completion
(a closed channel, giving release/acquire ordering); the controller gains
exclusive read access after observing that signal. Streamed partial results
cross the boundary through a single-producer/single-consumer queue that is
created only when an observer was registered.

# Streaming guarantees

Partial results are delivered to the observer in FIFO enqueue order, each
exactly once. Exactly one call per operation carries final=true: the last
drained entry at completion, or a synthetic empty-result call when the
operation streamed nothing.

# Output safety

Hosts hand operations durable output slots allocated from a Frame. Resolve
classifies every destination once, at construction: a slot the frame owns is
written directly at commit time; anything else is redirected to a
process-wide discard slot, because writing a transient call-site artifact
after its frame is gone would corrupt memory. A missing or implausible frame
is a broken hosting contract and panics rather than degrading.
*/
package latent
