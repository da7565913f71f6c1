/*
Package session implements the session/configuration collaborator: the
synchronous, instance-handle-based library whose long-latency calls the
latent adapter runs off the host goroutine.

A Manager instance loads client settings from a generated YAML config file,
answers per-feature settings-loaded queries, reloads settings from a path or
from in-memory contents, and stores session tokens through a pluggable
TokenStore (in-memory by default, Redis-backed optionally).

The async variants in this package wrap each call as a latent operation so a
tick-driven host can invoke them without blocking; ReloadConfigAsync streams
one partial result per feature section as it is applied.
*/
package session
