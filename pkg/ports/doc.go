/*
Package ports defines the driven ports (interfaces) for the tickwork adapter.

These interfaces decouple the latent-operation core from the hosting runtime
and from external implementations, allowing the same controllers to run under
the bundled reference host or any cooperative tick-driven environment.

# Key Interfaces

  - PollingAction / ResponseSink: the per-tick contract between the host's
    action manager and a registered operation.
  - ActionManager: registration of operations into the host poll set.
  - DurableFrame: host storage introspection for output-safety resolution.
  - TokenStore: persistence for session tokens (memory, Redis).
*/
package ports
