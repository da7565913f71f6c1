/*
Package observability provides Prometheus instrumentation for the host
action manager.

Metrics attach through domain.LifecycleHooks, so the host core stays free of
any metrics dependency: construct a Metrics value, register it, and pass
Metrics.Hooks() to the manager.
*/
package observability
