/*
Package domain contains the core domain models for the tickwork adapter.

It defines the value types exchanged between the host, the latent-operation
controllers and the worker goroutines. This package is kept pure and free of
external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - OperationResult: the final status of one latent operation, produced once
    by its worker.
  - StatusCode: collaborator status codes; StatusSuccess is the canonical
    success sentinel used for all outcome classification.
  - Outcome: the success/failure branch indicator committed into host storage.
  - OperationEvent / LifecycleHooks: observability callbacks emitted by the
    host action manager.
*/
package domain
