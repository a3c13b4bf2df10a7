// Package errors provides the structured error type used across pvm-hub.
//
// Every layer speaks the same vocabulary:
//   - A Code (NotFound, InvalidArgument, Unavailable, ...) that maps to gRPC and HTTP statuses
//   - A user facing Message
//   - An optional Cause and free-form Meta for debugging
//
// # Basic Usage
//
//	err := errors.NotFoundf("preset %s not found", id)
//	err := errors.InvalidArgument("preset name cannot be empty").WithMeta("field", "name")
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := store.SaveAll(ctx, ns, records); err != nil {
//	    return errors.Wrap(err, "failed to save presets")
//	}
//
// # Domain conditions
//
// The item catalog and the equipment model raise two named conditions:
//
//	errors.CatalogUnavailable(cause)       // CodeUnavailable, retryable
//	errors.IndexOutOfRange(index, size)    // CodeOutOfRange, contract violation
//
// # Validation
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("title", input.Title, vb)
//	errors.ValidateRequired("boss", input.Boss, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Over gRPC
//
// ToGRPCError keeps Meta as status details (BadRequest for validation fields,
// RetryInfo for retryable failures, ErrorInfo for the rest) and FromGRPCError
// restores them, so a client can call ValidationFields and IsRetryable on what
// it received.
//
// # Layer guidelines
//
// Repositories return NotFound / InvalidArgument and wrap storage failures.
// Orchestrators validate input and check preconditions (delete confirmation).
// Handlers convert with ToGRPCError; the live workspace renders GetMessage to the user.
package errors
