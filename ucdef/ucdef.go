// Package ucdef defines the use case contracts used across the application.
package ucdef

import "context"

// UserAction represents a synchronous business operation triggered by user
// interaction. It handles user-initiated requests through HTTP and returns
// an immediate response. These operations are exposed via API endpoints and
// require request validation and synchronous error handling.
//
// Type parameters:
//   - I: input data type (request payload)
//   - O: output data type (result of the operation)
type UserAction[I, O any] interface {
	// OperationID returns a unique identifier for the use case.
	OperationID() string

	// Execute executes the use case.
	Execute(ctx context.Context, in I) (O, error)
}
