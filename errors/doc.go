/*
Package errors provides semantic error types for the shopstore data layer.

The package defines the failure kinds the access layer can surface, with
specific types that can be checked using the standard errors.Is() function
or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound           = errors.New("record not found")
	    ErrAlreadyExists      = errors.New("record already exists")
	    ErrConditionFailed    = errors.New("condition check failed")
	    ErrIncorrectOwner     = errors.New("incorrect owner")
	    ErrNoUpdateData       = errors.New("no update data")
	    ErrSchemaMismatch     = errors.New("schema mismatch")
	    ErrMissingIdentifier  = errors.New("missing key identifier")
	    ErrStorageUnavailable = errors.New("storage unavailable")
	)

Usage:

	shop, err := svc.GetShop(ctx, shopUUID)
	if err != nil {
	    if errors.IsNotFound(err) {
	        // map to a 404 at the route layer
	    }
	    return nil, err
	}

	// Create typed errors
	err := errors.NewNotFoundError("shop", "shop", "a1b2")
	err := errors.NewIncorrectOwnerError("shop", userUUID)

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
ErrStorageUnavailable is the only retryable kind; the access layer never
retries internally, so callers decide.
*/
package errors
