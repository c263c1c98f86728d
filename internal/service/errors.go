package service

// The error types below let the HTTP layer pick a status code without
// matching on error strings. Anything else coming out of the service is
// treated as a storage failure and never shown to the client.

// ValidationError reports malformed or missing input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ConflictError reports a uniqueness violation.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

// AuthError reports a missing, invalid, or expired credential.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

// AuthzError reports an authenticated caller with an insufficient role.
type AuthzError struct {
	Message string
}

func (e *AuthzError) Error() string { return e.Message }
