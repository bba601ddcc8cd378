package store

// Error kinds reported by the store layer. Handlers never inspect database
// errors directly; everything crossing the store boundary is one of these or
// an opaque internal error.

// NotFoundError reports that a reference did not resolve.
type NotFoundError struct {
	Entity string // Course, Section, Lecture, Enrollment
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// ConflictError reports a unique-key collision (title, slug, or a duplicate
// enrollment for the same user and course).
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// ValidationError reports missing or malformed fields.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// AccessDeniedError reports an access-gate denial. Distinct from NotFoundError
// so the boundary can answer 403 rather than 404.
type AccessDeniedError struct {
	Message string
}

func (e *AccessDeniedError) Error() string {
	return e.Message
}
