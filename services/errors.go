package services

// ServiceError is a client-visible failure kind. Detailed messages wrap
// one of these with fmt.Errorf("%w: ...").
type ServiceError string

func (e ServiceError) Error() string { return string(e) }

const (
	ErrValidation         ServiceError = "validation failed"
	ErrAlreadyExists      ServiceError = "invitation already exists for this user"
	ErrNotFound           ServiceError = "invitation not found"
	ErrNoFields           ServiceError = "no fields to update"
	ErrDuplicateRSVP      ServiceError = "you have already responded to this invitation"
	ErrUnauthorized       ServiceError = "unauthorized"
	ErrInternal           ServiceError = "internal error"
	ErrEmailTaken         ServiceError = "email is already registered"
	ErrInvalidCredentials ServiceError = "invalid email or password"
	ErrFileNotFound       ServiceError = "file not found"
)
