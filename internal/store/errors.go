package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email is already stored.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup expected to match a user
	// record finds none.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrRatingAlreadyExists is returned when the caller already rated the
	// parking lot.
	ErrRatingAlreadyExists = errors.New("rating already exists")

	// ErrRatingNotFound is returned when no rating carries the requested id.
	ErrRatingNotFound = errors.New("rating was not found")

	// ErrParkingLotNotFound is returned when no parking lot carries the
	// requested p_id.
	ErrParkingLotNotFound = errors.New("parking lot was not found")

	// ErrParkingLotAlreadyExists is returned when another lot already uses
	// the requested name.
	ErrParkingLotAlreadyExists = errors.New("parking lot already exists")
)

// ErrPersistingCollection is returned (wrapped) when a collection file could
// not be written. The in-memory collection is left as it was before the
// failed mutation.
var ErrPersistingCollection = errors.New("failed to persist collection")
