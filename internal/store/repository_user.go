package store

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-parking-mate/internal/logger"
	"github.com/MKhiriev/go-parking-mate/models"
)

// userRepository is the JSON-file implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of store interactions.
type userRepository struct {
	logger *logger.Logger
	store  *JSONStore
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// store and logger.
func NewUserRepository(store *JSONStore, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		store:  store,
		logger: logger,
	}
}

// CreateUser appends user with id = max existing id + 1 (1 on an empty
// collection).
//
// Error handling:
//   - email already stored → [ErrEmailAlreadyExists].
//   - file write failure → wrapped [ErrPersistingCollection].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)
	s := r.store

	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	var maxID int64
	for _, u := range s.users {
		if u.Email == user.Email {
			return models.User{}, ErrEmailAlreadyExists
		}
		maxID = max(maxID, u.ID)
	}
	user.ID = maxID + 1

	next := append(slices.Clone(s.users), user)
	if err := s.commitUsers(next); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error persisting users")
		return models.User{}, err
	}

	return user, nil
}

// FindUserByEmail returns the user with the given email or
// [ErrNoUserWasFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	s := r.store

	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrNoUserWasFound
}

func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	s := r.store

	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrNoUserWasFound
}

func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	s := r.store

	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	return slices.Clone(s.users), nil
}

// UpdateUser replaces the stored record whose email equals user.Email. The
// id and joined_at of the stored record are kept.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)
	s := r.store

	s.usersMu.Lock()
	defer s.usersMu.Unlock()

	i := slices.IndexFunc(s.users, func(u models.User) bool { return u.Email == user.Email })
	if i < 0 {
		return models.User{}, ErrNoUserWasFound
	}

	user.ID = s.users[i].ID
	user.JoinedAt = s.users[i].JoinedAt

	next := slices.Clone(s.users)
	next[i] = user
	if err := s.commitUsers(next); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error persisting users")
		return models.User{}, err
	}

	return user, nil
}

// DeleteUser removes the user and cascades to their bookmarks and ratings.
//
// Dependent collections are written first so that a failure part way never
// leaves records pointing at a user that no longer exists.
func (r *userRepository) DeleteUser(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)
	s := r.store

	s.usersMu.Lock()
	defer s.usersMu.Unlock()
	s.bookmarksMu.Lock()
	defer s.bookmarksMu.Unlock()
	s.ratingsMu.Lock()
	defer s.ratingsMu.Unlock()

	nextUsers := slices.DeleteFunc(slices.Clone(s.users), func(u models.User) bool { return u.Email == email })
	if len(nextUsers) == len(s.users) {
		return ErrNoUserWasFound
	}

	nextBookmarks := slices.DeleteFunc(slices.Clone(s.bookmarks), func(b models.Bookmark) bool { return b.Email == email })
	removedBookmarks := len(s.bookmarks) - len(nextBookmarks)
	if removedBookmarks > 0 {
		if err := s.commitBookmarks(nextBookmarks); err != nil {
			log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error persisting bookmarks")
			return err
		}
	}

	var ratedLots []int64
	nextRatings := slices.DeleteFunc(slices.Clone(s.ratings), func(rt models.Rating) bool {
		if rt.Email == email {
			ratedLots = append(ratedLots, rt.ParkingLotID)
			return true
		}
		return false
	})
	if len(ratedLots) > 0 {
		if err := s.commitRatings(nextRatings); err != nil {
			log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error persisting ratings")
			return err
		}
		if err := s.refreshAverages(ratedLots...); err != nil {
			log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error persisting parking lots")
			return err
		}
	}

	if err := s.commitUsers(nextUsers); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error persisting users")
		return err
	}

	log.Info().Str("email", email).
		Int("bookmarks_removed", removedBookmarks).
		Int("ratings_removed", len(ratedLots)).
		Msg("user deleted")

	return nil
}
