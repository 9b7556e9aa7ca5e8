package models

// PreferredFactor is the ranking criterion a user picks at registration.
// It selects which precomputed ai_recommend_score_* field of a parking lot
// is used as the recommendation score.
type PreferredFactor string

const (
	FactorFee        PreferredFactor = "FEE"
	FactorDistance   PreferredFactor = "DISTANCE"
	FactorRating     PreferredFactor = "RATING"
	FactorCongestion PreferredFactor = "CONGESTION"
)

// PreferredFactors lists every accepted factor in a stable order.
var PreferredFactors = []PreferredFactor{FactorFee, FactorDistance, FactorRating, FactorCongestion}

// Valid reports whether f is one of the known factors.
func (f PreferredFactor) Valid() bool {
	for _, known := range PreferredFactors {
		if f == known {
			return true
		}
	}
	return false
}

// User is an account record as persisted in the users collection.
//
// Password holds a bcrypt hash for every record written by this server.
// It must never leave the process: use Profile to build a response.
type User struct {
	ID              int64           `json:"id"`
	Email           string          `json:"email"`
	Password        string          `json:"password"`
	Nickname        string          `json:"nickname"`
	PreferredFactor PreferredFactor `json:"preferred_factor"`

	// JoinedAt is the local calendar date of registration, "YYYY-MM-DD".
	JoinedAt string `json:"joined_at"`
}

// Profile returns the public projection of the user without credentials.
func (u User) Profile() UserProfile {
	return UserProfile{
		ID:              u.ID,
		Email:           u.Email,
		Nickname:        u.Nickname,
		PreferredFactor: u.PreferredFactor,
		JoinedAt:        u.JoinedAt,
	}
}

// UserProfile is the user representation returned by profile and admin
// endpoints.
type UserProfile struct {
	ID              int64           `json:"id"`
	Email           string          `json:"email"`
	Nickname        string          `json:"nickname"`
	PreferredFactor PreferredFactor `json:"preferred_factor"`
	JoinedAt        string          `json:"joined_at"`
}

// LoginResult is the payload returned by a successful login.
type LoginResult struct {
	Email           string          `json:"email"`
	Nickname        string          `json:"nickname"`
	PreferredFactor PreferredFactor `json:"preferred_factor"`
}

// ProfileUpdate carries the optional fields of a profile patch.
// Empty values are left untouched.
type ProfileUpdate struct {
	Nickname        string          `json:"nickname"`
	PreferredFactor PreferredFactor `json:"preferred_factor" validate:"omitempty,oneof=FEE DISTANCE RATING CONGESTION"`
}
