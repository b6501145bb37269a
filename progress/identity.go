package progress

import "strconv"

// Identity keys all progress data. Exactly one of UserID / SessionID is
// set: UserID for an authenticated user, SessionID for a guest whose id
// lives only in the server-side session.
type Identity struct {
	UserID    uint
	SessionID string
}

// ForUser returns an authenticated identity.
func ForUser(userID uint) Identity {
	return Identity{UserID: userID}
}

// ForSession returns a guest identity.
func ForSession(sessionID string) Identity {
	return Identity{SessionID: sessionID}
}

// IsGuest reports whether this identity belongs to an anonymous session.
func (i Identity) IsGuest() bool {
	return i.UserID == 0
}

// CacheKey derives the attempt-cache key. The user: / session: prefixes
// keep the two id spaces from ever colliding.
func (i Identity) CacheKey() string {
	if i.UserID != 0 {
		return "user:" + strconv.FormatUint(uint64(i.UserID), 10)
	}
	return "session:" + i.SessionID
}
