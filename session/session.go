package session

// Session roles
const (
	RoleAnonymous = "ANONYMOUS"
	RoleUser      = "USER"
	RoleAdmin     = "ADMIN"
)

// Session identifies the caller of a core operation. It is an explicit value
// passed into every operation that needs it; there is no ambient session
// state. SubjectID is zero for anonymous sessions.
type Session struct {
	Role      string `json:"role"`
	SubjectID uint   `json:"subject_id"`
}

// Anonymous returns the session of an unauthenticated caller.
func Anonymous() Session {
	return Session{Role: RoleAnonymous}
}

// ForUser returns a user session for the given user id.
func ForUser(userID uint) Session {
	return Session{Role: RoleUser, SubjectID: userID}
}

// ForAdmin returns an admin session for the given admin account id.
func ForAdmin(adminID uint) Session {
	return Session{Role: RoleAdmin, SubjectID: adminID}
}

func (s Session) IsAnonymous() bool {
	return s.Role != RoleUser && s.Role != RoleAdmin
}

func (s Session) IsUser() bool {
	return s.Role == RoleUser
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}
