package services

import "learnvilla/session"

// RequireAdmin gates administrative operations on session role. Anonymous
// callers get ErrUnauthenticated ("log in"), user sessions get ErrForbidden
// ("logged in but not allowed") — the two are deliberately distinct. Every
// mutating course/lesson operation and the admin stats read call this before
// touching the store.
func RequireAdmin(sess session.Session) error {
	if sess.IsAdmin() {
		return nil
	}
	if sess.IsUser() {
		return ErrForbidden
	}
	return ErrUnauthenticated
}
