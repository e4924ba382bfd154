package services_test

import (
	"learnvilla/models"
	"learnvilla/services"
	"learnvilla/session"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestAuthenticateUser(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "Asha", "asha@example.com", "correct-horse-1")

	sess, err := services.Authenticate(db, "asha@example.com", "correct-horse-1")
	assert.NoError(t, err)
	assert.Equal(t, session.RoleUser, sess.Role)
	assert.Equal(t, user.ID, sess.SubjectID)
}

func TestAuthenticateAdmin(t *testing.T) {
	db := newTestDB(t)
	admin := createAdmin(t, db, "root", "admin-secret-1")

	sess, err := services.Authenticate(db, "root", "admin-secret-1")
	assert.NoError(t, err)
	assert.Equal(t, session.RoleAdmin, sess.Role)
	assert.Equal(t, admin.ID, sess.SubjectID)
}

// An identifier matching both an admin username and a user email yields the
// admin session: the admin table is checked first.
func TestAuthenticateAdminTakesPriority(t *testing.T) {
	db := newTestDB(t)
	admin := createAdmin(t, db, "admin", "admin-password")
	createUser(t, db, "Impostor", "admin", "user-password-1")

	sess, err := services.Authenticate(db, "admin", "admin-password")
	assert.NoError(t, err)
	assert.Equal(t, session.RoleAdmin, sess.Role)
	assert.Equal(t, admin.ID, sess.SubjectID)
}

// An admin-username match with the wrong password must not fall through to
// the user table.
func TestAuthenticateAdminMatchDoesNotFallThrough(t *testing.T) {
	db := newTestDB(t)
	createAdmin(t, db, "admin", "admin-password")
	createUser(t, db, "Impostor", "admin", "user-password-1")

	_, err := services.Authenticate(db, "admin", "user-password-1")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

// Unknown account and wrong password return the same error so responses
// never leak whether an account exists.
func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	db := newTestDB(t)
	createUser(t, db, "Asha", "asha@example.com", "correct-horse-1")

	_, wrongPassword := services.Authenticate(db, "asha@example.com", "wrong")
	_, unknownAccount := services.Authenticate(db, "nobody@example.com", "whatever")

	assert.ErrorIs(t, wrongPassword, services.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownAccount, services.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownAccount)
}

func TestRegister(t *testing.T) {
	db := newTestDB(t)

	sess, err := services.Register(db, "Asha", "asha@example.com", "correct-horse-1")
	assert.NoError(t, err)
	assert.Equal(t, session.RoleUser, sess.Role)
	assert.NotZero(t, sess.SubjectID)

	// The stored password is a hash that verifies against the plaintext.
	var user models.User
	assert.NoError(t, db.First(&user, sess.SubjectID).Error)
	assert.NotEqual(t, "correct-horse-1", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("correct-horse-1")))

	// Registration never creates an admin account.
	var adminCount int64
	db.Model(&models.AdminAccount{}).Count(&adminCount)
	assert.Zero(t, adminCount)
}

func TestRegisterRejectsEmptyFields(t *testing.T) {
	db := newTestDB(t)

	cases := [][3]string{
		{"", "asha@example.com", "correct-horse-1"},
		{"Asha", "", "correct-horse-1"},
		{"Asha", "asha@example.com", ""},
	}
	for _, tc := range cases {
		_, err := services.Register(db, tc[0], tc[1], tc[2])
		assert.ErrorIs(t, err, services.ErrValidation)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	createUser(t, db, "Asha", "asha@example.com", "correct-horse-1")

	_, err := services.Register(db, "Other", "asha@example.com", "different-pass-9")
	assert.ErrorIs(t, err, services.ErrEmailTaken)
}
