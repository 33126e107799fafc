package store

import (
	"testing"

	"lumina/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUsers(t *testing.T, s *Store, users ...models.User) {
	t.Helper()
	require.NoError(t, s.KV.Set(KeyUsers, users))
}

func TestLoginRecordsSessionAndNotifiesOnce(t *testing.T) {
	s := newTestStore(t)
	seedUsers(t, s, models.User{Name: "Student User", Email: student, Role: models.RoleStudent, Password: "Student@123"})

	events, unsubscribe := s.Session.Subscribe()
	defer unsubscribe()

	user, err := s.Session.Login(student, "Student@123")
	require.NoError(t, err)

	// Exactly one notification, and the re-fetched user matches the login result
	require.Len(t, events, 1)
	<-events

	current, ok := s.Session.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, user, current)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	s := newTestStore(t)
	seedUsers(t, s, models.User{Name: "Student User", Email: student, Role: models.RoleStudent, Password: "Student@123"})

	_, err := s.Session.Login(student, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Session.Login("nobody@gmail.com", "Student@123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// A failed login leaves no session behind
	_, ok := s.Session.CurrentUser()
	assert.False(t, ok)
}

func TestLoginSeedCredentialFallback(t *testing.T) {
	s := newTestStore(t)

	// Legacy record without a stored password
	seedUsers(t, s, models.User{Name: "Student User", Email: student, Role: models.RoleStudent})

	_, err := s.Session.Login(student, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	user, err := s.Session.Login(student, "Student@123")
	require.NoError(t, err)
	assert.Equal(t, student, user.Email)
}

func TestLogoutClearsSessionAndNotifies(t *testing.T) {
	s := newTestStore(t)
	seedUsers(t, s, models.User{Name: "Student User", Email: student, Role: models.RoleStudent, Password: "Student@123"})

	_, err := s.Session.Login(student, "Student@123")
	require.NoError(t, err)

	events, unsubscribe := s.Session.Subscribe()
	defer unsubscribe()

	s.Session.Logout()

	require.Len(t, events, 1)
	_, ok := s.Session.CurrentUser()
	assert.False(t, ok)
}

func TestRegister(t *testing.T) {
	s := newTestStore(t)

	user, err := s.Session.Register(models.User{Name: "New Student", Email: "new@gmail.com", Role: models.RoleStudent, Password: "Secret@123"})
	require.NoError(t, err)
	assert.Equal(t, "new@gmail.com", user.Email)

	_, err = s.Session.Register(models.User{Name: "Again", Email: "new@gmail.com", Role: models.RoleStudent})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Session.Register(models.User{Name: "Sneaky", Email: "sneaky@gmail.com", Role: models.RoleAdmin})
	assert.ErrorIs(t, err, ErrInvalidRole)
	assert.Empty(t, s.Session.Users())
}

func TestUpdateUserEmailCollision(t *testing.T) {
	s := newTestStore(t)
	alice := models.User{Name: "Alice", Email: "alice@gmail.com", Role: models.RoleStudent, Password: "Alice@123"}
	bob := models.User{Name: "Bob", Email: "bob@gmail.com", Role: models.RoleStudent, Password: "Bob@123"}
	seedUsers(t, s, alice, bob)

	updated := alice
	updated.Email = "bob@gmail.com"
	err := s.Session.UpdateUser(updated, "alice@gmail.com")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// Both records are untouched
	storedAlice, ok := s.Session.FindUser("alice@gmail.com")
	require.True(t, ok)
	assert.Equal(t, alice, storedAlice)
	storedBob, ok := s.Session.FindUser("bob@gmail.com")
	require.True(t, ok)
	assert.Equal(t, bob, storedBob)
}

func TestUpdateUserPreservesStoredPassword(t *testing.T) {
	s := newTestStore(t)
	seedUsers(t, s, models.User{Name: "Alice", Email: "alice@gmail.com", Role: models.RoleStudent, Password: "Alice@123"})

	require.NoError(t, s.Session.UpdateUser(models.User{Name: "Alice Renamed", Email: "alice@gmail.com", Role: models.RoleStudent}, ""))

	stored, ok := s.Session.FindUser("alice@gmail.com")
	require.True(t, ok)
	assert.Equal(t, "Alice Renamed", stored.Name)
	assert.Equal(t, "Alice@123", stored.Password)
}

func TestUpdateUserRefreshesCurrentSession(t *testing.T) {
	s := newTestStore(t)
	seedUsers(t, s, models.User{Name: "Alice", Email: "alice@gmail.com", Role: models.RoleStudent, Password: "Alice@123"})

	_, err := s.Session.Login("alice@gmail.com", "Alice@123")
	require.NoError(t, err)

	events, unsubscribe := s.Session.Subscribe()
	defer unsubscribe()

	require.NoError(t, s.Session.UpdateUser(models.User{Name: "Alice", Email: "alice@new.com", Role: models.RoleStudent}, "alice@gmail.com"))

	require.Len(t, events, 1)
	current, ok := s.Session.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "alice@new.com", current.Email)
	assert.Equal(t, "Alice@123", current.Password)
}

func TestUpdateUserForOtherUserDoesNotNotify(t *testing.T) {
	s := newTestStore(t)
	seedUsers(t, s,
		models.User{Name: "Alice", Email: "alice@gmail.com", Role: models.RoleStudent, Password: "Alice@123"},
		models.User{Name: "Bob", Email: "bob@gmail.com", Role: models.RoleStudent, Password: "Bob@123"},
	)

	_, err := s.Session.Login("alice@gmail.com", "Alice@123")
	require.NoError(t, err)

	events, unsubscribe := s.Session.Subscribe()
	defer unsubscribe()

	require.NoError(t, s.Session.UpdateUser(models.User{Name: "Bobby", Email: "bob@gmail.com", Role: models.RoleStudent}, ""))
	assert.Empty(t, events)
}

func TestChangePassword(t *testing.T) {
	s := newTestStore(t)
	seedUsers(t, s, models.User{Name: "Alice", Email: "alice@gmail.com", Role: models.RoleStudent, Password: "Alice@123"})

	err := s.Session.ChangePassword("nobody@gmail.com", "x", "y")
	assert.ErrorIs(t, err, ErrUserNotFound)

	err = s.Session.ChangePassword("alice@gmail.com", "wrong", "New@123")
	assert.ErrorIs(t, err, ErrWrongPassword)

	require.NoError(t, s.Session.ChangePassword("alice@gmail.com", "Alice@123", "New@123"))
	stored, ok := s.Session.FindUser("alice@gmail.com")
	require.True(t, ok)
	assert.Equal(t, "New@123", stored.Password)
}

func TestChangePasswordUpdatesLiveSession(t *testing.T) {
	s := newTestStore(t)
	seedUsers(t, s, models.User{Name: "Alice", Email: "alice@gmail.com", Role: models.RoleStudent, Password: "Alice@123"})

	_, err := s.Session.Login("alice@gmail.com", "Alice@123")
	require.NoError(t, err)

	require.NoError(t, s.Session.ChangePassword("alice@gmail.com", "Alice@123", "New@123"))

	current, ok := s.Session.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "New@123", current.Password)
}

func TestUnsubscribeStopsNotifications(t *testing.T) {
	s := newTestStore(t)
	seedUsers(t, s, models.User{Name: "Alice", Email: "alice@gmail.com", Role: models.RoleStudent, Password: "Alice@123"})

	events, unsubscribe := s.Session.Subscribe()
	unsubscribe()

	_, err := s.Session.Login("alice@gmail.com", "Alice@123")
	require.NoError(t, err)
	assert.Empty(t, events)
}
