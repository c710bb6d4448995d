package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/aebalz/mindwell-backend/internal/apperr"
	"github.com/aebalz/mindwell-backend/internal/auth"
	"github.com/aebalz/mindwell-backend/internal/model"
	"github.com/aebalz/mindwell-backend/internal/repository"
)

// -------- test fakes --------

type fakeUserRepo struct {
	repository.UserRepositoryInterface

	users     map[uint]*model.User
	nextID    uint
	deleteErr error
	deleted   []uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*model.User), nextID: 1}
}

func (f *fakeUserRepo) CreateUser(user *model.User) (*model.User, error) {
	user.ID = f.nextID
	f.nextID++
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) GetUserByID(id uint) (*model.User, error) {
	if user, ok := f.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetUserByEmail(email string) (*model.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) UpdateUser(user *model.User) (*model.User, error) {
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) DeleteUser(id uint) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.users, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeUserRepo) mustRegister(t *testing.T, svc UserServiceInterface, email string) *model.User {
	t.Helper()
	user, err := svc.Register("Ada", "Lovelace", email, "Valid1Password")
	require.NoError(t, err)
	return user
}

// -------- tests --------

func TestRegisterStoresHashNotPlaintext(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	user, err := svc.Register("Ada", "Lovelace", "ada@example.com", "Valid1Password")
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	assert.NotEqual(t, "Valid1Password", user.PasswordHash)
	assert.True(t, auth.CheckPassword(user.PasswordHash, "Valid1Password"))
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	repo.mustRegister(t, svc, "ada@example.com")

	_, err := svc.Register("Ada", "Again", "ada@example.com", "Valid1Password")
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.Len(t, repo.users, 1, "no second row may be created")
}

func TestRegisterRejectsBadInput(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	tests := []struct {
		name                                 string
		firstName, lastName, email, password string
	}{
		{"missing fields", "", "Lovelace", "ada@example.com", "Valid1Password"},
		{"bad email", "Ada", "Lovelace", "not-an-email", "Valid1Password"},
		{"bad email no tld", "Ada", "Lovelace", "ada@example", "Valid1Password"},
		{"weak password", "Ada", "Lovelace", "ada@example.com", "weak"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(tt.firstName, tt.lastName, tt.email, tt.password)
			require.Error(t, err)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		})
	}
}

func TestLoginDoesNotDistinguishUnknownEmailFromBadPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	repo.mustRegister(t, svc, "ada@example.com")

	_, errUnknown := svc.Login("nobody@example.com", "Valid1Password")
	_, errBadPass := svc.Login("ada@example.com", "Wrong1Password")

	require.Error(t, errUnknown)
	require.Error(t, errBadPass)
	assert.Equal(t, apperr.KindAuth, apperr.KindOf(errUnknown))
	assert.Equal(t, apperr.KindAuth, apperr.KindOf(errBadPass))
	assert.Equal(t, errUnknown.Error(), errBadPass.Error())
}

func TestLoginSucceedsWithCorrectPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	registered := repo.mustRegister(t, svc, "ada@example.com")

	user, err := svc.Login("ada@example.com", "Valid1Password")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestUpdateProfileRequiresCurrentPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	user := repo.mustRegister(t, svc, "ada@example.com")

	_, err := svc.UpdateProfile(UpdateProfileParams{
		ID:              user.ID,
		CurrentPassword: "Wrong1Password",
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@example.com",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))
}

func TestUpdateProfileRejectsEmailCollision(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	user := repo.mustRegister(t, svc, "ada@example.com")
	repo.mustRegister(t, svc, "grace@example.com")

	_, err := svc.UpdateProfile(UpdateProfileParams{
		ID:              user.ID,
		CurrentPassword: "Valid1Password",
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "grace@example.com",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func TestUpdateProfileRehashesNewPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	user := repo.mustRegister(t, svc, "ada@example.com")

	updated, err := svc.UpdateProfile(UpdateProfileParams{
		ID:              user.ID,
		CurrentPassword: "Valid1Password",
		FirstName:       "Ada",
		LastName:        "Byron",
		Email:           "ada@example.com",
		NewPassword:     "Another2Password",
	})
	require.NoError(t, err)
	assert.Equal(t, "Byron", updated.LastName)
	assert.True(t, auth.CheckPassword(updated.PasswordHash, "Another2Password"))
	assert.False(t, auth.CheckPassword(updated.PasswordHash, "Valid1Password"))
}

func TestUpdateProfileRejectsWeakNewPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	user := repo.mustRegister(t, svc, "ada@example.com")

	_, err := svc.UpdateProfile(UpdateProfileParams{
		ID:              user.ID,
		CurrentPassword: "Valid1Password",
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@example.com",
		NewPassword:     "weak",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestDeleteAccountUnknownUser(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	err := svc.DeleteAccount(42)
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestDeleteAccountRemovesUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo)
	user := repo.mustRegister(t, svc, "ada@example.com")

	require.NoError(t, svc.DeleteAccount(user.ID))
	assert.Equal(t, []uint{user.ID}, repo.deleted)
}
