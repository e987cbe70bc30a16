package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"
	"doctorsportal/utils"
)

type fakeUserRepo struct {
	users map[string]models.User
}

func (f *fakeUserRepo) Insert(ctx context.Context, u models.User) (string, error) {
	f.users[u.Email] = u
	return "id-" + u.Email, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, userRepo.ErrNotFound
	}
	return &u, nil
}

func (f *fakeUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) GrantAdminByID(ctx context.Context, id string) error {
	return nil
}

func newFakeRepo(users ...models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]models.User)}
	for _, u := range users {
		repo.users[u.Email] = u
	}
	return repo
}

func TestIssueTokenForKnownUser(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeRepo(models.User{Email: "a@x.com"})}

	token, err := svc.IssueToken(context.Background(), "a@x.com")
	require.NoError(t, err)

	email, err := utils.ExtractEmailFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", email)
}

func TestIssueTokenForUnknownUser(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeRepo()}

	_, err := svc.IssueToken(context.Background(), "ghost@x.com")
	assert.ErrorIs(t, err, ErrUnknownUser)
}

func TestIsAdmin(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeRepo(
		models.User{Email: "admin@x.com", Role: models.RoleAdmin},
		models.User{Email: "plain@x.com"},
	)}

	isAdmin, err := svc.IsAdmin(context.Background(), "admin@x.com")
	require.NoError(t, err)
	assert.True(t, isAdmin)

	isAdmin, err = svc.IsAdmin(context.Background(), "plain@x.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)

	// A missing user is simply not an admin.
	isAdmin, err = svc.IsAdmin(context.Background(), "ghost@x.com")
	require.NoError(t, err)
	assert.False(t, isAdmin)
}
