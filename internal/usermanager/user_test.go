package usermanager

import (
	"context"
	"testing"

	"github.com/mugiliam/fogcontroller/internal/db"
	"github.com/mugiliam/fogcontroller/internal/db/dberror"
	"github.com/mugiliam/fogcontroller/internal/db/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userDB struct {
	db.DB_
	users map[int64]*models.User
}

func (d *userDB) CreateUser(_ context.Context, u *models.User) error {
	for _, e := range d.users {
		if e.Email == u.Email {
			return dberror.ErrAlreadyExists
		}
	}
	u.ID = int64(len(d.users) + 1)
	c := *u
	d.users[u.ID] = &c
	return nil
}

func (d *userDB) GetUser(_ context.Context, id int64) (*models.User, error) {
	u, ok := d.users[id]
	if !ok {
		return nil, dberror.ErrNotFound
	}
	c := *u
	return &c, nil
}

func (d *userDB) GetUserByAccessToken(_ context.Context, token string) (*models.User, error) {
	for _, u := range d.users {
		if u.AccessToken == token {
			c := *u
			return &c, nil
		}
	}
	return nil, dberror.ErrNotFound
}

func (d *userDB) UpdateUser(_ context.Context, u *models.User) error {
	c := *u
	d.users[u.ID] = &c
	return nil
}

func TestUserTokens(t *testing.T) {
	ctx := db.WithDB(context.Background(), &userDB{users: map[int64]*models.User{}})

	_, err := CreateUser(ctx, &UserSpec{FirstName: lo.ToPtr("Ada")})
	assert.ErrorIs(t, err, ErrInvalidUser)
	_, err = CreateUser(ctx, &UserSpec{Email: lo.ToPtr("not-an-email")})
	assert.ErrorIs(t, err, ErrInvalidUser)

	u, err := CreateUser(ctx, &UserSpec{Email: lo.ToPtr(" ada@example.com "), FirstName: lo.ToPtr("Ada")})
	require.Nil(t, err)
	assert.Equal(t, "ada@example.com", u.Email)
	assert.Len(t, u.AccessToken, 27)

	_, err = CreateUser(ctx, &UserSpec{Email: lo.ToPtr("ada@example.com")})
	assert.ErrorIs(t, err, ErrUserExists)

	got, err := Authenticate(ctx, u.AccessToken)
	require.Nil(t, err)
	assert.Equal(t, u.ID, got.ID)

	rotated, err := RegenerateToken(ctx, u.ID)
	require.Nil(t, err)
	assert.NotEqual(t, u.AccessToken, rotated.AccessToken)

	_, err = Authenticate(ctx, u.AccessToken)
	assert.ErrorIs(t, err, ErrUnauthorized)
	_, err = Authenticate(ctx, "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdateUserTrimsEmail(t *testing.T) {
	ctx := db.WithDB(context.Background(), &userDB{users: map[int64]*models.User{}})
	u, err := CreateUser(ctx, &UserSpec{Email: lo.ToPtr("grace@example.com")})
	require.Nil(t, err)

	updated, err := UpdateUser(ctx, u.ID, &UserSpec{Email: lo.ToPtr("  hopper@example.com\t")})
	require.Nil(t, err)
	assert.Equal(t, "hopper@example.com", updated.Email)

	_, err = UpdateUser(ctx, u.ID, &UserSpec{Email: lo.ToPtr(" not an email ")})
	assert.ErrorIs(t, err, ErrInvalidUser)
}
