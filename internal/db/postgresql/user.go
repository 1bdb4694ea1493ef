package postgresql

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/mugiliam/fogcontroller/internal/db/dberror"
	"github.com/mugiliam/fogcontroller/internal/db/models"
	"github.com/rs/zerolog/log"
)

const userColumns = `id, first_name, last_name, email, COALESCE(access_token, ''), created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }, u *models.User) error {
	return row.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.AccessToken, &u.CreatedAt, &u.UpdatedAt)
}

// CreateUser inserts a new user. The email must be unique.
func (h *FogDb) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (first_name, last_name, email, access_token)
		VALUES ($1, $2, $3, NULLIF($4, ''))
		ON CONFLICT (email) DO NOTHING
		RETURNING id, created_at, updated_at;
	`
	row := h.conn().QueryRowContext(ctx, query, user.FirstName, user.LastName, user.Email, user.AccessToken)
	err := row.Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str("email", user.Email).Msg("user already exists")
			return dberror.ErrAlreadyExists.Msg("user already exists")
		}
		log.Ctx(ctx).Error().Err(err).Str("email", user.Email).Msg("failed to insert user")
		return dberror.FromPgError(err)
	}
	return nil
}

func (h *FogDb) GetUser(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1;`
	return h.getUser(ctx, query, id, "id", strconv.FormatInt(id, 10))
}

func (h *FogDb) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1;`
	return h.getUser(ctx, query, email, "email", email)
}

// GetUserByAccessToken resolves the user that owns an API access token.
func (h *FogDb) GetUserByAccessToken(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, dberror.ErrInvalidInput.Msg("access token is required")
	}
	query := `SELECT ` + userColumns + ` FROM users WHERE access_token = $1;`
	return h.getUser(ctx, query, token, "token", "redacted")
}

func (h *FogDb) getUser(ctx context.Context, query string, arg any, key, val string) (*models.User, error) {
	var u models.User
	err := scanUser(h.conn().QueryRowContext(ctx, query, arg), &u)
	if err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Str(key, val).Msg("user not found")
			return nil, dberror.ErrNotFound.Msg("user not found")
		}
		log.Ctx(ctx).Error().Err(err).Str(key, val).Msg("failed to retrieve user")
		return nil, dberror.ErrDatabase.Err(err)
	}
	return &u, nil
}

func (h *FogDb) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := h.conn().QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id;`)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("failed to list users")
		return nil, dberror.ErrDatabase.Err(err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var u models.User
		if err := scanUser(rows, &u); err != nil {
			log.Ctx(ctx).Error().Err(err).Msg("failed to scan user")
			return nil, dberror.ErrDatabase.Err(err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, dberror.ErrDatabase.Err(err)
	}
	return users, nil
}

// UpdateUser updates the name, email and access token of a user.
func (h *FogDb) UpdateUser(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET first_name = $2, last_name = $3, email = $4, access_token = NULLIF($5, ''), updated_at = now()
		WHERE id = $1
		RETURNING updated_at;
	`
	row := h.conn().QueryRowContext(ctx, query, user.ID, user.FirstName, user.LastName, user.Email, user.AccessToken)
	if err := row.Scan(&user.UpdatedAt); err != nil {
		if err == sql.ErrNoRows {
			log.Ctx(ctx).Info().Int64("id", user.ID).Msg("user not found for update")
			return dberror.ErrNotFound.Msg("user not found for update")
		}
		log.Ctx(ctx).Error().Err(err).Int64("id", user.ID).Msg("failed to update user")
		return dberror.FromPgError(err)
	}
	return nil
}

// DeleteUser removes a user together with everything the user owns.
func (h *FogDb) DeleteUser(ctx context.Context, id int64) error {
	result, err := h.conn().ExecContext(ctx, `DELETE FROM users WHERE id = $1;`, id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Int64("id", id).Msg("failed to delete user")
		return dberror.ErrDatabase.Err(err)
	}
	return checkAffected(ctx, result, "user")
}
