package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"weatherfav/internal/domain/models"
	"weatherfav/internal/repository/dto"
)

func (p *PostgresStorage) UserCreate(ctx context.Context, user models.User) (models.User, error) {
	if user.Username == "" || user.PasswordHash == "" {
		return models.User{}, fmt.Errorf("%w: username and password hash must not be empty", models.ErrInvalidData)
	}

	row := dto.UserDBFromDomain(user)
	err := p.querier(ctx).QueryRowContext(ctx, `
		INSERT INTO users (username, password_hash, salt)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		row.Username, row.PasswordHash, row.Salt,
	).Scan(&row.ID, &row.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, fmt.Errorf("%w: user with username '%s'", models.ErrConflict, user.Username)
		}
		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return dto.UserDBToDomain(row), nil
}

func (p *PostgresStorage) UserGetByUsername(ctx context.Context, username string) (models.User, error) {
	var row dto.UserDB
	err := p.querier(ctx).QueryRowContext(ctx,
		"SELECT id, username, password_hash, salt, created_at FROM users WHERE username = $1",
		username,
	).Scan(&row.ID, &row.Username, &row.PasswordHash, &row.Salt, &row.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, fmt.Errorf("%w: user '%s'", models.ErrUnfound, username)
		}
		return models.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return dto.UserDBToDomain(row), nil
}

func (p *PostgresStorage) UserDelete(ctx context.Context, username string) error {
	result, err := p.querier(ctx).ExecContext(ctx,
		"DELETE FROM users WHERE username = $1",
		username,
	)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: user '%s'", models.ErrUnfound, username)
	}

	return nil
}

func (p *PostgresStorage) UserUpdatePassword(ctx context.Context, username, passwordHash, salt string) error {
	result, err := p.querier(ctx).ExecContext(ctx,
		"UPDATE users SET password_hash = $2, salt = $3 WHERE username = $1",
		username, passwordHash, salt,
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: user '%s'", models.ErrUnfound, username)
	}

	return nil
}
