package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"weatherfav/internal/domain/models"
	"weatherfav/internal/repository/dto"
)

// FavoriteCreate добавляет город либо восстанавливает мягко удаленный.
// Если активная запись уже есть, возвращает models.ErrConflict.
func (p *PostgresStorage) FavoriteCreate(ctx context.Context, fav models.FavoriteCity) (models.FavoriteCity, error) {
	if fav.UserID <= 0 || fav.City == "" {
		return models.FavoriteCity{}, models.ErrInvalidData
	}

	row := dto.FavoriteDBFromDomain(fav)
	err := p.querier(ctx).QueryRowContext(ctx, `
		INSERT INTO favorites (user_id, city)
		VALUES ($1, $2)
		ON CONFLICT (user_id, city) DO UPDATE SET deleted = FALSE
		WHERE favorites.deleted
		RETURNING id, user_id, city, deleted, created_at`,
		row.UserID, row.City,
	).Scan(&row.ID, &row.UserID, &row.City, &row.Deleted, &row.CreatedAt)

	if err != nil {
		// ON CONFLICT ... WHERE не вернул строку - запись активна
		if errors.Is(err, sql.ErrNoRows) || isUniqueViolation(err) {
			return models.FavoriteCity{}, fmt.Errorf("%w: city '%s'", models.ErrConflict, fav.City)
		}
		return models.FavoriteCity{}, fmt.Errorf("failed to create favorite: %w", err)
	}

	return dto.FavoriteDBToDomain(row), nil
}

// FavoriteGet возвращает запись в том числе мягко удаленную
func (p *PostgresStorage) FavoriteGet(ctx context.Context, userID int64, city string) (models.FavoriteCity, error) {
	var row dto.FavoriteDB
	err := p.querier(ctx).QueryRowContext(ctx,
		"SELECT id, user_id, city, deleted, created_at FROM favorites WHERE user_id = $1 AND city = $2",
		userID, city,
	).Scan(&row.ID, &row.UserID, &row.City, &row.Deleted, &row.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.FavoriteCity{}, fmt.Errorf("%w: city '%s'", models.ErrUnfound, city)
		}
		return models.FavoriteCity{}, fmt.Errorf("failed to get favorite: %w", err)
	}

	return dto.FavoriteDBToDomain(row), nil
}

func (p *PostgresStorage) FavoriteSoftDelete(ctx context.Context, userID int64, city string) error {
	result, err := p.querier(ctx).ExecContext(ctx,
		"UPDATE favorites SET deleted = TRUE WHERE user_id = $1 AND city = $2 AND NOT deleted",
		userID, city,
	)
	if err != nil {
		return fmt.Errorf("failed to delete favorite: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: city '%s'", models.ErrUnfound, city)
	}

	return nil
}

// FavoriteListByUser - активные города пользователя в порядке добавления
func (p *PostgresStorage) FavoriteListByUser(ctx context.Context, userID int64) ([]string, error) {
	rows, err := p.querier(ctx).QueryContext(ctx,
		"SELECT city FROM favorites WHERE user_id = $1 AND NOT deleted ORDER BY id",
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}
	defer rows.Close()

	return scanCities(rows)
}

// FavoriteSoftDeleteByUser мягко удаляет все активные города пользователя
// и возвращает их в порядке добавления
func (p *PostgresStorage) FavoriteSoftDeleteByUser(ctx context.Context, userID int64) ([]string, error) {
	rows, err := p.querier(ctx).QueryContext(ctx, `
		WITH cleared AS (
			UPDATE favorites SET deleted = TRUE WHERE user_id = $1 AND NOT deleted RETURNING id, city
		)
		SELECT city FROM cleared ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to clear favorites: %w", err)
	}
	defer rows.Close()

	return scanCities(rows)
}

func scanCities(rows *sql.Rows) ([]string, error) {
	cities := make([]string, 0)
	for rows.Next() {
		var city string
		if err := rows.Scan(&city); err != nil {
			return nil, fmt.Errorf("failed to scan city: %w", err)
		}
		cities = append(cities, city)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return cities, nil
}
