package dto

import (
	"time"

	"weatherfav/internal/domain/models"
)

type (
	UserDB struct {
		ID           int64     `db:"id"`
		Username     string    `db:"username"`
		PasswordHash string    `db:"password_hash"`
		Salt         string    `db:"salt"`
		CreatedAt    time.Time `db:"created_at"`
	}
)

func UserDBToDomain(u UserDB) models.User {
	return models.User{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Salt:         u.Salt,
		CreatedAt:    u.CreatedAt,
	}
}

func UserDBFromDomain(u models.User) UserDB {
	return UserDB{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Salt:         u.Salt,
		CreatedAt:    u.CreatedAt,
	}
}
