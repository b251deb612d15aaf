package models

import (
	"errors"
	"time"
	"unicode/utf8"
)

// MaxNameLength - предел длины имени пользователя и названия города в символах
const MaxNameLength = 80

// NameFits сообщает, помещается ли name в колонку VARCHAR(MaxNameLength)
func NameFits(name string) bool {
	return utf8.RuneCountInString(name) <= MaxNameLength
}

type (
	User struct {
		ID           int64
		Username     string
		PasswordHash string
		Salt         string // hex, 32 символа
		CreatedAt    time.Time
	}

	// FavoriteCity - избранный город пользователя, удаляется только мягко (Deleted)
	FavoriteCity struct {
		ID        int64
		UserID    int64
		City      string
		Deleted   bool
		CreatedAt time.Time
	}

	// SessionRecord - список городов пользователя на момент последнего logout
	SessionRecord struct {
		UserID    int64
		Cities    []string
		UpdatedAt time.Time
	}
)

var (
	ErrInvalidData  = errors.New("invalid input data")
	ErrUnfound      = errors.New("unfound data")
	ErrConflict     = errors.New("already exists")
	ErrUnauthorized = errors.New("invalid username or password")
	ErrUpstream     = errors.New("upstream failure")
)
