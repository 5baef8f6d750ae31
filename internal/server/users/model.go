package users

import "time"

type User struct {
	ID           int
	FullName     string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
