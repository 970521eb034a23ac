package repository

import (
	"context"
	"errors"
	"time"
)

// User is an account in the academic community: a current student or an alumnus.
type User struct {
	ID             string    `db:"id"`
	FullName       string    `db:"full_name"`
	Email          string    `db:"email"`
	PasswordHash   string    `db:"password_hash"`
	GraduationYear int       `db:"graduation_year"`
	FieldOfStudy   string    `db:"field_of_study"`
	LinkedIn       string    `db:"linkedin"`
	Role           string    `db:"role"`
	IsAlumni       bool      `db:"is_alumni"`
	CreatedAt      time.Time `db:"created_at"`
}

// ErrDuplicateEmail signals that the email is already registered.
var ErrDuplicateEmail = errors.New("users: email already registered")

// UserRepository defines persistence operations for accounts.
type UserRepository interface {
	Create(ctx context.Context, u User) (string, error)
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
}
