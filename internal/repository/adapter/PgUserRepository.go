package adapter

import (
	"context"
	"errors"

	repository "github.com/coderanik/Alumni-Connect/internal/repository/port"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

const uniqueViolation = "23505"

func (r *PgUserRepository) Create(ctx context.Context, u repository.User) (string, error) {
	if r == nil || r.pool == nil {
		return "", errors.New("PgUserRepository: nil pool")
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, full_name, email, password_hash, graduation_year, field_of_study, linkedin, role, is_alumni, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, u.ID, u.FullName, u.Email, u.PasswordHash, u.GraduationYear, u.FieldOfStudy, u.LinkedIn, u.Role, u.IsAlumni, u.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return "", repository.ErrDuplicateEmail
		}
		return "", err
	}
	return u.ID, nil
}

func (r *PgUserRepository) FindByID(ctx context.Context, id string) (*repository.User, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgUserRepository: nil pool")
	}
	return r.findOne(ctx, "WHERE id = $1", id)
}

func (r *PgUserRepository) FindByEmail(ctx context.Context, email string) (*repository.User, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgUserRepository: nil pool")
	}
	return r.findOne(ctx, "WHERE email = $1", email)
}

func (r *PgUserRepository) findOne(ctx context.Context, where string, arg any) (*repository.User, error) {
	var u repository.User
	err := r.pool.QueryRow(ctx, `
		SELECT id, full_name, email, password_hash, graduation_year, field_of_study, linkedin, role, is_alumni, created_at
		FROM users `+where,
		arg,
	).Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.GraduationYear, &u.FieldOfStudy, &u.LinkedIn, &u.Role, &u.IsAlumni, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PgUserRepository) List(ctx context.Context) ([]repository.User, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgUserRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, full_name, email, password_hash, graduation_year, field_of_study, linkedin, role, is_alumni, created_at
		FROM users
		ORDER BY full_name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []repository.User
	for rows.Next() {
		var u repository.User
		if err := rows.Scan(&u.ID, &u.FullName, &u.Email, &u.PasswordHash, &u.GraduationYear, &u.FieldOfStudy, &u.LinkedIn, &u.Role, &u.IsAlumni, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return users, nil
}
