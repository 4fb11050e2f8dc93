package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/devmatch/backend/internal/domain"
	"github.com/devmatch/backend/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, name, email, password_hash, skills, experience, github_link,
	project_interests, tech_stacks, profile_picture, created_at, updated_at`

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (name, email, password_hash, skills, experience, github_link, project_interests, tech_stacks, profile_picture)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		user.Name, user.Email, user.PasswordHash,
		pq.Array(user.Skills), user.Experience, user.GithubLink,
		pq.Array(user.ProjectInterests), pq.Array(user.TechStacks), user.ProfilePicture,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserExists
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET name = $1, skills = $2, experience = $3, github_link = $4,
		    project_interests = $5, tech_stacks = $6, profile_picture = $7,
		    updated_at = NOW()
		WHERE id = $8
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		user.Name, pq.Array(user.Skills), user.Experience, user.GithubLink,
		pq.Array(user.ProjectInterests), pq.Array(user.TechStacks), user.ProfilePicture,
		user.ID,
	).Scan(&user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrUserNotFound
		}
		return err
	}
	return nil
}

func (r *userRepository) GetAllExcept(ctx context.Context, excludedIDs []string) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id <> ALL($1)`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(excludedIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		var user domain.User
		err := rows.Scan(
			&user.ID, &user.Name, &user.Email, &user.PasswordHash,
			pq.Array(&user.Skills), &user.Experience, &user.GithubLink,
			pq.Array(&user.ProjectInterests), pq.Array(&user.TechStacks),
			&user.ProfilePicture, &user.CreatedAt, &user.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, &user)
	}
	return users, rows.Err()
}

func (r *userRepository) scanOne(row *sql.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		pq.Array(&user.Skills), &user.Experience, &user.GithubLink,
		pq.Array(&user.ProjectInterests), pq.Array(&user.TechStacks),
		&user.ProfilePicture, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
