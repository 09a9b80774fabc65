package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/magabrotheeeer/weather-blog/internal/models"
	"github.com/magabrotheeeer/weather-blog/internal/shared"
)

const accountColumns = `id, username, email, password_hash, full_name, role, is_active,
	last_login, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*models.Account, error) {
	var (
		a         models.Account
		fullName  sql.NullString
		lastLogin sql.NullTime
		role      string
	)
	if err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &fullName, &role,
		&a.IsActive, &lastLogin, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.Role = models.Role(role)
	if fullName.Valid {
		a.FullName = &fullName.String
	}
	if lastLogin.Valid {
		a.LastLogin = &lastLogin.Time
	}
	return &a, nil
}

// FindAccountByID возвращает аккаунт по ID или (nil, nil), если его нет.
func (s *Storage) FindAccountByID(ctx context.Context, id int64) (*models.Account, error) {
	const op = "storage.FindAccountByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + accountColumns + ` FROM users WHERE id = $1`
	account, err := scanAccount(s.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return account, nil
}

// FindAccountByUsernameOrEmail ищет аккаунт по имени пользователя (без учета регистра)
// или email. Возвращает (nil, nil), если совпадений нет.
func (s *Storage) FindAccountByUsernameOrEmail(ctx context.Context, identifier string) (*models.Account, error) {
	const op = "storage.FindAccountByUsernameOrEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ` + accountColumns + `
			  FROM users
			  WHERE lower(username) = lower($1) OR email = lower($1)
			  ORDER BY id
			  LIMIT 1`
	account, err := scanAccount(s.DB.QueryRowContext(ctx, query, identifier))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return account, nil
}

// CreateAccount вставляет новый аккаунт одним запросом. Конфликт уникальности
// возвращается как shared.ErrUsernameTaken или shared.ErrEmailTaken.
func (s *Storage) CreateAccount(ctx context.Context, account models.NewAccount) (*models.Account, error) {
	const op = "storage.CreateAccount"

	query := `INSERT INTO users (username, email, password_hash, full_name, role)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING ` + accountColumns
	created, err := scanAccount(s.DB.QueryRowContext(ctx, query,
		account.Username, account.Email, account.PasswordHash, account.FullName, string(account.Role)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapUniqueViolation(err))
	}
	return created, nil
}

// TouchLastLogin обновляет время последнего входа.
func (s *Storage) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	const op = "storage.TouchLastLogin"

	res, err := s.DB.ExecContext(ctx, `UPDATE users SET last_login = $1 WHERE id = $2`, at, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := affectedOrNotFound(res); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// UpdatePasswordHash заменяет хэш пароля аккаунта.
func (s *Storage) UpdatePasswordHash(ctx context.Context, id int64, hash string) error {
	const op = "storage.UpdatePasswordHash"

	res, err := s.DB.ExecContext(ctx,
		`UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2`, hash, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := affectedOrNotFound(res); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// UpdateProfile обновляет отображаемое имя и email и возвращает аккаунт.
func (s *Storage) UpdateProfile(ctx context.Context, id int64, fullName *string, email string) (*models.Account, error) {
	const op = "storage.UpdateProfile"

	query := `UPDATE users
			  SET full_name = $1, email = $2, updated_at = now()
			  WHERE id = $3
			  RETURNING ` + accountColumns
	account, err := scanAccount(s.DB.QueryRowContext(ctx, query, fullName, email, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", op, shared.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapUniqueViolation(err))
	}
	return account, nil
}

// SetAccountActive включает или отключает аккаунт. Аккаунты не удаляются.
func (s *Storage) SetAccountActive(ctx context.Context, id int64, active bool) error {
	const op = "storage.SetAccountActive"

	res, err := s.DB.ExecContext(ctx,
		`UPDATE users SET is_active = $1, updated_at = now() WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := affectedOrNotFound(res); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
