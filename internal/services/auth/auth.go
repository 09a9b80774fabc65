// Package auth содержит логику аутентификации: регистрацию, вход, смену пароля,
// обновление профиля и проверку bearer-токенов входящих запросов (Gate).
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/magabrotheeeer/weather-blog/internal/models"
	"github.com/magabrotheeeer/weather-blog/internal/shared"
)

// AccountRepository описывает контракт хранилища аккаунтов.
type AccountRepository interface {
	Directory
	// FindAccountByUsernameOrEmail ищет аккаунт по имени или email, (nil, nil) если не найден.
	FindAccountByUsernameOrEmail(ctx context.Context, identifier string) (*models.Account, error)
	// CreateAccount вставляет аккаунт; конфликт уникальности возвращается как
	// shared.ErrUsernameTaken или shared.ErrEmailTaken.
	CreateAccount(ctx context.Context, account models.NewAccount) (*models.Account, error)
	// TouchLastLogin обновляет время последнего входа.
	TouchLastLogin(ctx context.Context, id int64, at time.Time) error
	// UpdatePasswordHash заменяет хэш пароля.
	UpdatePasswordHash(ctx context.Context, id int64, hash string) error
	// UpdateProfile обновляет имя и email, возвращает обновленный аккаунт.
	UpdateProfile(ctx context.Context, id int64, fullName *string, email string) (*models.Account, error)
	// SetAccountActive включает или отключает аккаунт; неизвестный ID дает shared.ErrNotFound.
	SetAccountActive(ctx context.Context, id int64, active bool) error
}

// Hasher хеширует и проверяет пароли.
type Hasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenIssuer выпускает токены доступа.
type TokenIssuer interface {
	GenerateToken(accountID int64, username string) (string, error)
}

// RegisterInput — данные регистрации.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName *string
}

// ProfileInput — изменения профиля. nil и пустая строка оставляют значение без изменений.
type ProfileInput struct {
	FullName *string
	Email    string
}

// Service отвечает за регистрацию, вход и управление учетными данными.
type Service struct {
	accounts AccountRepository
	hasher   Hasher
	tokens   TokenIssuer
	now      func() time.Time
}

// NewService создает новый экземпляр Service.
func NewService(accounts AccountRepository, hasher Hasher, tokens TokenIssuer) *Service {
	return &Service{
		accounts: accounts,
		hasher:   hasher,
		tokens:   tokens,
		now:      time.Now,
	}
}

// Register создает аккаунт с ролью user и сразу выпускает токен.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.Account, string, error) {
	return s.create(ctx, in, models.RoleUser)
}

// Login проверяет пароль, обновляет время входа и выпускает токен.
// Идентификатором может быть имя пользователя или email.
func (s *Service) Login(ctx context.Context, identifier, password string) (*models.Account, string, error) {
	const op = "auth.Login"

	account, err := s.accounts.FindAccountByUsernameOrEmail(ctx, strings.TrimSpace(identifier))
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	if account == nil || !s.hasher.Verify(password, account.PasswordHash) {
		return nil, "", shared.ErrInvalidCredentials
	}
	if !account.IsActive {
		return nil, "", shared.ErrAccountDisabled
	}

	now := s.now().UTC()
	if err := s.accounts.TouchLastLogin(ctx, account.ID, now); err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	account.LastLogin = &now

	token, err := s.tokens.GenerateToken(account.ID, account.Username)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	return account, token, nil
}

// ChangePassword проверяет текущий пароль и сохраняет хэш нового.
// Ранее выданные токены остаются действительными до истечения срока.
func (s *Service) ChangePassword(ctx context.Context, actor *models.Account, current, next string) error {
	const op = "auth.ChangePassword"

	if !s.hasher.Verify(current, actor.PasswordHash) {
		return shared.ErrIncorrectPassword
	}
	hash, err := s.hasher.Hash(next)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.accounts.UpdatePasswordHash(ctx, actor.ID, hash); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// UpdateProfile меняет отображаемое имя и email. Занятый email дает shared.ErrEmailTaken.
func (s *Service) UpdateProfile(ctx context.Context, actor *models.Account, in ProfileInput) (*models.Account, error) {
	const op = "auth.UpdateProfile"

	fullName := actor.FullName
	if in.FullName != nil && strings.TrimSpace(*in.FullName) != "" {
		trimmed := strings.TrimSpace(*in.FullName)
		fullName = &trimmed
	}
	email := actor.Email
	if e := normalizeEmail(in.Email); e != "" {
		email = e
	}

	updated, err := s.accounts.UpdateProfile(ctx, actor.ID, fullName, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

// SetAccountStatus включает или отключает аккаунт. Доступно только администратору.
// Отключенный аккаунт не проходит проверку токена, но его посты и комментарии сохраняются.
func (s *Service) SetAccountStatus(ctx context.Context, actor *models.Account, id int64, active bool) (*models.Account, error) {
	const op = "auth.SetAccountStatus"

	if !actor.IsAdmin() {
		return nil, shared.ErrForbidden
	}
	if err := s.accounts.SetAccountActive(ctx, id, active); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	account, err := s.accounts.FindAccountByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if account == nil {
		return nil, fmt.Errorf("%s: %w", op, shared.ErrNotFound)
	}
	return account, nil
}

// EnsureAdmin создает администратора, если аккаунта с таким именем или email еще нет.
// Существующий аккаунт не изменяется.
func (s *Service) EnsureAdmin(ctx context.Context, in RegisterInput) (bool, error) {
	const op = "auth.EnsureAdmin"

	for _, identifier := range []string{strings.TrimSpace(in.Username), normalizeEmail(in.Email)} {
		existing, err := s.accounts.FindAccountByUsernameOrEmail(ctx, identifier)
		if err != nil {
			return false, fmt.Errorf("%s: %w", op, err)
		}
		if existing != nil {
			return false, nil
		}
	}

	_, _, err := s.create(ctx, in, models.RoleAdmin)
	switch {
	case errors.Is(err, shared.ErrUsernameTaken), errors.Is(err, shared.ErrEmailTaken):
		// аккаунт появился между проверкой и вставкой
		return false, nil
	case err != nil:
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return true, nil
}

func (s *Service) create(ctx context.Context, in RegisterInput, role models.Role) (*models.Account, string, error) {
	const op = "auth.Register"

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	var fullName *string
	if in.FullName != nil && strings.TrimSpace(*in.FullName) != "" {
		trimmed := strings.TrimSpace(*in.FullName)
		fullName = &trimmed
	}

	account, err := s.accounts.CreateAccount(ctx, models.NewAccount{
		Username:     strings.TrimSpace(in.Username),
		Email:        normalizeEmail(in.Email),
		PasswordHash: hash,
		FullName:     fullName,
		Role:         role,
	})
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}

	token, err := s.tokens.GenerateToken(account.ID, account.Username)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", op, err)
	}
	return account, token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
