package auth_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/weather-blog/internal/models"
)

// AccountRepoMock — мок для AccountRepository.
type AccountRepoMock struct {
	mock.Mock
}

func (m *AccountRepoMock) FindAccountByID(ctx context.Context, id int64) (*models.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *AccountRepoMock) FindAccountByUsernameOrEmail(ctx context.Context, identifier string) (*models.Account, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *AccountRepoMock) CreateAccount(ctx context.Context, account models.NewAccount) (*models.Account, error) {
	args := m.Called(ctx, account)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *AccountRepoMock) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

func (m *AccountRepoMock) UpdatePasswordHash(ctx context.Context, id int64, hash string) error {
	return m.Called(ctx, id, hash).Error(0)
}

func (m *AccountRepoMock) UpdateProfile(ctx context.Context, id int64, fullName *string, email string) (*models.Account, error) {
	args := m.Called(ctx, id, fullName, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *AccountRepoMock) SetAccountActive(ctx context.Context, id int64, active bool) error {
	args := m.Called(ctx, id, active)
	return args.Error(0)
}
