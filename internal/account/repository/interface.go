package repository

import (
	"context"

	"metaads-srv/internal/model"
)

//go:generate mockery --name AccountRepository
type AccountRepository interface {
	CreateAccount(ctx context.Context, opts CreateAccountOptions) (*model.AdAccount, error)
	GetAccountByID(ctx context.Context, id string) (*model.AdAccount, error)
	GetAccountByAccountID(ctx context.Context, accountID string) (*model.AdAccount, error)
	ListAccounts(ctx context.Context, opts ListAccountsOptions) ([]model.AdAccount, int64, error)
}
