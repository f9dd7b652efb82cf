package account

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (AccountOutput, error)
	GetAccount(ctx context.Context, input GetAccountInput) (AccountOutput, error)
	ListAccounts(ctx context.Context, input ListAccountsInput) (ListAccountsOutput, error)
}
