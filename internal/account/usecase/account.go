package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"metaads-srv/internal/account"
	"metaads-srv/internal/account/repository"
)

var accountIDPattern = regexp.MustCompile(`^act_\d+$`)

// Register validates and stores a new ad account.
func (uc *implUseCase) Register(ctx context.Context, input account.RegisterInput) (account.AccountOutput, error) {
	input.AccountID = strings.TrimSpace(input.AccountID)
	if !accountIDPattern.MatchString(input.AccountID) {
		return account.AccountOutput{}, account.ErrAccountIDInvalid
	}
	if strings.TrimSpace(input.AccessToken) == "" {
		return account.AccountOutput{}, account.ErrTokenRequired
	}
	if input.Name == "" {
		input.Name = input.AccountID
	}

	acc, err := uc.repo.CreateAccount(ctx, repository.CreateAccountOptions{
		AccountID:   input.AccountID,
		Name:        input.Name,
		AccessToken: input.AccessToken,
		Timezone:    input.Timezone,
	})
	if err != nil {
		if errors.Is(err, repository.ErrAccountExists) {
			return account.AccountOutput{}, account.ErrAccountExists
		}
		uc.l.Errorf(ctx, "account.usecase.Register: Failed to create account: %v", err)
		return account.AccountOutput{}, err
	}

	return account.AccountOutput{Account: *acc}, nil
}

// GetAccount returns one account by primary key.
func (uc *implUseCase) GetAccount(ctx context.Context, input account.GetAccountInput) (account.AccountOutput, error) {
	acc, err := uc.repo.GetAccountByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return account.AccountOutput{}, account.ErrAccountNotFound
		}
		uc.l.Errorf(ctx, "account.usecase.GetAccount: Failed to get account: %v", err)
		return account.AccountOutput{}, err
	}

	return account.AccountOutput{Account: *acc}, nil
}

// ListAccounts returns accounts with pagination.
func (uc *implUseCase) ListAccounts(ctx context.Context, input account.ListAccountsInput) (account.ListAccountsOutput, error) {
	input.Paginate.Adjust()

	accounts, total, err := uc.repo.ListAccounts(ctx, repository.ListAccountsOptions{
		Paginate: input.Paginate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "account.usecase.ListAccounts: Failed to list accounts: %v", err)
		return account.ListAccountsOutput{}, err
	}

	return account.ListAccountsOutput{
		Accounts:  accounts,
		Paginator: input.Paginate.ToPaginator(total, int64(len(accounts))),
	}, nil
}
