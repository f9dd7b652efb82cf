package usecase

import (
	"context"
	"errors"
	"testing"

	"metaads-srv/internal/account"
	"metaads-srv/internal/account/repository"
	"metaads-srv/internal/model"
	"metaads-srv/pkg/log"
)

type fakeAccountRepo struct {
	accounts  map[string]*model.AdAccount // keyed by account_id
	createErr error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*model.AdAccount)}
}

func (f *fakeAccountRepo) CreateAccount(_ context.Context, opts repository.CreateAccountOptions) (*model.AdAccount, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	if _, ok := f.accounts[opts.AccountID]; ok {
		return nil, repository.ErrAccountExists
	}
	acc := &model.AdAccount{
		ID:          "id-" + opts.AccountID,
		AccountID:   opts.AccountID,
		Name:        opts.Name,
		AccessToken: opts.AccessToken,
		Timezone:    opts.Timezone,
	}
	f.accounts[opts.AccountID] = acc
	return acc, nil
}

func (f *fakeAccountRepo) GetAccountByID(_ context.Context, id string) (*model.AdAccount, error) {
	for _, acc := range f.accounts {
		if acc.ID == id {
			return acc, nil
		}
	}
	return nil, repository.ErrAccountNotFound
}

func (f *fakeAccountRepo) GetAccountByAccountID(_ context.Context, accountID string) (*model.AdAccount, error) {
	if acc, ok := f.accounts[accountID]; ok {
		return acc, nil
	}
	return nil, repository.ErrAccountNotFound
}

func (f *fakeAccountRepo) ListAccounts(_ context.Context, opts repository.ListAccountsOptions) ([]model.AdAccount, int64, error) {
	out := make([]model.AdAccount, 0, len(f.accounts))
	for _, acc := range f.accounts {
		out = append(out, *acc)
	}
	return out, int64(len(f.accounts)), nil
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("registers a valid account", func(t *testing.T) {
		uc := New(newFakeAccountRepo(), log.NewNop())

		out, err := uc.Register(ctx, account.RegisterInput{
			AccountID:   "act_123456789",
			Name:        "Main account",
			AccessToken: "EAAtoken",
		})
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if out.Account.AccountID != "act_123456789" {
			t.Errorf("AccountID mismatch: got %s", out.Account.AccountID)
		}
		if out.Account.Name != "Main account" {
			t.Errorf("Name mismatch: got %s", out.Account.Name)
		}
	})

	t.Run("defaults name to account id", func(t *testing.T) {
		uc := New(newFakeAccountRepo(), log.NewNop())

		out, err := uc.Register(ctx, account.RegisterInput{
			AccountID:   "act_42",
			AccessToken: "EAAtoken",
		})
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if out.Account.Name != "act_42" {
			t.Errorf("Name should default to account id, got %s", out.Account.Name)
		}
	})

	t.Run("rejects malformed account id", func(t *testing.T) {
		uc := New(newFakeAccountRepo(), log.NewNop())

		for _, id := range []string{"", "123456789", "act_", "act_12x", "ACT_123"} {
			_, err := uc.Register(ctx, account.RegisterInput{AccountID: id, AccessToken: "tok"})
			if !errors.Is(err, account.ErrAccountIDInvalid) {
				t.Errorf("account id %q: got %v, want ErrAccountIDInvalid", id, err)
			}
		}
	})

	t.Run("rejects missing token", func(t *testing.T) {
		uc := New(newFakeAccountRepo(), log.NewNop())

		_, err := uc.Register(ctx, account.RegisterInput{AccountID: "act_1"})
		if !errors.Is(err, account.ErrTokenRequired) {
			t.Errorf("got %v, want ErrTokenRequired", err)
		}
	})

	t.Run("maps duplicate to ErrAccountExists", func(t *testing.T) {
		uc := New(newFakeAccountRepo(), log.NewNop())

		input := account.RegisterInput{AccountID: "act_1", AccessToken: "tok"}
		if _, err := uc.Register(ctx, input); err != nil {
			t.Fatalf("first Register failed: %v", err)
		}
		_, err := uc.Register(ctx, input)
		if !errors.Is(err, account.ErrAccountExists) {
			t.Errorf("got %v, want ErrAccountExists", err)
		}
	})
}

func TestGetAccount(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAccountRepo()
	uc := New(repo, log.NewNop())

	created, err := uc.Register(ctx, account.RegisterInput{AccountID: "act_7", AccessToken: "tok"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	t.Run("found", func(t *testing.T) {
		out, err := uc.GetAccount(ctx, account.GetAccountInput{ID: created.Account.ID})
		if err != nil {
			t.Fatalf("GetAccount failed: %v", err)
		}
		if out.Account.AccountID != "act_7" {
			t.Errorf("AccountID mismatch: got %s", out.Account.AccountID)
		}
	})

	t.Run("not found", func(t *testing.T) {
		_, err := uc.GetAccount(ctx, account.GetAccountInput{ID: "missing"})
		if !errors.Is(err, account.ErrAccountNotFound) {
			t.Errorf("got %v, want ErrAccountNotFound", err)
		}
	})
}

func TestListAccounts(t *testing.T) {
	ctx := context.Background()
	repo := newFakeAccountRepo()
	uc := New(repo, log.NewNop())

	for _, id := range []string{"act_1", "act_2", "act_3"} {
		if _, err := uc.Register(ctx, account.RegisterInput{AccountID: id, AccessToken: "tok"}); err != nil {
			t.Fatalf("Register %s failed: %v", id, err)
		}
	}

	out, err := uc.ListAccounts(ctx, account.ListAccountsInput{})
	if err != nil {
		t.Fatalf("ListAccounts failed: %v", err)
	}
	if len(out.Accounts) != 3 {
		t.Errorf("got %d accounts, want 3", len(out.Accounts))
	}
	if out.Paginator.Total != 3 {
		t.Errorf("Paginator.Total = %d, want 3", out.Paginator.Total)
	}
	if out.Paginator.CurrentPage != 1 {
		t.Errorf("Paginator.CurrentPage = %d, want 1", out.Paginator.CurrentPage)
	}
}
