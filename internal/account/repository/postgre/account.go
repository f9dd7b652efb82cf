package postgre

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"metaads-srv/internal/account/repository"
	"metaads-srv/internal/model"
)

const accountColumns = `id, account_id, name, access_token, timezone, created_at, updated_at`

func scanAccount(row interface{ Scan(dest ...any) error }) (*model.AdAccount, error) {
	var acc model.AdAccount
	err := row.Scan(
		&acc.ID,
		&acc.AccountID,
		&acc.Name,
		&acc.AccessToken,
		&acc.Timezone,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

// CreateAccount - Insert a new ad account record.
func (r *implRepository) CreateAccount(ctx context.Context, opts repository.CreateAccountOptions) (*model.AdAccount, error) {
	now := time.Now()
	acc := &model.AdAccount{
		ID:          uuid.NewString(),
		AccountID:   opts.AccountID,
		Name:        opts.Name,
		AccessToken: opts.AccessToken,
		Timezone:    opts.Timezone,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	query := `
		INSERT INTO metaads.ad_accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.ExecContext(ctx, query,
		acc.ID, acc.AccountID, acc.Name, acc.AccessToken, acc.Timezone, acc.CreatedAt, acc.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, repository.ErrAccountExists
		}
		r.l.Errorf(ctx, "account.repository.postgre.CreateAccount: Failed to insert account: %v", err)
		return nil, err
	}

	return acc, nil
}

// GetAccountByID - Get account by primary key.
func (r *implRepository) GetAccountByID(ctx context.Context, id string) (*model.AdAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM metaads.ad_accounts WHERE id = $1`

	acc, err := scanAccount(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrAccountNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "account.repository.postgre.GetAccountByID: Failed to get account: %v", err)
		return nil, err
	}

	return acc, nil
}

// GetAccountByAccountID - Get account by its Meta account ID.
func (r *implRepository) GetAccountByAccountID(ctx context.Context, accountID string) (*model.AdAccount, error) {
	query := `SELECT ` + accountColumns + ` FROM metaads.ad_accounts WHERE account_id = $1`

	acc, err := scanAccount(r.db.QueryRowContext(ctx, query, accountID))
	if err == sql.ErrNoRows {
		return nil, repository.ErrAccountNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "account.repository.postgre.GetAccountByAccountID: Failed to get account: %v", err)
		return nil, err
	}

	return acc, nil
}

// ListAccounts - List accounts ordered by creation time, newest first.
func (r *implRepository) ListAccounts(ctx context.Context, opts repository.ListAccountsOptions) ([]model.AdAccount, int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM metaads.ad_accounts`).Scan(&total); err != nil {
		r.l.Errorf(ctx, "account.repository.postgre.ListAccounts: Failed to count accounts: %v", err)
		return nil, 0, err
	}

	query := `
		SELECT ` + accountColumns + `
		FROM metaads.ad_accounts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, opts.Paginate.Limit, opts.Paginate.Offset())
	if err != nil {
		r.l.Errorf(ctx, "account.repository.postgre.ListAccounts: Failed to list accounts: %v", err)
		return nil, 0, err
	}
	defer rows.Close()

	accounts := make([]model.AdAccount, 0)
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			r.l.Errorf(ctx, "account.repository.postgre.ListAccounts: Failed to scan account: %v", err)
			return nil, 0, err
		}
		accounts = append(accounts, *acc)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "account.repository.postgre.ListAccounts: Rows error: %v", err)
		return nil, 0, err
	}

	return accounts, total, nil
}
