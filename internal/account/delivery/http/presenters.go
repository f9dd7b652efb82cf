package http

import (
	"metaads-srv/internal/account"
	"metaads-srv/internal/model"
	"metaads-srv/pkg/paginator"
	"metaads-srv/pkg/response"
)

type registerAccountReq struct {
	AccountID   string `json:"account_id" binding:"required"`
	Name        string `json:"name,omitempty"`
	AccessToken string `json:"access_token" binding:"required"`
	Timezone    string `json:"timezone,omitempty"`
}

func (r registerAccountReq) toInput() account.RegisterInput {
	return account.RegisterInput{
		AccountID:   r.AccountID,
		Name:        r.Name,
		AccessToken: r.AccessToken,
		Timezone:    r.Timezone,
	}
}

type getAccountReq struct {
	ID string
}

func (r getAccountReq) toInput() account.GetAccountInput {
	return account.GetAccountInput{
		ID: r.ID,
	}
}

type listAccountsReq struct {
	paginator.PaginateQuery
}

func (r listAccountsReq) toInput() account.ListAccountsInput {
	return account.ListAccountsInput{
		Paginate: r.PaginateQuery,
	}
}

type accountObj struct {
	ID        string            `json:"id"`
	AccountID string            `json:"account_id"`
	Name      string            `json:"name"`
	Timezone  string            `json:"timezone,omitempty"`
	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

// newAccountObj deliberately omits the access token from responses.
func newAccountObj(acc model.AdAccount) accountObj {
	return accountObj{
		ID:        acc.ID,
		AccountID: acc.AccountID,
		Name:      acc.Name,
		Timezone:  acc.Timezone,
		CreatedAt: response.DateTime(acc.CreatedAt),
		UpdatedAt: response.DateTime(acc.UpdatedAt),
	}
}

func (h *handler) newAccountResp(o account.AccountOutput) accountObj {
	return newAccountObj(o.Account)
}

type listAccountsResp struct {
	Items []accountObj                `json:"items"`
	Meta  paginator.PaginatorResponse `json:"meta"`
}

func (h *handler) newListAccountsResp(o account.ListAccountsOutput) listAccountsResp {
	items := make([]accountObj, 0, len(o.Accounts))
	for _, acc := range o.Accounts {
		items = append(items, newAccountObj(acc))
	}

	return listAccountsResp{
		Items: items,
		Meta:  o.Paginator.ToResponse(),
	}
}
