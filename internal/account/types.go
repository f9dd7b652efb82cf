package account

import (
	"metaads-srv/internal/model"
	"metaads-srv/pkg/paginator"
)

type RegisterInput struct {
	AccountID   string
	Name        string
	AccessToken string
	Timezone    string
}

type GetAccountInput struct {
	ID string
}

type ListAccountsInput struct {
	Paginate paginator.PaginateQuery
}

type AccountOutput struct {
	Account model.AdAccount
}

type ListAccountsOutput struct {
	Accounts  []model.AdAccount
	Paginator paginator.Paginator
}
