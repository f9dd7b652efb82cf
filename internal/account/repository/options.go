package repository

import "metaads-srv/pkg/paginator"

type CreateAccountOptions struct {
	AccountID   string
	Name        string
	AccessToken string
	Timezone    string
}

type ListAccountsOptions struct {
	Paginate paginator.PaginateQuery
}
