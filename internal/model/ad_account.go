package model

import "time"

// AdAccount is a registered Meta ad account.
type AdAccount struct {
	ID string

	// AccountID is the Graph API ad account ID, e.g. "act_123456789".
	AccountID string
	Name      string

	// AccessToken is the token used for this account's insight syncs.
	AccessToken string
	Timezone    string

	CreatedAt time.Time
	UpdatedAt time.Time
}
