package http

import (
	"metaads-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// RegisterAccount stores a new ad account so its insights can be synced.
func (h *handler) RegisterAccount(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRegisterAccountRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "account.delivery.http.RegisterAccount: processRegisterAccountRequest failed: %v", err)
		response.BadRequest(c, "Invalid request body")
		return
	}

	o, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "account.delivery.http.RegisterAccount: usecase Register failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAccountResp(o))
}

// GetAccount returns one registered account.
func (h *handler) GetAccount(c *gin.Context) {
	ctx := c.Request.Context()

	req := h.processGetAccountRequest(c)

	o, err := h.uc.GetAccount(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "account.delivery.http.GetAccount: usecase GetAccount failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAccountResp(o))
}

// ListAccounts returns registered accounts with pagination.
func (h *handler) ListAccounts(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListAccountsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "account.delivery.http.ListAccounts: processListAccountsRequest failed: %v", err)
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	o, err := h.uc.ListAccounts(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "account.delivery.http.ListAccounts: usecase ListAccounts failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListAccountsResp(o))
}
