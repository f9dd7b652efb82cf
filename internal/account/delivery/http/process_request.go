package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processRegisterAccountRequest(c *gin.Context) (registerAccountReq, error) {
	var req registerAccountReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}

	return req, nil
}

func (h *handler) processGetAccountRequest(c *gin.Context) getAccountReq {
	return getAccountReq{
		ID: c.Param("account_id"),
	}
}

func (h *handler) processListAccountsRequest(c *gin.Context) (listAccountsReq, error) {
	var req listAccountsReq

	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}

	return req, nil
}
