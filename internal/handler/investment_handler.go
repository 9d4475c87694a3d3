package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/obilobababatunde39/SeedChain-Collective/internal/logic"
)

type InvestmentHandler struct {
	investmentLogic *logic.InvestmentLogic
}

func NewInvestmentHandler(investmentLogic *logic.InvestmentLogic) *InvestmentHandler {
	return &InvestmentHandler{investmentLogic: investmentLogic}
}

type investRequest struct {
	ProjectId uint64 `json:"projectId"`
	Amount    uint64 `json:"amount"`
}

// Invest commits the caller's contribution to a project.
func (h *InvestmentHandler) Invest(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req investRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.investmentLogic.Invest(c.Request.Context(), caller, req.ProjectId, req.Amount); err != nil {
		LedgerErrorResponse(c, err)
		return
	}

	investment, _ := h.investmentLogic.GetInvestment(caller, req.ProjectId)
	SuccessResponse(c, http.StatusCreated, "investment committed", gin.H{"investment": investment})
}

// GetInvestment returns one investor's record for one project.
func (h *InvestmentHandler) GetInvestment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid project id")
		return
	}
	investor := c.Param("investor")

	investment, ok := h.investmentLogic.GetInvestment(investor, id)
	if !ok {
		ErrorResponse(c, http.StatusNotFound, "investment not found")
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{"investment": investment})
}
