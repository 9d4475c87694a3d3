package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/obilobababatunde39/SeedChain-Collective/internal/logic"
)

type CampaignHandler struct {
	campaignLogic *logic.CampaignLogic
}

func NewCampaignHandler(campaignLogic *logic.CampaignLogic) *CampaignHandler {
	return &CampaignHandler{campaignLogic: campaignLogic}
}

type initializeRequest struct {
	Administrator string `json:"administrator" binding:"required,max=128"`
	Target        uint64 `json:"target"`
	Deadline      uint64 `json:"deadline"`
}

// Initialize sets the administrator and campaign parameters and opens the
// round.
func (h *CampaignHandler) Initialize(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req initializeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.campaignLogic.Initialize(caller, req.Administrator, req.Target, req.Deadline); err != nil {
		LedgerErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "campaign initialized", gin.H{
		"administrator": req.Administrator,
		"target":        req.Target,
		"deadline":      req.Deadline,
	})
}

// Close deactivates the round. Closing an already-closed round succeeds.
func (h *CampaignHandler) Close(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	if err := h.campaignLogic.CloseRound(caller); err != nil {
		LedgerErrorResponse(c, err)
		return
	}

	SuccessResponse(c, http.StatusOK, "investment round closed", nil)
}

// GetCampaign returns the campaign-level state.
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "", gin.H{
		"administrator": h.campaignLogic.Administrator(),
		"target":        h.campaignLogic.Target(),
		"deadline":      h.campaignLogic.Deadline(),
		"active":        h.campaignLogic.Active(),
		"raised":        h.campaignLogic.Raised(),
	})
}
