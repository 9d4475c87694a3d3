package logic

import (
	"github.com/obilobababatunde39/SeedChain-Collective/internal/ledger"
	"github.com/obilobababatunde39/SeedChain-Collective/internal/logger"
	"github.com/obilobababatunde39/SeedChain-Collective/internal/metrics"
)

// CampaignLogic owns the campaign-level operations and queries.
type CampaignLogic struct {
	ledger  *ledger.Ledger
	archive Archiver
}

// NewCampaignLogic creates the campaign logic.
func NewCampaignLogic(l *ledger.Ledger, archive Archiver) *CampaignLogic {
	return &CampaignLogic{ledger: l, archive: archive}
}

// Initialize sets the administrator and campaign parameters and activates
// the round.
func (c *CampaignLogic) Initialize(caller, newAdministrator string, target, deadline uint64) error {
	err := c.ledger.Initialize(caller, newAdministrator, target, deadline)
	metrics.ObserveOperation("initialize", err)
	if err != nil {
		return err
	}

	logger.Info("Campaign initialized: administrator=%s target=%d deadline=%d",
		newAdministrator, target, deadline)
	c.archive.CampaignChanged(c.ledger.TakeSnapshot())
	return nil
}

// CloseRound deactivates the campaign.
func (c *CampaignLogic) CloseRound(caller string) error {
	err := c.ledger.CloseInvestmentRound(caller)
	metrics.ObserveOperation("close_round", err)
	if err != nil {
		return err
	}

	logger.Info("Investment round closed by %s", caller)
	c.archive.CampaignChanged(c.ledger.TakeSnapshot())
	return nil
}

func (c *CampaignLogic) Administrator() string {
	return c.ledger.GetAdministrator()
}

func (c *CampaignLogic) Target() uint64 {
	return c.ledger.GetTarget()
}

func (c *CampaignLogic) Deadline() uint64 {
	return c.ledger.GetDeadline()
}

func (c *CampaignLogic) Raised() uint64 {
	return c.ledger.GetRaised()
}

func (c *CampaignLogic) Active() bool {
	return c.ledger.IsActive()
}
