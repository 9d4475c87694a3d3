package logic

import (
	"context"
	"errors"

	"github.com/obilobababatunde39/SeedChain-Collective/internal/ledger"
	"github.com/obilobababatunde39/SeedChain-Collective/internal/logger"
	"github.com/obilobababatunde39/SeedChain-Collective/internal/metrics"
)

// InvestmentLogic owns the invest operation and investment lookup.
type InvestmentLogic struct {
	ledger  *ledger.Ledger
	archive Archiver
}

// NewInvestmentLogic creates the investment logic.
func NewInvestmentLogic(l *ledger.Ledger, archive Archiver) *InvestmentLogic {
	return &InvestmentLogic{ledger: l, archive: archive}
}

// Invest records caller's contribution to a project. The underlying transfer
// failure cause is logged here before the bare kind goes back to the caller.
func (i *InvestmentLogic) Invest(ctx context.Context, caller string, projectID, amount uint64) error {
	err := i.ledger.Invest(ctx, caller, projectID, amount)
	metrics.ObserveOperation("invest", err)
	if err != nil {
		if errors.Is(err, ledger.ErrTransferFailed) {
			logger.Error("Asset transfer failed for %s on project %d: %v", caller, projectID, err)
		}
		return err
	}

	raised := i.ledger.GetRaised()
	metrics.SetRaised(raised)
	logger.Info("Investment committed: investor=%s project=%d amount=%d raised=%d",
		caller, projectID, amount, raised)

	inv, ok := i.ledger.GetInvestment(caller, projectID)
	project, pok := i.ledger.GetProject(projectID)
	if ok && pok {
		i.archive.InvestmentCommitted(inv, project, raised)
	}
	return nil
}

// GetInvestment returns the investment record for (investor, projectID), if
// present.
func (i *InvestmentLogic) GetInvestment(investor string, projectID uint64) (ledger.Investment, bool) {
	return i.ledger.GetInvestment(investor, projectID)
}
