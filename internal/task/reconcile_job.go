package task

import (
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/obilobababatunde39/SeedChain-Collective/internal/config"
	"github.com/obilobababatunde39/SeedChain-Collective/internal/ledger"
	"github.com/obilobababatunde39/SeedChain-Collective/internal/logger"
	"github.com/obilobababatunde39/SeedChain-Collective/internal/metrics"
)

// ReconcileJob audits the ledger's accounting identities: aggregate raised
// must equal the sum of all committed investment amounts, each project's
// running total must equal the sum of its records, and no running total may
// exceed its target. A violation is logged, never repaired.
type ReconcileJob struct {
	ledger *ledger.Ledger
	config *config.Config
}

// NewReconcileJob creates the reconcile job.
func NewReconcileJob(l *ledger.Ledger, cfg *config.Config) *ReconcileJob {
	return &ReconcileJob{
		ledger: l,
		config: cfg,
	}
}

// GetName returns the job name.
func (j *ReconcileJob) GetName() string {
	return "ledger_reconcile"
}

// GetSchedule returns the schedule definition.
func (j *ReconcileJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Task.ReconcileInterval) * time.Second)
}

// Execute runs the audit against a consistent snapshot.
func (j *ReconcileJob) Execute() {
	s := j.ledger.TakeSnapshot()

	var total uint64
	perProject := make(map[uint64]uint64)
	for _, inv := range s.Investments {
		total += inv.Amount
		perProject[inv.ProjectID] += inv.Amount
	}

	violations := 0
	if s.Raised != total {
		logger.Error("Reconcile: aggregate raised %d does not match investment sum %d", s.Raised, total)
		violations++
	}
	for _, p := range s.Projects {
		if p.CurrentAmount != perProject[p.ID] {
			logger.Error("Reconcile: project %d current amount %d does not match record sum %d",
				p.ID, p.CurrentAmount, perProject[p.ID])
			violations++
		}
		if p.CurrentAmount > p.TargetAmount {
			logger.Error("Reconcile: project %d over target: %d > %d",
				p.ID, p.CurrentAmount, p.TargetAmount)
			violations++
		}
	}

	metrics.SetRaised(s.Raised)
	if violations == 0 {
		logger.Debug("Reconcile passed: raised=%d investments=%d", s.Raised, len(s.Investments))
	}
}
