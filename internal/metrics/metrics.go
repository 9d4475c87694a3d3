package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/obilobababatunde39/SeedChain-Collective/internal/ledger"
)

var operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "seedchain_ledger_operations_total",
	Help: "Ledger operations by operation and outcome.",
}, []string{"operation", "outcome"})

var raisedAmount = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "seedchain_ledger_raised_amount",
	Help: "Aggregate raised across all projects.",
})

// ObserveOperation counts one ledger operation under its outcome label.
func ObserveOperation(operation string, err error) {
	operationsTotal.WithLabelValues(operation, outcome(err)).Inc()
}

// SetRaised updates the aggregate raised gauge.
func SetRaised(v uint64) {
	raisedAmount.Set(float64(v))
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ledger.ErrNotAuthorized):
		return "not_authorized"
	case errors.Is(err, ledger.ErrAlreadyExists):
		return "already_exists"
	case errors.Is(err, ledger.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, ledger.ErrProjectNotFound):
		return "project_not_found"
	case errors.Is(err, ledger.ErrInvestmentClosed):
		return "investment_closed"
	case errors.Is(err, ledger.ErrDuplicateInvestment):
		return "duplicate_investment"
	case errors.Is(err, ledger.ErrInsufficientCapacity):
		return "insufficient_capacity"
	case errors.Is(err, ledger.ErrTransferFailed):
		return "transfer_failed"
	default:
		return "error"
	}
}
