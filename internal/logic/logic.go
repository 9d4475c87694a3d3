package logic

import (
	"github.com/obilobababatunde39/SeedChain-Collective/internal/ledger"
)

// Archiver receives committed ledger state for the durable mirror.
// Implemented by archive.Archiver.
type Archiver interface {
	CampaignChanged(s ledger.Snapshot)
	ProjectAdded(p ledger.Project)
	InvestmentCommitted(inv ledger.Investment, p ledger.Project, raised uint64)
}
