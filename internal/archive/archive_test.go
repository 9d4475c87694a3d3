package archive

import (
	"math"
	"testing"

	"github.com/obilobababatunde39/SeedChain-Collective/internal/ledger"
)

func TestRowConversionsNeverGoNegative(t *testing.T) {
	campaign := campaignRow(ledger.Snapshot{
		Administrator: "admin",
		Target:        math.MaxUint64,
		Deadline:      math.MaxUint64,
		Raised:        math.MaxUint64,
	})
	if campaign.TargetAmount != math.MaxInt64 || campaign.Deadline != math.MaxInt64 ||
		campaign.RaisedAmount != math.MaxInt64 {
		t.Fatalf("campaign row not clamped: %+v", campaign)
	}

	project := projectRow(ledger.Project{
		ID:            1,
		TargetAmount:  math.MaxUint64,
		CurrentAmount: math.MaxUint64,
	})
	if project.TargetAmount < 0 || project.CurrentAmount < 0 {
		t.Fatalf("project row went negative: %+v", project)
	}
	if project.TargetAmount != math.MaxInt64 || project.CurrentAmount != math.MaxInt64 {
		t.Fatalf("project row not clamped: %+v", project)
	}

	investment := investmentRow(ledger.Investment{
		Investor:       "alice",
		ProjectID:      1,
		Amount:         math.MaxUint64,
		InvestmentDate: math.MaxUint64,
	})
	if investment.Amount != math.MaxInt64 || investment.InvestmentDate != math.MaxInt64 {
		t.Fatalf("investment row not clamped: %+v", investment)
	}

	// Values inside the signed range pass through unchanged.
	small := investmentRow(ledger.Investment{Investor: "bob", ProjectID: 2, Amount: 400, InvestmentDate: 7})
	if small.ProjectId != 2 || small.Amount != 400 || small.InvestmentDate != 7 {
		t.Fatalf("in-range values altered: %+v", small)
	}
}
