package logic

import (
	"context"
	"errors"
	"testing"

	"github.com/obilobababatunde39/SeedChain-Collective/internal/ledger"
	"github.com/obilobababatunde39/SeedChain-Collective/internal/transfer"
)

type recordingArchiver struct {
	campaignChanges int
	projectsAdded   []ledger.Project
	investments     []ledger.Investment
	lastRaised      uint64
}

func (r *recordingArchiver) CampaignChanged(_ ledger.Snapshot) {
	r.campaignChanges++
}

func (r *recordingArchiver) ProjectAdded(p ledger.Project) {
	r.projectsAdded = append(r.projectsAdded, p)
}

func (r *recordingArchiver) InvestmentCommitted(inv ledger.Investment, _ ledger.Project, raised uint64) {
	r.investments = append(r.investments, inv)
	r.lastRaised = raised
}

func newTestStack(t *testing.T, svc ledger.AssetTransferService) (*CampaignLogic, *ProjectLogic, *InvestmentLogic, *recordingArchiver) {
	t.Helper()
	l := ledger.New("admin", svc, func() uint64 { return 7 })
	arch := &recordingArchiver{}
	cl := NewCampaignLogic(l, arch)
	pl := NewProjectLogic(l, arch)
	il := NewInvestmentLogic(l, arch)
	if err := cl.Initialize("admin", "admin", 1_000_000, 5000); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return cl, pl, il, arch
}

func TestCommittedOperationsReachTheArchive(t *testing.T) {
	cl, pl, il, arch := newTestStack(t, transfer.Static{})

	if arch.campaignChanges != 1 {
		t.Fatalf("expected 1 campaign archive write after initialize, got %d", arch.campaignChanges)
	}

	if err := pl.AddProject("admin", 1, "p", "d", 1000); err != nil {
		t.Fatalf("add project: %v", err)
	}
	if len(arch.projectsAdded) != 1 || arch.projectsAdded[0].ID != 1 {
		t.Fatalf("expected project 1 archived, got %+v", arch.projectsAdded)
	}

	if err := il.Invest(context.Background(), "alice", 1, 400); err != nil {
		t.Fatalf("invest: %v", err)
	}
	if len(arch.investments) != 1 {
		t.Fatalf("expected 1 investment archived, got %d", len(arch.investments))
	}
	inv := arch.investments[0]
	if inv.Investor != "alice" || inv.Amount != 400 || inv.InvestmentDate != 7 {
		t.Fatalf("unexpected archived investment: %+v", inv)
	}
	if arch.lastRaised != 400 {
		t.Fatalf("expected archived raised 400, got %d", arch.lastRaised)
	}

	if err := cl.CloseRound("admin"); err != nil {
		t.Fatalf("close: %v", err)
	}
	if arch.campaignChanges != 2 {
		t.Fatalf("expected 2 campaign archive writes after close, got %d", arch.campaignChanges)
	}
}

func TestFailedOperationsDoNotReachTheArchive(t *testing.T) {
	_, pl, il, arch := newTestStack(t, transfer.Static{Err: errors.New("custody unreachable")})

	if err := pl.AddProject("mallory", 1, "p", "d", 1000); !errors.Is(err, ledger.ErrNotAuthorized) {
		t.Fatalf("expected ErrNotAuthorized, got %v", err)
	}
	if len(arch.projectsAdded) != 0 {
		t.Fatalf("unauthorized project reached the archive: %+v", arch.projectsAdded)
	}

	if err := pl.AddProject("admin", 1, "p", "d", 1000); err != nil {
		t.Fatalf("add project: %v", err)
	}
	if err := il.Invest(context.Background(), "alice", 1, 400); !errors.Is(err, ledger.ErrTransferFailed) {
		t.Fatalf("expected ErrTransferFailed, got %v", err)
	}
	if len(arch.investments) != 0 {
		t.Fatalf("failed investment reached the archive: %+v", arch.investments)
	}
}
