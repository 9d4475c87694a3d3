package archive

import (
	"fmt"
	"math"

	"github.com/panjf2000/ants/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/obilobababatunde39/SeedChain-Collective/internal/ledger"
	"github.com/obilobababatunde39/SeedChain-Collective/internal/logger"
	"github.com/obilobababatunde39/SeedChain-Collective/internal/model"
)

// Archiver mirrors committed ledger state into the durable store. Writes
// triggered by operations run asynchronously on a worker pool; the in-memory
// ledger stays the source of truth and the periodic snapshot job converges
// the mirror if an async write is lost.
type Archiver struct {
	db   *gorm.DB
	pool *ants.Pool
}

// NewArchiver creates an archiver backed by a worker pool of the given size.
func NewArchiver(db *gorm.DB, poolSize int) (*Archiver, error) {
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive worker pool: %w", err)
	}
	return &Archiver{db: db, pool: pool}, nil
}

// CampaignChanged mirrors the campaign-level fields after initialize or
// close.
func (a *Archiver) CampaignChanged(s ledger.Snapshot) {
	a.submit(func() {
		if err := upsertCampaign(a.db, s); err != nil {
			logger.Error("Failed to archive campaign state: %v", err)
		}
	})
}

// ProjectAdded mirrors a newly registered project.
func (a *Archiver) ProjectAdded(p ledger.Project) {
	a.submit(func() {
		if err := upsertProject(a.db, p); err != nil {
			logger.Error("Failed to archive project %d: %v", p.ID, err)
		}
	})
}

// InvestmentCommitted mirrors one committed investment together with the
// updated project running total and aggregate raised.
func (a *Archiver) InvestmentCommitted(inv ledger.Investment, p ledger.Project, raised uint64) {
	a.submit(func() {
		err := a.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "investor"}, {Name: "project_id"}},
				DoNothing: true,
			}).Create(investmentRow(inv)).Error; err != nil {
				return err
			}
			if err := upsertProject(tx, p); err != nil {
				return err
			}
			return tx.Model(&model.CampaignModel{}).
				Where("id = ?", model.CampaignRowId).
				Update("raised_amount", signed(raised)).Error
		})
		if err != nil {
			logger.Error("Failed to archive investment by %s in project %d: %v",
				inv.Investor, inv.ProjectID, err)
		}
	})
}

// WriteSnapshot mirrors the whole ledger state synchronously. Used by the
// snapshot job.
func (a *Archiver) WriteSnapshot(s ledger.Snapshot) error {
	return a.db.Transaction(func(tx *gorm.DB) error {
		if err := upsertCampaign(tx, s); err != nil {
			return err
		}
		for _, p := range s.Projects {
			if err := upsertProject(tx, p); err != nil {
				return err
			}
		}
		for _, inv := range s.Investments {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "investor"}, {Name: "project_id"}},
				DoNothing: true,
			}).Create(investmentRow(inv)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Close drains the worker pool.
func (a *Archiver) Close() {
	a.pool.Release()
}

func (a *Archiver) submit(task func()) {
	if err := a.pool.Submit(task); err != nil {
		logger.Error("Failed to submit archive task: %v", err)
	}
}

// Rows carry preset primary keys, so writes must be explicit upserts.
func upsertCampaign(db *gorm.DB, s ledger.Snapshot) error {
	return db.Clauses(clause.OnConflict{UpdateAll: true}).Create(campaignRow(s)).Error
}

func upsertProject(db *gorm.DB, p ledger.Project) error {
	return db.Clauses(clause.OnConflict{UpdateAll: true}).Create(projectRow(p)).Error
}

func campaignRow(s ledger.Snapshot) *model.CampaignModel {
	return &model.CampaignModel{
		Id:            model.CampaignRowId,
		Administrator: s.Administrator,
		TargetAmount:  signed(s.Target),
		Deadline:      signed(s.Deadline),
		Active:        s.Active,
		RaisedAmount:  signed(s.Raised),
	}
}

func projectRow(p ledger.Project) *model.ProjectModel {
	return &model.ProjectModel{
		Id:            signed(p.ID),
		Name:          p.Name,
		Description:   p.Description,
		TargetAmount:  signed(p.TargetAmount),
		CurrentAmount: signed(p.CurrentAmount),
		Status:        p.Status,
	}
}

func investmentRow(inv ledger.Investment) *model.InvestmentModel {
	return &model.InvestmentModel{
		Investor:       inv.Investor,
		ProjectId:      signed(inv.ProjectID),
		Amount:         signed(inv.Amount),
		InvestmentDate: signed(inv.InvestmentDate),
	}
}

// signed narrows a ledger amount to the mirror's bigint columns. Values past
// MaxInt64 clamp to the column maximum instead of wrapping negative.
func signed(v uint64) int64 {
	if v > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(v)
}
