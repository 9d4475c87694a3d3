package task

import (
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/obilobababatunde39/SeedChain-Collective/internal/archive"
	"github.com/obilobababatunde39/SeedChain-Collective/internal/config"
	"github.com/obilobababatunde39/SeedChain-Collective/internal/ledger"
	"github.com/obilobababatunde39/SeedChain-Collective/internal/logger"
)

// SnapshotJob periodically mirrors the full ledger state into the durable
// store, converging the mirror if any async archive write was lost.
type SnapshotJob struct {
	ledger  *ledger.Ledger
	archive *archive.Archiver
	config  *config.Config
}

// NewSnapshotJob creates the snapshot job.
func NewSnapshotJob(l *ledger.Ledger, archive *archive.Archiver, cfg *config.Config) *SnapshotJob {
	return &SnapshotJob{
		ledger:  l,
		archive: archive,
		config:  cfg,
	}
}

// GetName returns the job name.
func (j *SnapshotJob) GetName() string {
	return "ledger_snapshot"
}

// GetSchedule returns the schedule definition.
func (j *SnapshotJob) GetSchedule() gocron.JobDefinition {
	return gocron.DurationJob(time.Duration(j.config.Task.SnapshotInterval) * time.Second)
}

// Execute mirrors the whole ledger state.
func (j *SnapshotJob) Execute() {
	s := j.ledger.TakeSnapshot()
	if err := j.archive.WriteSnapshot(s); err != nil {
		logger.Error("Failed to write ledger snapshot: %v", err)
		return
	}
	logger.Debug("Ledger snapshot written: projects=%d investments=%d raised=%d",
		len(s.Projects), len(s.Investments), s.Raised)
}
