package task

import (
	"github.com/go-co-op/gocron/v2"

	"github.com/obilobababatunde39/SeedChain-Collective/internal/archive"
	"github.com/obilobababatunde39/SeedChain-Collective/internal/config"
	"github.com/obilobababatunde39/SeedChain-Collective/internal/ledger"
	"github.com/obilobababatunde39/SeedChain-Collective/internal/logger"
)

// Job is one scheduled unit of background work.
type Job interface {
	GetName() string
	GetSchedule() gocron.JobDefinition
	Execute()
}

// Manager owns the background job scheduler.
type Manager struct {
	scheduler gocron.Scheduler
	ledger    *ledger.Ledger
	archive   *archive.Archiver
	config    *config.Config
}

// NewManager creates a manager with an idle scheduler.
func NewManager(l *ledger.Ledger, archive *archive.Archiver, cfg *config.Config) *Manager {
	s, err := gocron.NewScheduler()
	if err != nil {
		logger.Fatal("Failed to create scheduler: %v", err)
	}

	return &Manager{
		scheduler: s,
		ledger:    l,
		archive:   archive,
		config:    cfg,
	}
}

// Start registers all jobs and starts the scheduler.
func Start(l *ledger.Ledger, archive *archive.Archiver, cfg *config.Config) *Manager {
	manager := NewManager(l, archive, cfg)
	manager.RegisterJobs()
	manager.scheduler.Start()

	logger.Info("Task manager started successfully")
	return manager
}

// RegisterJobs registers every background job.
func (m *Manager) RegisterJobs() {
	m.register(NewSnapshotJob(m.ledger, m.archive, m.config))
	m.register(NewReconcileJob(m.ledger, m.config))
}

func (m *Manager) register(job Job) {
	_, err := m.scheduler.NewJob(
		job.GetSchedule(),
		gocron.NewTask(job.Execute),
		gocron.WithName(job.GetName()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		logger.Error("Failed to register job %s: %v", job.GetName(), err)
	}
}

// Stop shuts the scheduler down.
func (m *Manager) Stop() {
	if err := m.scheduler.Shutdown(); err != nil {
		logger.Error("Failed to shutdown scheduler: %v", err)
	}
	logger.Info("Task manager stopped")
}
