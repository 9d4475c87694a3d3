package logic

import (
	"github.com/obilobababatunde39/SeedChain-Collective/internal/ledger"
	"github.com/obilobababatunde39/SeedChain-Collective/internal/logger"
	"github.com/obilobababatunde39/SeedChain-Collective/internal/metrics"
)

// ProjectLogic owns project registration and lookup.
type ProjectLogic struct {
	ledger  *ledger.Ledger
	archive Archiver
}

// NewProjectLogic creates the project logic.
func NewProjectLogic(l *ledger.Ledger, archive Archiver) *ProjectLogic {
	return &ProjectLogic{ledger: l, archive: archive}
}

// AddProject registers a new fundable project.
func (p *ProjectLogic) AddProject(caller string, projectID uint64, name, description string, targetAmount uint64) error {
	err := p.ledger.AddProject(caller, projectID, name, description, targetAmount)
	metrics.ObserveOperation("add_project", err)
	if err != nil {
		return err
	}

	logger.Info("Project %d registered: name=%q target=%d", projectID, name, targetAmount)
	if project, ok := p.ledger.GetProject(projectID); ok {
		p.archive.ProjectAdded(project)
	}
	return nil
}

// GetProject returns the project with the given id, if present.
func (p *ProjectLogic) GetProject(projectID uint64) (ledger.Project, bool) {
	return p.ledger.GetProject(projectID)
}
