package ledger

import (
	"context"
	"fmt"
	"sync"
)

// AssetTransferService moves value from an investor into ledger custody. The
// outcome is atomic from the ledger's point of view: a nil return means the
// transfer fully committed, any error means it did not happen. The ledger
// never retries.
type AssetTransferService interface {
	Transfer(ctx context.Context, from string, amount uint64) error
}

// HeightFunc reports the ledger's current logical height, recorded on each
// investment as its investment date. Chain deployments wire this to the
// latest block number.
type HeightFunc func() uint64

// ProjectStatusFunding is the status every project is created with. No
// operation transitions it; the field is descriptive metadata only.
const ProjectStatusFunding = "funding"

// Project is an individually fundable initiative with its own target and
// running total.
type Project struct {
	ID            uint64 `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	TargetAmount  uint64 `json:"targetAmount"`
	CurrentAmount uint64 `json:"currentAmount"`
	Status        string `json:"status"`
}

// Investment is the immutable receipt of one investor's contribution to one
// project. At most one exists per (investor, project) pair.
type Investment struct {
	Investor       string `json:"investor"`
	ProjectID      uint64 `json:"projectId"`
	Amount         uint64 `json:"amount"`
	InvestmentDate uint64 `json:"investmentDate"`
}

type investmentKey struct {
	investor  string
	projectID uint64
}

// Snapshot is a consistent copy of the whole store, taken under the store
// lock. Used by the durable mirror and the reconcile job.
type Snapshot struct {
	Administrator string
	Target        uint64
	Deadline      uint64
	Active        bool
	Raised        uint64
	Projects      []Project
	Investments   []Investment
}

// Ledger is the pooled-investment state machine. All state lives behind one
// mutex and every operation runs as an indivisible transaction against it;
// a failed operation leaves the store untouched.
type Ledger struct {
	mu       sync.Mutex
	transfer AssetTransferService
	height   HeightFunc

	administrator string
	target        uint64
	deadline      uint64
	active        bool
	raised        uint64
	projects      map[uint64]*Project
	investments   map[investmentKey]*Investment
}

// New creates an empty ledger. The deployer identity holds the administrator
// slot until Initialize hands it over.
func New(deployer string, transfer AssetTransferService, height HeightFunc) *Ledger {
	return &Ledger{
		transfer:      transfer,
		height:        height,
		administrator: deployer,
		projects:      make(map[uint64]*Project),
		investments:   make(map[investmentKey]*Investment),
	}
}

// Initialize sets the administrator, campaign target and deadline, and
// activates the round. Only the current administrator may call it. Note that
// this guard does not stop the administrator from re-initializing later:
// parameters are overwritten and the round re-activates, while projects and
// investments persist.
func (l *Ledger) Initialize(caller, newAdministrator string, target, deadline uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if caller != l.administrator {
		return ErrNotAuthorized
	}

	l.administrator = newAdministrator
	l.target = target
	l.deadline = deadline
	l.active = true
	return nil
}

// AddProject registers a new fundable project. Administrator only; a
// duplicate project id is rejected, never overwritten. Target amounts are
// not validated against anything at creation time.
func (l *Ledger) AddProject(caller string, projectID uint64, name, description string, targetAmount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if caller != l.administrator {
		return ErrNotAuthorized
	}
	if _, ok := l.projects[projectID]; ok {
		return ErrAlreadyExists
	}

	l.projects[projectID] = &Project{
		ID:           projectID,
		Name:         name,
		Description:  description,
		TargetAmount: targetAmount,
		Status:       ProjectStatusFunding,
	}
	return nil
}

// Invest records caller's contribution of amount to projectID. Preconditions
// are checked in a fixed order and the first failure wins with no side
// effects. On success the asset transfer is committed strictly before any
// local mutation; the investment record, project running total and aggregate
// raised then update as one unit.
func (l *Ledger) Invest(ctx context.Context, caller string, projectID, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.active {
		return ErrInvestmentClosed
	}
	if amount == 0 {
		return ErrInvalidAmount
	}
	project, ok := l.projects[projectID]
	if !ok {
		return ErrProjectNotFound
	}
	// Filling the project exactly to its target is allowed. Compare against
	// remaining capacity rather than summing, which could wrap uint64; the
	// subtraction cannot underflow since CurrentAmount never exceeds
	// TargetAmount.
	if amount > project.TargetAmount-project.CurrentAmount {
		return ErrInsufficientCapacity
	}
	key := investmentKey{investor: caller, projectID: projectID}
	if _, ok := l.investments[key]; ok {
		return ErrDuplicateInvestment
	}

	if err := l.transfer.Transfer(ctx, caller, amount); err != nil {
		return fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}

	l.investments[key] = &Investment{
		Investor:       caller,
		ProjectID:      projectID,
		Amount:         amount,
		InvestmentDate: l.height(),
	}
	project.CurrentAmount += amount
	l.raised += amount
	return nil
}

// CloseInvestmentRound deactivates the campaign. Administrator only.
// Closing an already-closed round succeeds and changes nothing.
func (l *Ledger) CloseInvestmentRound(caller string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if caller != l.administrator {
		return ErrNotAuthorized
	}

	l.active = false
	return nil
}

// GetInvestment returns the investment record for (investor, projectID), if
// one exists.
func (l *Ledger) GetInvestment(investor string, projectID uint64) (Investment, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	inv, ok := l.investments[investmentKey{investor: investor, projectID: projectID}]
	if !ok {
		return Investment{}, false
	}
	return *inv, true
}

// GetProject returns the project with the given id, if one exists.
func (l *Ledger) GetProject(projectID uint64) (Project, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	project, ok := l.projects[projectID]
	if !ok {
		return Project{}, false
	}
	return *project, true
}

// GetAdministrator returns the current administrator identity.
func (l *Ledger) GetAdministrator() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.administrator
}

// GetTarget returns the campaign target.
func (l *Ledger) GetTarget() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.target
}

// GetDeadline returns the stored deadline marker. It is opaque to the
// ledger and never compared against a clock.
func (l *Ledger) GetDeadline() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.deadline
}

// GetRaised returns the aggregate raised across all projects.
func (l *Ledger) GetRaised() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.raised
}

// IsActive reports whether the round is accepting investments.
func (l *Ledger) IsActive() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active
}

// TakeSnapshot copies the entire store under the lock.
func (l *Ledger) TakeSnapshot() Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := Snapshot{
		Administrator: l.administrator,
		Target:        l.target,
		Deadline:      l.deadline,
		Active:        l.active,
		Raised:        l.raised,
		Projects:      make([]Project, 0, len(l.projects)),
		Investments:   make([]Investment, 0, len(l.investments)),
	}
	for _, p := range l.projects {
		s.Projects = append(s.Projects, *p)
	}
	for _, inv := range l.investments {
		s.Investments = append(s.Investments, *inv)
	}
	return s
}
