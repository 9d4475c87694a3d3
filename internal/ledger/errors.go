package ledger

import "errors"

// Every failure of a mutating operation is one of these kinds. Callers match
// with errors.Is; the kinds carry no payload.
var (
	ErrNotAuthorized        = errors.New("caller is not the administrator")
	ErrAlreadyExists        = errors.New("project id already exists")
	ErrInvalidAmount        = errors.New("amount must be greater than zero")
	ErrProjectNotFound      = errors.New("project does not exist")
	ErrInvestmentClosed     = errors.New("investment round is not active")
	ErrDuplicateInvestment  = errors.New("investor already holds an investment in this project")
	ErrInsufficientCapacity = errors.New("amount exceeds remaining project capacity")
	ErrTransferFailed       = errors.New("asset transfer failed")
)
