package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/obilobababatunde39/SeedChain-Collective/internal/ledger"
)

// CallerHeader carries the caller identity, supplied by the execution
// environment in front of this service.
const CallerHeader = "X-Caller"

// Response is the common JSON envelope.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SuccessResponse writes a success envelope.
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse writes a failure envelope.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Data:    nil,
	})
}

// LedgerErrorResponse maps a ledger error kind onto an HTTP status.
func LedgerErrorResponse(c *gin.Context, err error) {
	ErrorResponse(c, statusForError(err), err.Error())
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, ledger.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, ledger.ErrProjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, ledger.ErrAlreadyExists),
		errors.Is(err, ledger.ErrDuplicateInvestment),
		errors.Is(err, ledger.ErrInvestmentClosed):
		return http.StatusConflict
	case errors.Is(err, ledger.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, ledger.ErrInsufficientCapacity):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ledger.ErrTransferFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// callerIdentity extracts the caller identity header, failing the request
// when it is absent.
func callerIdentity(c *gin.Context) (string, bool) {
	caller := c.GetHeader(CallerHeader)
	if caller == "" {
		ErrorResponse(c, http.StatusBadRequest, "missing "+CallerHeader+" header")
		return "", false
	}
	return caller, true
}
