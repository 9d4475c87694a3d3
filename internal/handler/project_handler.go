package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/obilobababatunde39/SeedChain-Collective/internal/logic"
)

type ProjectHandler struct {
	projectLogic *logic.ProjectLogic
}

func NewProjectHandler(projectLogic *logic.ProjectLogic) *ProjectHandler {
	return &ProjectHandler{projectLogic: projectLogic}
}

type addProjectRequest struct {
	Id           uint64 `json:"id"`
	Name         string `json:"name" binding:"required,max=64"`
	Description  string `json:"description" binding:"max=256"`
	TargetAmount uint64 `json:"targetAmount"`
}

// AddProject registers a new fundable project. Administrator only.
func (h *ProjectHandler) AddProject(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req addProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.projectLogic.AddProject(caller, req.Id, req.Name, req.Description, req.TargetAmount); err != nil {
		LedgerErrorResponse(c, err)
		return
	}

	project, _ := h.projectLogic.GetProject(req.Id)
	SuccessResponse(c, http.StatusCreated, "project registered", gin.H{"project": project})
}

// GetProject returns a single project.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		ErrorResponse(c, http.StatusBadRequest, "invalid project id")
		return
	}

	project, ok := h.projectLogic.GetProject(id)
	if !ok {
		ErrorResponse(c, http.StatusNotFound, "project not found")
		return
	}

	SuccessResponse(c, http.StatusOK, "", gin.H{"project": project})
}
