package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/founder-scout/internal/api/shared/dto"
	"github.com/feral-file/founder-scout/internal/api/shared/executor"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// ListFounders retrieves founders ranked by latest composite score
	// GET /api/v1/founders?status=<status1>,<status2>&min_score=<score>&limit=<limit>&offset=<offset>
	ListFounders(c *gin.Context)

	// GetFounder retrieves the full founder profile
	// GET /api/v1/founders/:id
	GetFounder(c *gin.Context)

	// UpdateFounderStatus changes the outreach status (requires authentication)
	// PATCH /api/v1/founders/:id/status
	UpdateFounderStatus(c *gin.Context)

	// GetOverview returns the dashboard header aggregates
	// GET /api/v1/stats
	GetOverview(c *gin.Context)

	// ListThemes retrieves themes ordered by emergence score
	// GET /api/v1/themes
	ListThemes(c *gin.Context)

	// GetTheme retrieves a theme with members and history
	// GET /api/v1/themes/:id
	GetTheme(c *gin.Context)

	// ListEvents retrieves emergence events newest first
	// GET /api/v1/events?entity_type=<founder|theme>&limit=<limit>
	ListEvents(c *gin.Context)

	// ListPipelineRuns retrieves pipeline runs newest first
	// GET /api/v1/pipeline/runs?limit=<limit>
	ListPipelineRuns(c *gin.Context)

	// TriggerPipelineRun starts a pipeline run in the background (requires authentication)
	// POST /api/v1/pipeline/run
	TriggerPipelineRun(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{executor: exec}
}

func (h *handler) ListFounders(c *gin.Context) {
	queryParams, err := ParseListFoundersQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ListFounders(
		c.Request.Context(),
		queryParams.Statuses(),
		queryParams.MinScore,
		queryParams.Limit,
		queryParams.Offset,
	)
	if err != nil {
		respondExecutorError(c, err, "Failed to list founders")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetFounder(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondBadRequest(c, "Invalid founder ID", err.Error())
		return
	}

	founder, err := h.executor.GetFounder(c.Request.Context(), id)
	if err != nil {
		respondExecutorError(c, err, "Failed to get founder", zap.Uint64("founder_id", id))
		return
	}

	if founder == nil {
		respondNotFound(c, "Founder not found")
		return
	}

	c.JSON(http.StatusOK, founder)
}

func (h *handler) UpdateFounderStatus(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondBadRequest(c, "Invalid founder ID", err.Error())
		return
	}

	var req dto.UpdateFounderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := req.Validate(); err != nil {
		respondExecutorError(c, err, "Invalid request body")
		return
	}

	response, err := h.executor.UpdateFounderStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondExecutorError(c, err, "Failed to update founder status", zap.Uint64("founder_id", id))
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetOverview(c *gin.Context) {
	response, err := h.executor.GetOverview(c.Request.Context())
	if err != nil {
		respondExecutorError(c, err, "Failed to get overview")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) ListThemes(c *gin.Context) {
	response, err := h.executor.ListThemes(c.Request.Context())
	if err != nil {
		respondExecutorError(c, err, "Failed to list themes")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetTheme(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondBadRequest(c, "Invalid theme ID", err.Error())
		return
	}

	theme, err := h.executor.GetTheme(c.Request.Context(), id)
	if err != nil {
		respondExecutorError(c, err, "Failed to get theme", zap.Uint64("theme_id", id))
		return
	}

	if theme == nil {
		respondNotFound(c, "Theme not found")
		return
	}

	c.JSON(http.StatusOK, theme)
}

func (h *handler) ListEvents(c *gin.Context) {
	queryParams, err := ParseListEventsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ListEvents(c.Request.Context(), queryParams.EntityTypeFilter(), queryParams.Limit)
	if err != nil {
		respondExecutorError(c, err, "Failed to list events")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) ListPipelineRuns(c *gin.Context) {
	queryParams, err := ParseListRunsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ListPipelineRuns(c.Request.Context(), queryParams.Limit)
	if err != nil {
		respondExecutorError(c, err, "Failed to list pipeline runs")
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) TriggerPipelineRun(c *gin.Context) {
	response, err := h.executor.TriggerPipelineRun(c.Request.Context())
	if err != nil {
		respondExecutorError(c, err, "Failed to trigger pipeline run")
		return
	}

	c.JSON(http.StatusAccepted, response)
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "founder-scout-api",
	})
}
