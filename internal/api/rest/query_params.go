package rest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/founder-scout/internal/api/shared/constants"
	"github.com/feral-file/founder-scout/internal/domain"
)

// ListFoundersQueryParams holds query parameters for GET /founders
type ListFoundersQueryParams struct {
	// Filters; status accepts repeated or comma-separated values
	Status   []string `form:"status"`
	MinScore *int     `form:"min_score"`

	// Pagination
	Limit  int `form:"limit,default=50"`
	Offset int `form:"offset,default=0"`
}

// Statuses returns the parsed status filter
func (p *ListFoundersQueryParams) Statuses() []domain.FounderStatus {
	var statuses []domain.FounderStatus
	for _, raw := range p.Status {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				statuses = append(statuses, domain.FounderStatus(s))
			}
		}
	}
	return statuses
}

// Validate validates query parameters
func (p *ListFoundersQueryParams) Validate() error {
	for _, s := range p.Statuses() {
		if !domain.IsValidFounderStatus(s) {
			return fmt.Errorf("invalid status: %s", s)
		}
	}
	if p.MinScore != nil && (*p.MinScore < 0 || *p.MinScore > 100) {
		return fmt.Errorf("min_score must be between 0 and 100")
	}
	if p.Limit < 0 {
		return fmt.Errorf("limit must not be negative")
	}
	if p.Offset < 0 {
		return fmt.Errorf("offset must not be negative")
	}
	return nil
}

// ParseListFoundersQuery parses query parameters for GET /founders
func ParseListFoundersQuery(c *gin.Context) (*ListFoundersQueryParams, error) {
	var params ListFoundersQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	// Cap limit
	if params.Limit > constants.MAX_PAGE_SIZE {
		params.Limit = constants.MAX_PAGE_SIZE
	}

	return &params, nil
}

// ListEventsQueryParams holds query parameters for GET /events
type ListEventsQueryParams struct {
	EntityType string `form:"entity_type"`
	Limit      int    `form:"limit,default=50"`
}

// Validate validates query parameters
func (p *ListEventsQueryParams) Validate() error {
	switch domain.EntityType(p.EntityType) {
	case "", domain.EntityTypeFounder, domain.EntityTypeTheme:
	default:
		return fmt.Errorf("invalid entity_type: %s", p.EntityType)
	}
	if p.Limit < 0 {
		return fmt.Errorf("limit must not be negative")
	}
	return nil
}

// EntityTypeFilter returns the entity type filter, nil when unset
func (p *ListEventsQueryParams) EntityTypeFilter() *domain.EntityType {
	if p.EntityType == "" {
		return nil
	}
	t := domain.EntityType(p.EntityType)
	return &t
}

// ParseListEventsQuery parses query parameters for GET /events
func ParseListEventsQuery(c *gin.Context) (*ListEventsQueryParams, error) {
	var params ListEventsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Limit > constants.MAX_PAGE_SIZE {
		params.Limit = constants.MAX_PAGE_SIZE
	}

	return &params, nil
}

// ListRunsQueryParams holds query parameters for GET /pipeline/runs
type ListRunsQueryParams struct {
	Limit int `form:"limit,default=20"`
}

// ParseListRunsQuery parses query parameters for GET /pipeline/runs
func ParseListRunsQuery(c *gin.Context) (*ListRunsQueryParams, error) {
	var params ListRunsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Limit < 0 {
		return nil, fmt.Errorf("limit must not be negative")
	}
	if params.Limit > constants.MAX_PAGE_SIZE {
		params.Limit = constants.MAX_PAGE_SIZE
	}

	return &params, nil
}

// parseID parses a positive numeric path parameter
func parseID(c *gin.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%s must be a positive integer", name)
	}
	return id, nil
}
