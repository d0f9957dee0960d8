package dto

import (
	"fmt"

	apierrors "github.com/feral-file/founder-scout/internal/api/shared/errors"
	"github.com/feral-file/founder-scout/internal/domain"
)

// UpdateFounderStatusRequest represents the request body for changing a founder's outreach status
type UpdateFounderStatusRequest struct {
	Status domain.FounderStatus `json:"status"`
}

// Validate validates the request body
func (r *UpdateFounderStatusRequest) Validate() error {
	if r.Status == "" {
		return apierrors.NewValidationError("status is required")
	}

	if !domain.IsValidFounderStatus(r.Status) {
		return apierrors.NewValidationError(fmt.Sprintf("invalid status: %s. Must be one of to_contact, watching, contacted, pass", r.Status))
	}

	return nil
}
