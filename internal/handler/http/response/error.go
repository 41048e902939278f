package response

import (
	"errors"
	"net/http"

	"github.com/ramosacevedo/nomina-backend-go/internal/domain/adjustment"
	"github.com/ramosacevedo/nomina-backend-go/internal/domain/employee"
	"github.com/ramosacevedo/nomina-backend-go/internal/domain/summary"
	"github.com/ramosacevedo/nomina-backend-go/internal/domain/timesheet"
	"github.com/ramosacevedo/nomina-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeNameExists):
		Conflict(w, "Employee name already registered")

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrEntryNotFound):
		NotFound(w, "Time entry not found")
	case errors.Is(err, timesheet.ErrInvalidOvertimeKind):
		BadRequest(w, "Overtime kind must be diurna or nocturna", nil)

	// Summary domain errors
	case errors.Is(err, summary.ErrSummaryNotFound):
		NotFound(w, "Period summary not found")
	case errors.Is(err, summary.ErrUnsupportedSplit):
		UnprocessableEntity(w, "A shift in the period crosses both day/night boundaries")

	// Adjustment domain errors
	case errors.Is(err, adjustment.ErrAdjustmentNotFound):
		NotFound(w, "Adjustment not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
