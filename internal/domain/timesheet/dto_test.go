package timesheet

import (
	"testing"

	"github.com/ramosacevedo/nomina-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateRequest() CreateEntryRequest {
	return CreateEntryRequest{
		EmployeeName: "LUZ VIVIANA CASAS LOZANO",
		Date:         "2026-03-10",
		StartTime:    "08:00",
		EndTime:      "17:00",
	}
}

func TestCreateEntryRequest_Validate_OK(t *testing.T) {
	req := validCreateRequest()
	assert.NoError(t, req.Validate())
}

func TestCreateEntryRequest_Validate_MidnightEnd(t *testing.T) {
	req := validCreateRequest()
	req.StartTime = "23:00"
	req.EndTime = "24:00"
	assert.NoError(t, req.Validate())
}

// "24:00" is a valid literal on either endpoint; as a start it means
// midnight at the close of the entry's date.
func TestCreateEntryRequest_Validate_MidnightStart(t *testing.T) {
	req := validCreateRequest()
	req.StartTime = "24:00"
	req.EndTime = "08:00"
	assert.NoError(t, req.Validate())
}

func TestCreateEntryRequest_Validate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateEntryRequest)
		field  string
	}{
		{"blank employee name", func(r *CreateEntryRequest) { r.EmployeeName = "  " }, "employee_name"},
		{"bad date", func(r *CreateEntryRequest) { r.Date = "10/03/2026" }, "date"},
		{"malformed start", func(r *CreateEntryRequest) { r.StartTime = "8 am" }, "start_time"},
		{"start past midnight", func(r *CreateEntryRequest) { r.StartTime = "24:01" }, "start_time"},
		{"end past midnight", func(r *CreateEntryRequest) { r.EndTime = "24:01" }, "end_time"},
		{"minute out of range", func(r *CreateEntryRequest) { r.EndTime = "12:60" }, "end_time"},
		{
			"unknown overtime kind",
			func(r *CreateEntryRequest) {
				r.IsOvertime = true
				r.OvertimeKind = "vespertina"
			},
			"overtime_kind",
		},
		{
			"negative overtime hours",
			func(r *CreateEntryRequest) {
				r.IsOvertime = true
				r.OvertimeHours = -1
			},
			"overtime_hours",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)

			err := req.Validate()
			require.Error(t, err)

			var errs validator.ValidationErrors
			require.ErrorAs(t, err, &errs)
			assert.Contains(t, errs.ToMap(), tt.field)
		})
	}
}

func TestCreateEntryRequest_NormalizedOvertimeKind(t *testing.T) {
	req := validCreateRequest()
	req.IsOvertime = true

	assert.Equal(t, OvertimeKindDay, req.NormalizedOvertimeKind())

	req.OvertimeKind = string(OvertimeKindNight)
	assert.Equal(t, OvertimeKindNight, req.NormalizedOvertimeKind())
}

func TestCategory_Label(t *testing.T) {
	assert.Equal(t, "Hora Normal Nocturna", CategoryNightSurcharge.Label())
	assert.Equal(t, "Hora Extra Feriada Nocturna", CategoryHolidayOvertimeNight.Label())
	assert.Equal(t, "XYZ", Category("XYZ").Label())
}

func TestCategory_IsValid(t *testing.T) {
	assert.True(t, CategoryNormal.IsValid())
	assert.True(t, CategoryHolidayOvertimeDay.IsValid())
	assert.False(t, Category("HXX").IsValid())
}
