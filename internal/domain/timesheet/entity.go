package timesheet

import "time"

// Category enum - surcharge category assigned to a shift
type Category string

const (
	CategoryNormal               Category = "Normal"
	CategoryOvertimeDay          Category = "HED"
	CategoryNightSurcharge       Category = "HNN"
	CategoryOvertimeNight        Category = "HEN"
	CategoryHolidayDay           Category = "HFD"
	CategoryHolidayOvertimeDay   Category = "HEFD"
	CategoryHolidayNight         Category = "HFN"
	CategoryHolidayOvertimeNight Category = "HEFN"
)

// categoryLabels maps category codes to display labels
var categoryLabels = map[Category]string{
	CategoryNormal:               "Hora Normal",
	CategoryOvertimeDay:          "Hora Extra Diurna",
	CategoryNightSurcharge:       "Hora Normal Nocturna",
	CategoryOvertimeNight:        "Hora Extra Nocturna",
	CategoryHolidayDay:           "Hora Feriada Diurna",
	CategoryHolidayOvertimeDay:   "Hora Extra Feriada Diurna",
	CategoryHolidayNight:         "Hora Feriada Nocturna",
	CategoryHolidayOvertimeNight: "Hora Extra Feriada Nocturna",
}

// Label returns the human-readable name for the category. Unknown
// codes are returned as-is.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// IsValid reports whether c is one of the eight known categories.
func (c Category) IsValid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// OvertimeKind enum - declared kind of overtime on a shift
type OvertimeKind string

const (
	OvertimeKindDay   OvertimeKind = "diurna"
	OvertimeKindNight OvertimeKind = "nocturna"
)

// Entry - A recorded work shift for one employee on one date.
// Start and end are wall-clock "HH:MM" strings; "24:00" is accepted as
// an end time and means midnight at the close of the date. A shift
// whose end is before its start crosses into the next day.
type Entry struct {
	ID            string
	EmployeeName  string
	Date          time.Time
	StartTime     string
	EndTime       string
	IsHoliday     bool
	IsOvertime    bool
	OvertimeKind  OvertimeKind
	OvertimeHours float64

	// Derived at classification time
	Category   Category
	TotalHours float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
