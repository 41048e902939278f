package fixtures

import (
	"github.com/ramosacevedo/nomina-backend-go/internal/domain/employee"
	"github.com/shopspring/decimal"
)

// ==========================================
// DEFAULT ROSTER
// ==========================================

// All current employees share the same legal minimum rate table.
var (
	baseSalary               = decimal.NewFromInt(1423000)
	dailyRate                = decimal.NewFromInt(47433)
	hourlyRate               = decimal.NewFromInt(5929)
	overtimeDayRate          = decimal.NewFromInt(7411)
	nightSurchargeRate       = decimal.NewFromInt(2075)
	overtimeNightRate        = decimal.NewFromInt(9190)
	holidayDayRate           = decimal.NewFromInt(10376)
	holidayOvertimeDayRate   = decimal.NewFromInt(11858)
	holidayNightRate         = decimal.NewFromInt(12451)
	holidayOvertimeNightRate = decimal.NewFromInt(13934)
)

func standardRates(name, jobTitle, nationalID string) employee.Employee {
	return employee.Employee{
		Name:                     name,
		JobTitle:                 jobTitle,
		NationalID:               nationalID,
		BaseSalary:               baseSalary,
		DailyRate:                dailyRate,
		HourlyRate:               hourlyRate,
		OvertimeDayRate:          overtimeDayRate,
		NightSurchargeRate:       nightSurchargeRate,
		OvertimeNightRate:        overtimeNightRate,
		HolidayDayRate:           holidayDayRate,
		HolidayOvertimeDayRate:   holidayOvertimeDayRate,
		HolidayNightRate:         holidayNightRate,
		HolidayOvertimeNightRate: holidayOvertimeNightRate,
	}
}

// DefaultRoster returns the seed rate cards inserted on first start.
func DefaultRoster() employee.Roster {
	return employee.Roster{
		standardRates("DIANA CAMILA CARABALI ACEVEDO", "AUXILIAR ADMINISTRATIVA", "1144211949"),
		standardRates("GENESIS VELASQUEZ CRIADO", "AUXILIAR OPERATIVA", "1065665108"),
		standardRates("LUISA FERNANDA GARZON AVENDAÑO", "AUXILIAR OPERATIVA", "66964158"),
		standardRates("LUZ VIVIANA CASAS LOZANO", "AUXILIAR OPERATIVA", "38610313"),
		standardRates("JEIMMY YAMILE MOJICA AVILA", "AUXILIAR OPERATIVA", "1073153022"),
		standardRates("BRAYAN ALBERTO OSPINA", "AUXILIAR OPERATIVA", "1108639714"),
	}
}
