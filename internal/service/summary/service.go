package summary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ramosacevedo/nomina-backend-go/internal/domain/adjustment"
	"github.com/ramosacevedo/nomina-backend-go/internal/domain/employee"
	"github.com/ramosacevedo/nomina-backend-go/internal/domain/summary"
	"github.com/ramosacevedo/nomina-backend-go/internal/domain/timesheet"
	"github.com/ramosacevedo/nomina-backend-go/internal/pkg/database"
	"github.com/ramosacevedo/nomina-backend-go/internal/pkg/payslip"
)

type SummaryServiceImpl struct {
	db             *database.DB
	summaryRepo    summary.SummaryRepository
	entryRepo      timesheet.EntryRepository
	employeeRepo   employee.EmployeeRepository
	adjustmentRepo adjustment.AdjustmentRepository
	aggregator     *Aggregator
}

func NewSummaryService(
	db *database.DB,
	summaryRepo summary.SummaryRepository,
	entryRepo timesheet.EntryRepository,
	employeeRepo employee.EmployeeRepository,
	adjustmentRepo adjustment.AdjustmentRepository,
) summary.SummaryService {
	return &SummaryServiceImpl{
		db:             db,
		summaryRepo:    summaryRepo,
		entryRepo:      entryRepo,
		employeeRepo:   employeeRepo,
		adjustmentRepo: adjustmentRepo,
		aggregator:     NewAggregator(),
	}
}

// ========== COMPUTATION ==========

func (s *SummaryServiceImpl) BuildForPeriod(ctx context.Context, req summary.PeriodRequest) ([]summary.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	p := req.Period()

	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	result := make([]summary.SummaryResponse, 0, len(employees))
	for _, emp := range employees {
		computed, err := s.buildOne(ctx, emp, p)
		if err != nil {
			return nil, err
		}
		result = append(result, summary.ToSummaryResponse(computed))
	}
	return result, nil
}

func (s *SummaryServiceImpl) buildOne(ctx context.Context, emp employee.Employee, p summary.Period) (summary.PeriodSummary, error) {
	entries, err := s.entryRepo.ListByEmployee(ctx, emp.Name, p.Start, p.End)
	if err != nil {
		return summary.PeriodSummary{}, fmt.Errorf("failed to list time entries: %w", err)
	}

	adj, err := s.adjustmentRepo.GetByEmployee(ctx, emp.Name)
	if err != nil {
		if !errors.Is(err, adjustment.ErrAdjustmentNotFound) {
			return summary.PeriodSummary{}, fmt.Errorf("failed to get adjustments: %w", err)
		}
		adj = adjustment.Adjustment{EmployeeName: emp.Name}
	}

	return s.aggregator.BuildSummary(emp, p, entries, adj)
}

// ========== PERSISTENCE ==========

func (s *SummaryServiceImpl) Save(ctx context.Context, req summary.SaveSummaryRequest) (summary.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return summary.SummaryResponse{}, err
	}

	emp, err := s.employeeRepo.GetByName(ctx, req.EmployeeName)
	if err != nil {
		return summary.SummaryResponse{}, err
	}

	computed, err := s.buildOne(ctx, emp, req.Period())
	if err != nil {
		return summary.SummaryResponse{}, err
	}
	computed.SavedAt = time.Now()

	saved, err := s.summaryRepo.Save(ctx, computed)
	if err != nil {
		return summary.SummaryResponse{}, fmt.Errorf("failed to save summary: %w", err)
	}
	return summary.ToSummaryResponse(saved), nil
}

func (s *SummaryServiceImpl) ListSaved(ctx context.Context, req summary.PeriodRequest) ([]summary.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	summaries, err := s.summaryRepo.ListByPeriod(ctx, req.Period())
	if err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}

	result := make([]summary.SummaryResponse, 0, len(summaries))
	for _, sum := range summaries {
		result = append(result, summary.ToSummaryResponse(sum))
	}
	return result, nil
}

func (s *SummaryServiceImpl) GetSaved(ctx context.Context, id string) (summary.SummaryResponse, error) {
	sum, err := s.summaryRepo.GetByID(ctx, id)
	if err != nil {
		return summary.SummaryResponse{}, err
	}
	return summary.ToSummaryResponse(sum), nil
}

// ========== EDITING ==========

func (s *SummaryServiceImpl) Edit(ctx context.Context, req summary.EditSummaryRequest) (summary.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return summary.SummaryResponse{}, err
	}

	current, err := s.summaryRepo.GetByID(ctx, req.ID)
	if err != nil {
		return summary.SummaryResponse{}, err
	}

	emp, err := s.employeeRepo.GetByName(ctx, current.EmployeeName)
	if err != nil {
		return summary.SummaryResponse{}, err
	}

	applyEdit(&current, req)
	current = s.aggregator.RecomputeTotals(current, emp)
	current.SavedAt = time.Now()

	updated, err := s.summaryRepo.Update(ctx, current)
	if err != nil {
		return summary.SummaryResponse{}, fmt.Errorf("failed to update summary: %w", err)
	}
	return summary.ToSummaryResponse(updated), nil
}

func (s *SummaryServiceImpl) Delete(ctx context.Context, id string) error {
	return s.summaryRepo.Delete(ctx, id)
}

// ========== PAY SLIP ==========

func (s *SummaryServiceImpl) RenderPaySlip(ctx context.Context, id string) ([]byte, error) {
	sum, err := s.summaryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByName(ctx, sum.EmployeeName)
	if err != nil {
		return nil, err
	}

	pdf, err := payslip.Render(sum, emp)
	if err != nil {
		return nil, fmt.Errorf("failed to render pay slip: %w", err)
	}
	return pdf, nil
}

// ========== HELPERS ==========

func applyEdit(s *summary.PeriodSummary, req summary.EditSummaryRequest) {
	if req.NormalHours != nil {
		s.Hours.Normal = *req.NormalHours
	}
	if req.OvertimeDayHours != nil {
		s.Hours.OvertimeDay = *req.OvertimeDayHours
	}
	if req.NightSurchargeHours != nil {
		s.Hours.NightSurcharge = *req.NightSurchargeHours
	}
	if req.OvertimeNightHours != nil {
		s.Hours.OvertimeNight = *req.OvertimeNightHours
	}
	if req.HolidayDayHours != nil {
		s.Hours.HolidayDay = *req.HolidayDayHours
	}
	if req.HolidayOvertimeDayHours != nil {
		s.Hours.HolidayOvertimeDay = *req.HolidayOvertimeDayHours
	}
	if req.HolidayNightHours != nil {
		s.Hours.HolidayNight = *req.HolidayNightHours
	}
	if req.HolidayOvertimeNightHours != nil {
		s.Hours.HolidayOvertimeNight = *req.HolidayOvertimeNightHours
	}
	if req.SocialSecurity != nil {
		s.Deductions.SocialSecurity = *req.SocialSecurity
	}
	if req.Insurance != nil {
		s.Deductions.Insurance = *req.Insurance
	}
	if req.PayrollAdvance != nil {
		s.Deductions.PayrollAdvance = *req.PayrollAdvance
	}
	if req.OtherDeductions != nil {
		s.Deductions.Other = *req.OtherDeductions
	}
	if req.ProductivityBonus != nil {
		s.ProductivityBonus = *req.ProductivityBonus
	}
	if req.IncapacityDays != nil {
		s.IncapacityDays = *req.IncapacityDays
	}
}
