package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ramosacevedo/nomina-backend-go/internal/domain/employee"
	"github.com/ramosacevedo/nomina-backend-go/internal/domain/timesheet"
	"github.com/ramosacevedo/nomina-backend-go/internal/pkg/database"
	"github.com/ramosacevedo/nomina-backend-go/internal/pkg/validator"
)

type EntryServiceImpl struct {
	db           *database.DB
	entryRepo    timesheet.EntryRepository
	employeeRepo employee.EmployeeRepository
	classifier   *Classifier
}

func NewEntryService(
	db *database.DB,
	entryRepo timesheet.EntryRepository,
	employeeRepo employee.EmployeeRepository,
) timesheet.EntryService {
	return &EntryServiceImpl{
		db:           db,
		entryRepo:    entryRepo,
		employeeRepo: employeeRepo,
		classifier:   NewClassifier(),
	}
}

// ========== REGISTRATION ==========

func (s *EntryServiceImpl) Register(ctx context.Context, req timesheet.CreateEntryRequest) (timesheet.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.EntryResponse{}, err
	}

	if _, err := s.employeeRepo.GetByName(ctx, req.EmployeeName); err != nil {
		return timesheet.EntryResponse{}, err
	}

	entry := s.buildEntry(req.EmployeeName, req.Date, req.StartTime, req.EndTime,
		req.IsHoliday, req.IsOvertime, req.NormalizedOvertimeKind(), req.OvertimeHours, RuleRegistration)
	entry.ID = uuid.New().String()

	created, err := s.entryRepo.Create(ctx, entry)
	if err != nil {
		return timesheet.EntryResponse{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return timesheet.ToEntryResponse(created), nil
}

// ========== EDITING ==========

func (s *EntryServiceImpl) Update(ctx context.Context, req timesheet.UpdateEntryRequest) (timesheet.EntryResponse, error) {
	if err := req.Validate(); err != nil {
		return timesheet.EntryResponse{}, err
	}

	existing, err := s.entryRepo.GetByID(ctx, req.ID)
	if err != nil {
		return timesheet.EntryResponse{}, err
	}

	if _, err := s.employeeRepo.GetByName(ctx, req.EmployeeName); err != nil {
		return timesheet.EntryResponse{}, err
	}

	entry := s.buildEntry(req.EmployeeName, req.Date, req.StartTime, req.EndTime,
		req.IsHoliday, req.IsOvertime, req.NormalizedOvertimeKind(), req.OvertimeHours, RuleCalendar)
	entry.ID = existing.ID
	entry.CreatedAt = existing.CreatedAt

	updated, err := s.entryRepo.Update(ctx, entry)
	if err != nil {
		return timesheet.EntryResponse{}, fmt.Errorf("failed to update time entry: %w", err)
	}

	return timesheet.ToEntryResponse(updated), nil
}

// ========== QUERIES ==========

func (s *EntryServiceImpl) GetEntry(ctx context.Context, id string) (timesheet.EntryResponse, error) {
	entry, err := s.entryRepo.GetByID(ctx, id)
	if err != nil {
		return timesheet.EntryResponse{}, err
	}
	return timesheet.ToEntryResponse(entry), nil
}

func (s *EntryServiceImpl) List(ctx context.Context, filter timesheet.EntryFilter) ([]timesheet.EntryResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	from := time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2100, time.December, 31, 0, 0, 0, 0, time.UTC)
	if filter.From != nil {
		from, _ = validator.IsValidDate(*filter.From)
	}
	if filter.To != nil {
		to, _ = validator.IsValidDate(*filter.To)
	}

	var entries []timesheet.Entry
	var err error
	if filter.EmployeeName != nil {
		entries, err = s.entryRepo.ListByEmployee(ctx, *filter.EmployeeName, from, to)
	} else {
		entries, err = s.entryRepo.ListByDateRange(ctx, from, to)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list time entries: %w", err)
	}

	result := make([]timesheet.EntryResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, timesheet.ToEntryResponse(e))
	}
	return result, nil
}

func (s *EntryServiceImpl) Delete(ctx context.Context, id string) error {
	return s.entryRepo.Delete(ctx, id)
}

// ========== HELPERS ==========

func (s *EntryServiceImpl) buildEntry(
	employeeName, dateStr, startStr, endStr string,
	isHoliday, isOvertime bool,
	overtimeKind timesheet.OvertimeKind,
	overtimeHours float64,
	rule Rule,
) timesheet.Entry {
	date, _ := validator.IsValidDate(dateStr)
	start, _ := validator.ParseClock(startStr)
	end, _ := validator.ParseClock(endStr)

	input := ShiftInput{
		Start:        start,
		End:          end,
		IsHoliday:    isHoliday,
		IsOvertime:   isOvertime,
		OvertimeKind: overtimeKind,
	}

	entry := timesheet.Entry{
		EmployeeName: employeeName,
		Date:         date,
		StartTime:    startStr,
		EndTime:      endStr,
		IsHoliday:    isHoliday,
		IsOvertime:   isOvertime,
		Category:     s.classifier.Classify(input, rule),
		TotalHours:   s.classifier.Duration(start, end),
	}
	if isOvertime {
		entry.OvertimeKind = overtimeKind
		entry.OvertimeHours = overtimeHours
	}
	return entry
}
