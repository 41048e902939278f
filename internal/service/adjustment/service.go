package adjustment

import (
	"context"
	"errors"
	"fmt"

	"github.com/ramosacevedo/nomina-backend-go/internal/domain/adjustment"
	"github.com/ramosacevedo/nomina-backend-go/internal/domain/employee"
	"github.com/ramosacevedo/nomina-backend-go/internal/pkg/database"
)

type AdjustmentServiceImpl struct {
	db             *database.DB
	adjustmentRepo adjustment.AdjustmentRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAdjustmentService(
	db *database.DB,
	adjustmentRepo adjustment.AdjustmentRepository,
	employeeRepo employee.EmployeeRepository,
) adjustment.AdjustmentService {
	return &AdjustmentServiceImpl{
		db:             db,
		adjustmentRepo: adjustmentRepo,
		employeeRepo:   employeeRepo,
	}
}

func (s *AdjustmentServiceImpl) GetByEmployee(ctx context.Context, employeeName string) (adjustment.AdjustmentResponse, error) {
	if _, err := s.employeeRepo.GetByName(ctx, employeeName); err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	adj, err := s.adjustmentRepo.GetByEmployee(ctx, employeeName)
	if err != nil {
		if errors.Is(err, adjustment.ErrAdjustmentNotFound) {
			// No stored overrides yet, everything defaults to zero
			return adjustment.ToResponse(adjustment.Adjustment{EmployeeName: employeeName}), nil
		}
		return adjustment.AdjustmentResponse{}, err
	}
	return adjustment.ToResponse(adj), nil
}

func (s *AdjustmentServiceImpl) Upsert(ctx context.Context, req adjustment.UpsertAdjustmentRequest) (adjustment.AdjustmentResponse, error) {
	if err := req.Validate(); err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	if _, err := s.employeeRepo.GetByName(ctx, req.EmployeeName); err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	current, err := s.adjustmentRepo.GetByEmployee(ctx, req.EmployeeName)
	if err != nil {
		if !errors.Is(err, adjustment.ErrAdjustmentNotFound) {
			return adjustment.AdjustmentResponse{}, err
		}
		current = adjustment.Adjustment{EmployeeName: req.EmployeeName}
	}

	if req.SocialSecurity != nil {
		current.SocialSecurity = *req.SocialSecurity
	}
	if req.Insurance != nil {
		current.Insurance = *req.Insurance
	}
	if req.PayrollAdvance != nil {
		current.PayrollAdvance = *req.PayrollAdvance
	}
	if req.OtherDeductions != nil {
		current.OtherDeductions = *req.OtherDeductions
	}
	if req.ProductivityBonus != nil {
		current.ProductivityBonus = *req.ProductivityBonus
	}
	if req.IncapacityDays != nil {
		current.IncapacityDays = *req.IncapacityDays
	}

	saved, err := s.adjustmentRepo.Upsert(ctx, current)
	if err != nil {
		return adjustment.AdjustmentResponse{}, fmt.Errorf("failed to save adjustments: %w", err)
	}
	return adjustment.ToResponse(saved), nil
}

func (s *AdjustmentServiceImpl) List(ctx context.Context) ([]adjustment.AdjustmentResponse, error) {
	adjustments, err := s.adjustmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}

	result := make([]adjustment.AdjustmentResponse, 0, len(adjustments))
	for _, a := range adjustments {
		result = append(result, adjustment.ToResponse(a))
	}
	return result, nil
}
