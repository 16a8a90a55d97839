package master

import (
	"context"
	"time"

	"github.com/sistema-nomina/nomina-backend-go/internal/domain/wage"
)

type WageServiceImpl struct {
	wageRepo wage.WageRepository
}

func NewWageService(wageRepo wage.WageRepository) wage.WageService {
	return &WageServiceImpl{wageRepo: wageRepo}
}

func (s *WageServiceImpl) Create(ctx context.Context, req wage.CreateWageRequest) (wage.WageResponse, error) {
	if err := req.Validate(); err != nil {
		return wage.WageResponse{}, err
	}

	effectiveFrom, _ := time.Parse("2006-01-02", req.EffectiveFrom)

	record, err := s.wageRepo.Create(ctx, wage.MinimumWage{
		Amount:        req.Amount,
		EffectiveFrom: effectiveFrom,
		Current:       req.Current,
	})
	if err != nil {
		return wage.WageResponse{}, err
	}

	return toWageResponse(record), nil
}

func (s *WageServiceImpl) List(ctx context.Context) ([]wage.WageResponse, error) {
	records, err := s.wageRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]wage.WageResponse, 0, len(records))
	for _, record := range records {
		resp = append(resp, toWageResponse(record))
	}
	return resp, nil
}

func (s *WageServiceImpl) GetEffective(ctx context.Context, ref time.Time) (wage.WageResponse, error) {
	record, err := s.wageRepo.GetEffective(ctx, ref)
	if err != nil {
		return wage.WageResponse{}, err
	}
	return toWageResponse(record), nil
}

func toWageResponse(record wage.MinimumWage) wage.WageResponse {
	return wage.WageResponse{
		ID:            record.ID,
		Amount:        record.Amount,
		EffectiveFrom: record.EffectiveFrom.Format("2006-01-02"),
		Current:       record.Current,
	}
}
