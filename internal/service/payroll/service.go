package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sistema-nomina/nomina-backend-go/internal/domain/audit"
	"github.com/sistema-nomina/nomina-backend-go/internal/domain/deduction"
	"github.com/sistema-nomina/nomina-backend-go/internal/domain/employee"
	"github.com/sistema-nomina/nomina-backend-go/internal/domain/payroll"
	"github.com/sistema-nomina/nomina-backend-go/internal/domain/wage"
	"github.com/sistema-nomina/nomina-backend-go/internal/pkg/email"
	"github.com/sistema-nomina/nomina-backend-go/internal/pkg/pdf"
)

type PayrollServiceImpl struct {
	txManager     payroll.TxManager
	payrollRepo   payroll.PayrollRepository
	employeeRepo  employee.EmployeeRepository
	deductionRepo deduction.DeductionRepository
	wageRepo      wage.WageRepository
	auditRepo     audit.AuditRepository
	emailService  email.EmailService
	concepts      payroll.ConceptSet
	rules         payroll.Rules
}

func NewPayrollService(
	txManager payroll.TxManager,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	deductionRepo deduction.DeductionRepository,
	wageRepo wage.WageRepository,
	auditRepo audit.AuditRepository,
	emailService email.EmailService,
	concepts payroll.ConceptSet,
	rules payroll.Rules,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		txManager:     txManager,
		payrollRepo:   payrollRepo,
		employeeRepo:  employeeRepo,
		deductionRepo: deductionRepo,
		wageRepo:      wageRepo,
		auditRepo:     auditRepo,
		emailService:  emailService,
		concepts:      concepts,
		rules:         rules,
	}
}

// ========== PERIODS ==========

func (s *PayrollServiceImpl) CreatePeriod(ctx context.Context, req payroll.CreatePeriodRequest) (payroll.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PeriodResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}
	if !emp.Active {
		return payroll.PeriodResponse{}, employee.ErrEmployeeInactive
	}

	period, err := s.payrollRepo.CreatePeriod(ctx, payroll.Period{
		EmployeeID: req.EmployeeID,
		Month:      req.Month,
		Year:       req.Year,
		BaseSalary: emp.BaseSalary,
	})
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	return toPeriodResponse(period), nil
}

func (s *PayrollServiceImpl) GetStatement(ctx context.Context, periodID string) (payroll.StatementResponse, error) {
	period, err := s.payrollRepo.GetPeriodByID(ctx, periodID)
	if err != nil {
		return payroll.StatementResponse{}, err
	}

	items, err := s.payrollRepo.ListLineItems(ctx, periodID)
	if err != nil {
		return payroll.StatementResponse{}, err
	}

	return payroll.StatementResponse{
		Period: toPeriodResponse(period),
		Items:  toLineItemResponses(items),
	}, nil
}

func (s *PayrollServiceImpl) ListPeriods(ctx context.Context, filter payroll.PeriodFilter) (payroll.ListPeriodResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}

	periods, totalCount, err := s.payrollRepo.ListPeriods(ctx, filter)
	if err != nil {
		return payroll.ListPeriodResponse{}, err
	}

	data := make([]payroll.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		data = append(data, toPeriodResponse(p))
	}

	return payroll.ListPeriodResponse{
		Data:       data,
		TotalCount: totalCount,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *PayrollServiceImpl) DeletePeriod(ctx context.Context, periodID string) error {
	return s.payrollRepo.DeletePeriod(ctx, periodID)
}

// ========== RECALCULATION ==========

// Recalculate regenerates the period from scratch: it locks the period row,
// wipes its line items, rebuilds them from the employee's current salary,
// dependents and deductions, and stores the new totals. Everything runs in
// one transaction so readers never observe a half-built settlement.
func (s *PayrollServiceImpl) Recalculate(ctx context.Context, periodID string, force bool, actor string) (payroll.Totals, error) {
	if !s.rules.BonusCapMultiplier.IsPositive() {
		return payroll.Totals{}, payroll.ErrBonusCapNotConfigured
	}

	var totals payroll.Totals
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		period, err := s.payrollRepo.GetPeriodForUpdate(ctx, periodID)
		if err != nil {
			return err
		}
		if period.Closed {
			return payroll.ErrPeriodClosed
		}
		if period.Emailed && !force {
			return payroll.ErrPeriodLocked
		}

		emp, err := s.employeeRepo.GetByID(ctx, period.EmployeeID)
		if err != nil {
			return err
		}

		// A period created before the employee's salary was set adopts the
		// employee's current salary on its first recalculation.
		baseSalary := period.BaseSalary
		if baseSalary.IsZero() {
			baseSalary = emp.BaseSalary
		}
		if !baseSalary.IsPositive() {
			return payroll.ErrNoBaseSalary
		}

		ref := period.ReferenceDate()
		minimumWage, err := s.wageRepo.GetEffective(ctx, ref)
		if err != nil {
			return err
		}

		if err := s.payrollRepo.DeleteLineItems(ctx, periodID); err != nil {
			return err
		}

		credits := decimal.Zero
		debits := decimal.Zero

		addLine := func(concept payroll.Concept, amount decimal.Decimal) error {
			if concept.ID == "" {
				return payroll.ErrConceptNotFound
			}
			if _, err := s.payrollRepo.CreateLineItem(ctx, payroll.LineItem{
				PeriodID:  periodID,
				ConceptID: concept.ID,
				Amount:    amount,
			}); err != nil {
				return err
			}
			if concept.Debit {
				debits = debits.Add(amount)
			} else {
				credits = credits.Add(amount)
			}
			return nil
		}

		if err := addLine(s.concepts.BaseSalary, baseSalary); err != nil {
			return err
		}

		dependents, err := s.employeeRepo.ListDependents(ctx, period.EmployeeID)
		if err != nil {
			return err
		}
		qualifying := payroll.QualifyingDependents(dependents, ref, s.rules.MaxBonusDependents)
		bonus := payroll.FamilyBonus(baseSalary, minimumWage.Amount, len(qualifying), s.rules)
		if bonus.IsPositive() {
			if err := addLine(s.concepts.FamilyBonus, bonus); err != nil {
				return err
			}
		}

		withholding := payroll.Withholding(baseSalary, s.rules)
		if err := addLine(s.concepts.Withholding, withholding); err != nil {
			return err
		}

		deductions, err := s.deductionRepo.ListActiveByEmployee(ctx, period.EmployeeID)
		if err != nil {
			return err
		}
		for _, d := range deductions {
			if !d.AppliesTo(period.Month, period.Year) {
				continue
			}
			if err := addLine(s.concepts.Deductions[d.Type.Label()], d.Amount); err != nil {
				return err
			}
		}

		net := credits.Sub(debits)
		if err := s.payrollRepo.UpdatePeriodTotals(ctx, periodID, baseSalary, credits, debits, net); err != nil {
			return err
		}

		// Force reopens delivery: the emailed receipt no longer matches.
		if force && period.Emailed {
			if err := s.payrollRepo.ClearEmailed(ctx, periodID); err != nil {
				return err
			}
		}

		totals = payroll.Totals{
			TotalCredits: credits,
			TotalDebits:  debits,
			NetPay:       net,
		}
		return nil
	})
	if err != nil {
		return payroll.Totals{}, err
	}

	detail := fmt.Sprintf("net_pay=%s force=%t", totals.NetPay.StringFixed(2), force)
	s.recordAudit(ctx, actor, audit.ActionRecalculate, periodID, &detail)

	return totals, nil
}

func (s *PayrollServiceImpl) RecalculateMonth(ctx context.Context, req payroll.RecalculateMonthRequest, actor string) (payroll.BatchRecalculationResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.BatchRecalculationResponse{}, err
	}

	// Missing periods for active employees are created first so a month run
	// covers the whole workforce.
	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return payroll.BatchRecalculationResponse{}, err
	}
	for _, emp := range employees {
		_, err := s.payrollRepo.GetPeriodByEmployeeMonth(ctx, emp.ID, req.Month, req.Year)
		if err == nil {
			continue
		}
		if !errors.Is(err, payroll.ErrPeriodNotFound) {
			return payroll.BatchRecalculationResponse{}, err
		}
		if _, err := s.payrollRepo.CreatePeriod(ctx, payroll.Period{
			EmployeeID: emp.ID,
			Month:      req.Month,
			Year:       req.Year,
			BaseSalary: emp.BaseSalary,
		}); err != nil && !errors.Is(err, payroll.ErrPeriodAlreadyExists) {
			return payroll.BatchRecalculationResponse{}, err
		}
	}

	ids, err := s.payrollRepo.ListOpenPeriodIDs(ctx, req.Month, req.Year)
	if err != nil {
		return payroll.BatchRecalculationResponse{}, err
	}

	resp := payroll.BatchRecalculationResponse{
		Month:   req.Month,
		Year:    req.Year,
		Results: make([]payroll.BatchResult, 0, len(ids)),
	}

	// Each period is its own transaction; one bad record must not sink the
	// rest of the month.
	for _, id := range ids {
		result := payroll.BatchResult{PeriodID: id}
		if period, err := s.payrollRepo.GetPeriodByID(ctx, id); err == nil {
			result.EmployeeID = period.EmployeeID
		}

		totals, err := s.Recalculate(ctx, id, false, actor)
		if err != nil {
			msg := err.Error()
			result.Error = &msg
			resp.Failed++
			slog.Warn("period recalculation failed",
				slog.String("period_id", id),
				slog.Int("month", req.Month),
				slog.Int("year", req.Year),
				slog.String("error", msg),
			)
		} else {
			result.Totals = &totals
			resp.Recalculated++
		}
		resp.Results = append(resp.Results, result)
	}

	return resp, nil
}

// ========== CLOSE AND DELIVERY ==========

func (s *PayrollServiceImpl) Close(ctx context.Context, periodID string, actor string) error {
	err := s.txManager.WithinTx(ctx, func(ctx context.Context) error {
		period, err := s.payrollRepo.GetPeriodForUpdate(ctx, periodID)
		if err != nil {
			return err
		}
		if period.Closed {
			return payroll.ErrPeriodClosed
		}
		return s.payrollRepo.ClosePeriod(ctx, periodID)
	})
	if err != nil {
		return err
	}

	s.recordAudit(ctx, actor, audit.ActionClose, periodID, nil)
	return nil
}

func (s *PayrollServiceImpl) SendReceipt(ctx context.Context, periodID string, actor string) error {
	period, err := s.payrollRepo.GetPeriodByID(ctx, periodID)
	if err != nil {
		return err
	}
	if !period.Closed {
		return payroll.ErrPeriodNotClosed
	}

	emp, err := s.employeeRepo.GetByID(ctx, period.EmployeeID)
	if err != nil {
		return err
	}
	if emp.Email == nil || *emp.Email == "" {
		return payroll.ErrNoRecipientEmail
	}

	items, err := s.payrollRepo.ListLineItems(ctx, periodID)
	if err != nil {
		return err
	}

	receiptItems := make([]pdf.ReceiptItem, 0, len(items))
	for _, item := range items {
		ri := pdf.ReceiptItem{Amount: item.Amount}
		if item.ConceptName != nil {
			ri.ConceptName = *item.ConceptName
		}
		if item.Debit != nil {
			ri.Debit = *item.Debit
		}
		receiptItems = append(receiptItems, ri)
	}

	receiptPDF, err := pdf.Receipt(pdf.ReceiptData{
		EmployeeName: emp.FullName(),
		NationalID:   emp.NationalID,
		Month:        period.Month,
		Year:         period.Year,
		Items:        receiptItems,
		TotalCredits: period.TotalCredits,
		TotalDebits:  period.TotalDebits,
		NetPay:       period.NetPay,
	})
	if err != nil {
		return fmt.Errorf("failed to render receipt: %w", err)
	}

	if err := s.emailService.SendReceipt(*emp.Email, emp.FullName(), period.Month, period.Year, receiptPDF); err != nil {
		return fmt.Errorf("failed to send receipt: %w", err)
	}

	if err := s.payrollRepo.MarkEmailed(ctx, periodID, time.Now()); err != nil {
		return err
	}

	detail := fmt.Sprintf("to=%s", *emp.Email)
	s.recordAudit(ctx, actor, audit.ActionSendReceipt, periodID, &detail)
	return nil
}

// ========== CONCEPTS ==========

func (s *PayrollServiceImpl) ListConcepts(ctx context.Context) ([]payroll.ConceptResponse, error) {
	concepts, err := s.payrollRepo.ListConcepts(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]payroll.ConceptResponse, 0, len(concepts))
	for _, c := range concepts {
		resp = append(resp, payroll.ConceptResponse{
			ID:                 c.ID,
			Name:               c.Name,
			Debit:              c.Debit,
			Recurring:          c.Recurring,
			InWithholdingBase:  c.InWithholdingBase,
			InYearEndBonusBase: c.InYearEndBonusBase,
		})
	}

	return resp, nil
}

// ========== HELPERS ==========

// recordAudit runs outside the calculation transaction; a failed audit write
// never rolls back a finished settlement.
func (s *PayrollServiceImpl) recordAudit(ctx context.Context, actor string, action audit.Action, periodID string, detail *string) {
	err := s.auditRepo.Record(ctx, audit.Entry{
		Actor:    actor,
		Action:   action,
		Entity:   "payroll_period",
		EntityID: periodID,
		Detail:   detail,
	})
	if err != nil {
		slog.Warn("failed to record audit entry",
			slog.String("action", string(action)),
			slog.String("period_id", periodID),
			slog.String("error", err.Error()),
		)
	}
}

func toPeriodResponse(p payroll.Period) payroll.PeriodResponse {
	resp := payroll.PeriodResponse{
		ID:           p.ID,
		EmployeeID:   p.EmployeeID,
		Month:        p.Month,
		Year:         p.Year,
		BaseSalary:   p.BaseSalary,
		TotalCredits: p.TotalCredits,
		TotalDebits:  p.TotalDebits,
		NetPay:       p.NetPay,
		Closed:       p.Closed,
		Emailed:      p.Emailed,
	}
	if p.EmployeeName != nil {
		resp.EmployeeName = *p.EmployeeName
	}
	if p.EmailedAt != nil {
		formatted := p.EmailedAt.Format(time.RFC3339)
		resp.EmailedAt = &formatted
	}
	return resp
}

func toLineItemResponses(items []payroll.LineItem) []payroll.LineItemResponse {
	resp := make([]payroll.LineItemResponse, 0, len(items))
	for _, item := range items {
		li := payroll.LineItemResponse{
			ID:     item.ID,
			Amount: item.Amount,
		}
		if item.ConceptName != nil {
			li.ConceptName = *item.ConceptName
		}
		if item.Debit != nil {
			li.Debit = *item.Debit
		}
		resp = append(resp, li)
	}
	return resp
}
