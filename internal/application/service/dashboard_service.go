package service

import (
	"context"

	"github.com/mercibizhub/bizhub-api/internal/domain/repository"
)

// DashboardService aggregates bookkeeping totals for the overview screen
type DashboardService struct {
	saleRepo    repository.SaleRepository
	invoiceRepo repository.InvoiceRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(saleRepo repository.SaleRepository, invoiceRepo repository.InvoiceRepository) *DashboardService {
	return &DashboardService{
		saleRepo:    saleRepo,
		invoiceRepo: invoiceRepo,
	}
}

// Summary holds the dashboard aggregates. Amounts are in kobo.
type Summary struct {
	Sales    repository.RecordTotals `json:"sales"`
	Invoices repository.RecordTotals `json:"invoices"`
}

// GetSummary computes totals across the sales and invoices collections
func (s *DashboardService) GetSummary(ctx context.Context) (*Summary, error) {
	saleTotals, err := s.saleRepo.Totals(ctx)
	if err != nil {
		return nil, err
	}

	invoiceTotals, err := s.invoiceRepo.Totals(ctx)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Sales:    *saleTotals,
		Invoices: *invoiceTotals,
	}, nil
}
