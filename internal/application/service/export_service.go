package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mercibizhub/bizhub-api/internal/domain/entity"
	"github.com/mercibizhub/bizhub-api/internal/domain/repository"
	"github.com/xuri/excelize/v2"
)

// XLSXMIMEType is the content type of the generated spreadsheets.
const XLSXMIMEType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportService renders bookkeeping collections as xlsx downloads
type ExportService struct {
	saleRepo    repository.SaleRepository
	invoiceRepo repository.InvoiceRepository
}

// NewExportService creates a new export service
func NewExportService(saleRepo repository.SaleRepository, invoiceRepo repository.InvoiceRepository) *ExportService {
	return &ExportService{
		saleRepo:    saleRepo,
		invoiceRepo: invoiceRepo,
	}
}

// ExportOutput is a rendered spreadsheet ready for download
type ExportOutput struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ExportSales writes every matching sale into a spreadsheet, one row per
// sale, amounts converted from kobo to decimals.
func (s *ExportService) ExportSales(ctx context.Context, params *repository.SaleFilterParams) (*ExportOutput, error) {
	sales, err := s.saleRepo.ListAll(ctx, params)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sales"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Date", "Product", "Quantity", "Unit Cost", "Total Cost", "Paid", "Outstanding", "Method", "Status", "Customer"}
	if err := writeHeaderRow(f, sheet, headers); err != nil {
		return nil, err
	}

	for i, sale := range sales {
		row := i + 2
		cells := []interface{}{
			sale.CreatedAt.Format("02/01/2006"),
			sale.ProductName,
			sale.Quantity,
			float64(sale.UnitCost) / 100,
			float64(sale.TotalCost) / 100,
			float64(sale.Paid) / 100,
			float64(sale.OutstandingBalance) / 100,
			sale.PaymentMethod.String(),
			sale.PaymentStatus.String(),
			sale.CustomerName,
		}
		if err := writeRow(f, sheet, row, cells); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return &ExportOutput{
		FileName:    fmt.Sprintf("sales-%s.xlsx", time.Now().Format("2006-01-02")),
		ContentType: XLSXMIMEType,
		Content:     buf.Bytes(),
	}, nil
}

// ExportInvoices writes every matching invoice into a spreadsheet, one
// row per invoice line so the file stays flat and filterable.
func (s *ExportService) ExportInvoices(ctx context.Context, params *repository.InvoiceFilterParams) (*ExportOutput, error) {
	invoices, err := s.invoiceRepo.ListAll(ctx, params)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Invoices"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Date", "Customer", "Product", "Quantity", "Unit Cost", "Line Total", "Invoice Total", "Paid", "Outstanding", "Method", "Status"}
	if err := writeHeaderRow(f, sheet, headers); err != nil {
		return nil, err
	}

	row := 2
	for _, invoice := range invoices {
		lines := invoice.Lines
		if len(lines) == 0 {
			lines = []entity.InvoiceLine{{}}
		}
		for _, line := range lines {
			cells := []interface{}{
				invoice.CreatedAt.Format("02/01/2006"),
				invoice.CustomerName,
				line.ProductName,
				line.Quantity,
				float64(line.UnitCost) / 100,
				float64(line.TotalCost) / 100,
				float64(invoice.TotalCost) / 100,
				float64(invoice.TotalPaid) / 100,
				float64(invoice.OutstandingBalance) / 100,
				invoice.PaymentMethod.String(),
				invoice.PaymentStatus.String(),
			}
			if err := writeRow(f, sheet, row, cells); err != nil {
				return nil, err
			}
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return &ExportOutput{
		FileName:    fmt.Sprintf("invoices-%s.xlsx", time.Now().Format("2006-01-02")),
		ContentType: XLSXMIMEType,
		Content:     buf.Bytes(),
	}, nil
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	for i, v := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}
