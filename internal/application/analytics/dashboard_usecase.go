// Package analytics deriva el resumen del dashboard a partir del historial
// de ventas y del libro de inventario. Solo lectura.
package analytics

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/botboy223/printpron/internal/application/dto"
	"github.com/botboy223/printpron/internal/domain/repository"
)

// DashboardUseCase calcula ingreso total y lista de stock bajo.
type DashboardUseCase struct {
	historyRepo repository.SaleHistoryRepository
	stockRepo   repository.StockRepository
	threshold   int
}

// NewDashboardUseCase construye el caso de uso con el umbral de stock bajo.
func NewDashboardUseCase(historyRepo repository.SaleHistoryRepository, stockRepo repository.StockRepository, threshold int) *DashboardUseCase {
	return &DashboardUseCase{historyRepo: historyRepo, stockRepo: stockRepo, threshold: threshold}
}

// GetSummary suma el total de cada venta del historial y filtra el libro de
// inventario por existencia <= umbral, preservando el orden del libro.
func (uc *DashboardUseCase) GetSummary() (*dto.DashboardSummaryDTO, error) {
	records, err := uc.historyRepo.All()
	if err != nil {
		return nil, fmt.Errorf("dashboard: leer historial: %w", err)
	}
	revenue := decimal.Zero
	for _, rec := range records {
		revenue = revenue.Add(rec.Total)
	}

	entries, err := uc.stockRepo.All()
	if err != nil {
		return nil, fmt.Errorf("dashboard: leer inventario: %w", err)
	}
	low := make([]dto.LowStockItemDTO, 0)
	for _, e := range entries {
		if e.Quantity <= uc.threshold {
			low = append(low, dto.LowStockItemDTO{Code: e.Code, Name: e.Name, Quantity: e.Quantity})
		}
	}

	return &dto.DashboardSummaryDTO{
		TotalRevenue: revenue.Round(2),
		LowStock:     low,
		Threshold:    uc.threshold,
	}, nil
}
