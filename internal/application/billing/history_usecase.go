package billing

import (
	"github.com/shopspring/decimal"

	"github.com/botboy223/printpron/internal/application/dto"
	"github.com/botboy223/printpron/internal/domain/repository"
)

// HistoryUseCase lista el historial de ventas para la vista de facturas.
// El historial es append-only; aquí solo hay lectura.
type HistoryUseCase struct {
	historyRepo repository.SaleHistoryRepository
	catalogRepo repository.CatalogRepository
}

// NewHistoryUseCase construye el caso de uso.
func NewHistoryUseCase(historyRepo repository.SaleHistoryRepository, catalogRepo repository.CatalogRepository) *HistoryUseCase {
	return &HistoryUseCase{historyRepo: historyRepo, catalogRepo: catalogRepo}
}

// List devuelve las ventas en orden de finalización, con cada línea
// enriquecida por el catálogo actual (nombre de relleno si el producto ya
// no existe, igual que la vista de historial del mostrador).
func (uc *HistoryUseCase) List() (*dto.SaleHistoryResponse, error) {
	records, err := uc.historyRepo.All()
	if err != nil {
		return nil, err
	}
	out := &dto.SaleHistoryResponse{Sales: make([]dto.SaleRecordResponse, 0, len(records))}
	for _, rec := range records {
		resp := dto.SaleRecordResponse{
			ID:        rec.ID,
			Timestamp: rec.Timestamp,
			Total:     rec.Total,
			Lines:     make([]dto.SaleLineResponse, 0, len(rec.Lines)),
		}
		for _, l := range rec.Lines {
			name := "Producto desconocido"
			price := decimal.Zero
			if p, err := uc.catalogRepo.Get(l.Code); err == nil && p != nil {
				name = p.Name
				price = p.Price
			}
			resp.Lines = append(resp.Lines, dto.SaleLineResponse{
				Code:      l.Code,
				Name:      name,
				Quantity:  l.Quantity,
				LineTotal: price.Mul(decimal.NewFromInt(int64(l.Quantity))),
			})
		}
		out.Sales = append(out.Sales, resp)
	}
	return out, nil
}
