package dto

import "github.com/shopspring/decimal"

// LowStockItemDTO producto con existencia en o bajo el umbral, en orden del libro.
type LowStockItemDTO struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// DashboardSummaryDTO resumen del dashboard: ingreso acumulado del historial
// y lista de stock bajo.
type DashboardSummaryDTO struct {
	TotalRevenue decimal.Decimal   `json:"total_revenue"`
	LowStock     []LowStockItemDTO `json:"low_stock"`
	Threshold    int               `json:"threshold"`
}
