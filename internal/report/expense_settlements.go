package report

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"freight-service/internal/model"
)

const expenseSheet = "Liquidaciones"

var expenseHeader = []interface{}{
	"Flete", "Liquidación", "Ruta", "Cliente", "Tracto", "Carreta", "Conductor", "Transporte",
	"Inicio", "Fin", "Servicio", "Presentación", "Peaje", "Viático", "Carga", "Descarga",
	"Cochera", "Lavado", "Llanta", "Movilidad", "Otro", "Detalle", "Total", "Depósitos",
	"A favor de la empresa", "Saldo", "Cancelado", "Observación",
}

// ExpenseSettlements renders the freight/settlement report as an XLSX workbook.
// Money columns are written as numbers so the sheet can sum them.
func ExpenseSettlements(rows []model.ExpenseSettlementReportRow) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", expenseSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(expenseSheet, "A1", &expenseHeader); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	last, _ := excelize.CoordinatesToCellName(len(expenseHeader), 1)
	if err := f.SetCellStyle(expenseSheet, "A1", last, bold); err != nil {
		return nil, err
	}

	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []interface{}{
			r.FreightFormattedID, str(r.ExpenseSettlementFormattedID), r.RouteName, r.ClientName,
			r.TruckTractorLicensePlate, r.SemiTrailerLicensePlate, r.DriverFullName, r.TransportName,
			r.DateStart, str(r.DateEnd), r.ServiceName, str(r.DatePresentation),
			amount(r.Toll), amount(r.Viatic), amount(r.Load), amount(r.Unload),
			amount(r.Garage), amount(r.Washed), amount(r.Tire), amount(r.Mobility),
			amount(r.Other), str(r.OtherDetail), amount(r.Total), amount(r.Deposits),
			yesNo(r.FavorsTheCompany), amount(r.Residue), yesNo(r.Cancelled), str(r.Observation),
		}
		if err := f.SetSheetRow(expenseSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	return f.WriteToBuffer()
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func amount(d decimal.NullDecimal) interface{} {
	if !d.Valid {
		return ""
	}
	v, _ := d.Decimal.Float64()
	return v
}

func yesNo(b *bool) string {
	switch {
	case b == nil:
		return ""
	case *b:
		return "Sí"
	default:
		return "No"
	}
}
