package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"freight-service/internal/model"
)

func TestExpenseSettlementsWorkbook(t *testing.T) {
	formatted := "L000007"
	favors := true
	rows := []model.ExpenseSettlementReportRow{
		{
			FreightFormattedID:           "F000120",
			ExpenseSettlementFormattedID: &formatted,
			RouteName:                    "Lima - Ica",
			DateStart:                    "02/01/23",
			Toll:                         decimal.NewNullDecimal(decimal.RequireFromString("45.50")),
			FavorsTheCompany:             &favors,
		},
		{FreightFormattedID: "F000121", DateStart: "03/01/23"},
	}

	buf, err := ExpenseSettlements(rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(expenseSheet)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Flete", got[0][0])
	assert.Equal(t, "F000120", got[1][0])
	assert.Equal(t, "L000007", got[1][1])
	assert.Equal(t, "45.5", got[1][12])
	assert.Equal(t, "Sí", got[1][24])
	assert.Equal(t, "F000121", got[2][0])
	assert.Equal(t, "", got[2][1])
}
