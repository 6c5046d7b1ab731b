package history

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleCSV = `Store,Date,Weekly_Sales,Holiday_Flag,Temperature,Fuel_Price,CPI,Unemployment
1,05-02-2010,1643690.90,0,42.31,2.572,211.0963582,8.106
1,12-02-2010,1641957.44,1,38.51,2.548,211.2421698,8.106
2,05-02-2010,2136989.46,0,40.19,2.572,210.7526054,8.324
`

func TestLoadCSV(t *testing.T) {
	records, err := LoadCSV(strings.NewReader(sampleCSV))
	assert.NoError(t, err)
	assert.Len(t, records, 3)

	first := records[0]
	assert.Equal(t, 1, first.StoreID)
	assert.Equal(t, 2010, first.Date.Year())
	assert.Equal(t, "2010-02-05", first.Date.Format("2006-01-02"))
	assert.Equal(t, 1643690.90, first.WeeklySales)
	assert.False(t, first.HolidayFlag)
	assert.Equal(t, 42.31, first.Temperature)
	assert.Equal(t, 2.572, first.FuelPrice)
	assert.Equal(t, 211.0963582, first.CPI)
	assert.Equal(t, 8.106, first.Unemployment)

	assert.True(t, records[1].HolidayFlag)
	assert.Equal(t, 2, records[2].StoreID)
}

func TestLoadCSVHeaderOrderDoesNotMatter(t *testing.T) {
	shuffled := "Date,Weekly_Sales,Store\n2012-06-01,500,7\n"

	records, err := LoadCSV(strings.NewReader(shuffled))
	assert.NoError(t, err)
	assert.Len(t, records, 1)
	assert.Equal(t, 7, records[0].StoreID)
	assert.Equal(t, 500.0, records[0].WeeklySales)
	assert.Equal(t, "2012-06-01", records[0].Date.Format("2006-01-02"))
}

func TestLoadCSVMissingColumn(t *testing.T) {
	_, err := LoadCSV(strings.NewReader("Store,Weekly_Sales\n1,100\n"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "date")
}

func TestLoadCSVInvalidRow(t *testing.T) {
	bad := "Store,Date,Weekly_Sales\n1,05-02-2010,not-a-number\n"
	_, err := LoadCSV(strings.NewReader(bad))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "weekly_sales")
}

func TestLoadCSVEmpty(t *testing.T) {
	_, err := LoadCSV(strings.NewReader("Store,Date,Weekly_Sales\n"))
	assert.Error(t, err)
}

func TestParseDateFormats(t *testing.T) {
	for _, s := range []string{"05-02-2010", "05/02/2010", "2010-02-05"} {
		d, err := parseDate(s)
		assert.NoError(t, err, s)
		assert.Equal(t, "2010-02-05", d.Format("2006-01-02"))
	}

	_, err := parseDate("Feb 5 2010")
	assert.Error(t, err)
}
