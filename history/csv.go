package history

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"demandboard/models"
)

// Date formats seen across exports of the dataset. Day-first is the
// format the original CSV ships with.
var dateFormats = []string{
	"02-01-2006",
	"02/01/2006",
	"2006-01-02",
	time.RFC3339,
}

func parseDate(s string) (time.Time, error) {
	var lastErr error
	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, lastErr
}

// LoadCSV parses the weekly-sales dataset from r. The header row is
// mapped by name so column order does not matter; unknown columns are
// skipped. Expected columns: Store, Date, Weekly_Sales, Holiday_Flag,
// Temperature, Fuel_Price, CPI, Unemployment.
func LoadCSV(r io.Reader) ([]models.SalesRecord, error) {
	reader := csv.NewReader(r)

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols := make(map[string]int, len(headers))
	for i, h := range headers {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"store", "date", "weekly_sales"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing required CSV column %q", required)
		}
	}

	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var records []models.SalesRecord
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		line++

		storeID, err := strconv.Atoi(field(row, "store"))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid store id: %w", line, err)
		}
		date, err := parseDate(field(row, "date"))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid date: %w", line, err)
		}
		weeklySales, err := strconv.ParseFloat(field(row, "weekly_sales"), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid weekly_sales: %w", line, err)
		}

		// Exogenous columns default to zero when absent.
		temperature, _ := strconv.ParseFloat(field(row, "temperature"), 64)
		fuelPrice, _ := strconv.ParseFloat(field(row, "fuel_price"), 64)
		cpi, _ := strconv.ParseFloat(field(row, "cpi"), 64)
		unemployment, _ := strconv.ParseFloat(field(row, "unemployment"), 64)
		holiday := field(row, "holiday_flag") == "1" ||
			strings.EqualFold(field(row, "holiday_flag"), "true")

		records = append(records, models.SalesRecord{
			StoreID:      storeID,
			Date:         date,
			WeeklySales:  weeklySales,
			HolidayFlag:  holiday,
			Temperature:  temperature,
			FuelPrice:    fuelPrice,
			CPI:          cpi,
			Unemployment: unemployment,
		})
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("CSV contained no data rows")
	}
	return records, nil
}
