package history

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v4/pgxpool"

	"demandboard/models"
)

// LoadPostgres reads the full weekly-sales dataset from the weekly_sales
// table. Used instead of the CSV loader when DATABASE_URL is configured.
func LoadPostgres(ctx context.Context, db *pgxpool.Pool) ([]models.SalesRecord, error) {
	query := `
		SELECT store_id, sale_date, weekly_sales, holiday_flag,
		       temperature, fuel_price, cpi, unemployment
		FROM weekly_sales
		ORDER BY store_id, sale_date
	`
	rows, err := db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query weekly_sales: %w", err)
	}
	defer rows.Close()

	var records []models.SalesRecord
	for rows.Next() {
		var r models.SalesRecord
		if err := rows.Scan(
			&r.StoreID, &r.Date, &r.WeeklySales, &r.HolidayFlag,
			&r.Temperature, &r.FuelPrice, &r.CPI, &r.Unemployment,
		); err != nil {
			log.Printf("⚠️  [HISTORY] Skipping unreadable weekly_sales row: %v", err)
			continue
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read weekly_sales rows: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("weekly_sales table is empty")
	}

	return records, nil
}
