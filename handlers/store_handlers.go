package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"demandboard/config"
	"demandboard/history"
	"demandboard/utils"
)

// DefaultRecentWindow matches the trend chart on the dashboard, which
// shows the last 20 weeks by default.
const DefaultRecentWindow = 20

func storeIDParam(c *fiber.Ctx) (int, error) {
	return strconv.Atoi(c.Params("storeId"))
}

// historyError maps store lookup failures onto the API envelope.
func historyError(c *fiber.Ctx, err error) error {
	if errors.Is(err, history.ErrStoreNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "No data for selected store"})
	}
	if errors.Is(err, history.ErrEmptyHistory) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Selected store has no sales history"})
	}
	log.Printf("❌ [STORES] Unexpected history error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to read sales history"})
}

// HandleListStores lists the store ids present in the loaded dataset.
func HandleListStores(c *fiber.Ctx) error {
	ids := history.Active().StoreIDs()
	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"stores": ids, "count": len(ids)},
	})
}

// HandleGetStoreSummary returns the KPI block for one store: baseline
// sales, record span, and the recent trend window.
func HandleGetStoreSummary(c *fiber.Ctx) error {
	storeID, err := storeIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid store id"})
	}
	window := c.QueryInt("window", DefaultRecentWindow)

	summary, err := history.Active().Summary(storeID, window)
	if err != nil {
		return historyError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "data": summary})
}

// HandleGetStoreRecords returns the raw weekly records for a store,
// date ascending, with pagination.
func HandleGetStoreRecords(c *fiber.Ctx) error {
	storeID, err := storeIDParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid store id"})
	}
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", utils.DefaultPageSize)

	records, err := history.Active().RecordsForStore(storeID)
	if err != nil {
		return historyError(c, err)
	}

	pagination := utils.CreatePagination(len(records), page, pageSize)
	start := (pagination.CurrentPage - 1) * pagination.PageSize
	if start > len(records) {
		start = len(records)
	}
	end := start + pagination.PageSize
	if end > len(records) {
		end = len(records)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"records":    records[start:end],
			"pagination": pagination,
		},
	})
}

// HandleHealth reports dataset and model status.
func HandleHealth(c *fiber.Ctx) error {
	store := history.Active()
	loaded := store != nil && store.Len() > 0

	data := fiber.Map{
		"datasetLoaded": loaded,
		"modelVariant":  Model.Variant.String(),
	}
	if loaded {
		data["recordCount"] = store.Len()
		data["storeCount"] = len(store.StoreIDs())
	}
	if config.AppConfig.DatabaseURL != "" {
		data["datasetSource"] = "postgres"
	} else {
		data["datasetSource"] = "csv"
	}

	return c.JSON(fiber.Map{"success": true, "data": data})
}
