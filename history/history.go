package history

import (
	"errors"
	"sort"

	"demandboard/models"
)

// ErrStoreNotFound is returned when a store id has no records at all.
var ErrStoreNotFound = errors.New("store not found")

// ErrEmptyHistory is returned when a baseline is requested for a store
// with zero sales records.
var ErrEmptyHistory = errors.New("store has no sales history")

// Store holds the full historical dataset in memory, grouped by store.
// It is populated once at startup and never mutated afterwards.
type Store struct {
	byStore map[int][]models.SalesRecord
	ids     []int
	total   int
}

// New builds a Store from raw records. Each store's series is sorted by
// date ascending; records sharing a date keep their input order.
func New(records []models.SalesRecord) *Store {
	byStore := make(map[int][]models.SalesRecord)
	for _, r := range records {
		byStore[r.StoreID] = append(byStore[r.StoreID], r)
	}

	ids := make([]int, 0, len(byStore))
	for id, series := range byStore {
		sort.SliceStable(series, func(i, j int) bool {
			return series[i].Date.Before(series[j].Date)
		})
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return &Store{byStore: byStore, ids: ids, total: len(records)}
}

// StoreIDs returns all known store ids in ascending order.
func (s *Store) StoreIDs() []int {
	out := make([]int, len(s.ids))
	copy(out, s.ids)
	return out
}

// Len returns the total number of records across all stores.
func (s *Store) Len() int {
	return s.total
}

// RecordsForStore returns the store's full series, date ascending.
func (s *Store) RecordsForStore(storeID int) ([]models.SalesRecord, error) {
	series, ok := s.byStore[storeID]
	if !ok {
		return nil, ErrStoreNotFound
	}
	out := make([]models.SalesRecord, len(series))
	copy(out, series)
	return out, nil
}

// Baseline returns the arithmetic mean of weekly sales over all of the
// store's records.
func (s *Store) Baseline(storeID int) (float64, error) {
	series, ok := s.byStore[storeID]
	if !ok {
		return 0, ErrStoreNotFound
	}
	if len(series) == 0 {
		return 0, ErrEmptyHistory
	}

	var sum float64
	for _, r := range series {
		sum += r.WeeklySales
	}
	return sum / float64(len(series)), nil
}

// RecentWindow returns the last n records for the store by date. If the
// store has fewer than n records the whole series is returned.
func (s *Store) RecentWindow(storeID int, n int) ([]models.SalesRecord, error) {
	series, ok := s.byStore[storeID]
	if !ok {
		return nil, ErrStoreNotFound
	}
	if n < 0 {
		n = 0
	}
	if n > len(series) {
		n = len(series)
	}

	out := make([]models.SalesRecord, n)
	copy(out, series[len(series)-n:])
	return out, nil
}

// Summary assembles the dashboard KPI block for one store.
func (s *Store) Summary(storeID int, window int) (*models.StoreSummary, error) {
	series, ok := s.byStore[storeID]
	if !ok {
		return nil, ErrStoreNotFound
	}
	baseline, err := s.Baseline(storeID)
	if err != nil {
		return nil, err
	}
	recent, err := s.RecentWindow(storeID, window)
	if err != nil {
		return nil, err
	}

	return &models.StoreSummary{
		StoreID:     storeID,
		RecordCount: len(series),
		Baseline:    baseline,
		FirstDate:   series[0].Date,
		LastDate:    series[len(series)-1].Date,
		RecentSales: recent,
	}, nil
}
