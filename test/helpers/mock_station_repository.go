package helpers

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/sitesspectral/spectral-go/internal/domain/station"
)

// MockStationRepository is a test double for the station.Repository port
type MockStationRepository struct {
	mu       sync.RWMutex
	stations map[int64]*station.Station
	nextID   int64
}

// NewMockStationRepository creates a new mock station repository
func NewMockStationRepository() *MockStationRepository {
	return &MockStationRepository{
		stations: make(map[int64]*station.Station),
		nextID:   1,
	}
}

// AddStation seeds a station, assigning an ID when it has none
func (m *MockStationRepository) AddStation(s *station.Station) *station.Station {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.ID == 0 {
		s.ID = m.nextID
		m.nextID++
	}
	m.stations[s.ID] = s
	return s
}

// Save persists a station (insert when ID is zero, update otherwise)
func (m *MockStationRepository) Save(ctx context.Context, s *station.Station) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.ID == 0 {
		s.ID = m.nextID
		m.nextID++
	}
	m.stations[s.ID] = s
	return nil
}

// FindByID retrieves a station by ID
func (m *MockStationRepository) FindByID(ctx context.Context, id int64) (*station.Station, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.stations[id]
	if !ok {
		return nil, &station.ErrStationNotFound{ID: id}
	}
	return s, nil
}

// FindByAcronym retrieves a station by acronym (case-insensitive)
func (m *MockStationRepository) FindByAcronym(ctx context.Context, acronym string) (*station.Station, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	normalized := strings.ToUpper(strings.TrimSpace(acronym))
	for _, s := range m.stations {
		if s.Acronym == normalized {
			return s, nil
		}
	}
	return nil, &station.ErrStationNotFound{Acronym: normalized}
}

// List returns all stations ordered by acronym
func (m *MockStationRepository) List(ctx context.Context) ([]*station.Station, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stations := make([]*station.Station, 0, len(m.stations))
	for _, s := range m.stations {
		stations = append(stations, s)
	}
	sort.Slice(stations, func(i, j int) bool {
		return stations[i].Acronym < stations[j].Acronym
	})
	return stations, nil
}
