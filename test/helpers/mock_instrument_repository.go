package helpers

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/sitesspectral/spectral-go/internal/domain/instrument"
)

// MockInstrumentRepository is a test double for the instrument.Repository port
type MockInstrumentRepository struct {
	mu          sync.RWMutex
	instruments map[int64]*instrument.Instrument
	rois        map[int64][]*instrument.ROI
	nextID      int64
}

// NewMockInstrumentRepository creates a new mock instrument repository
func NewMockInstrumentRepository() *MockInstrumentRepository {
	return &MockInstrumentRepository{
		instruments: make(map[int64]*instrument.Instrument),
		rois:        make(map[int64][]*instrument.ROI),
		nextID:      1,
	}
}

// AddInstrument seeds an instrument, assigning an ID when it has none
func (m *MockInstrumentRepository) AddInstrument(inst *instrument.Instrument) *instrument.Instrument {
	m.mu.Lock()
	defer m.mu.Unlock()
	if inst.ID() == 0 {
		_ = inst.AssignID(m.nextID)
		m.nextID++
	}
	m.instruments[inst.ID()] = inst
	return inst
}

// AddROI seeds a region of interest for an instrument
func (m *MockInstrumentRepository) AddROI(instrumentID int64, roi *instrument.ROI) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rois[instrumentID] = append(m.rois[instrumentID], roi)
}

// Save persists an instrument (insert when ID is zero, update otherwise)
func (m *MockInstrumentRepository) Save(ctx context.Context, inst *instrument.Instrument) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if inst.ID() == 0 {
		if err := inst.AssignID(m.nextID); err != nil {
			return err
		}
		m.nextID++
	}
	m.instruments[inst.ID()] = inst
	return nil
}

// Delete removes an instrument by ID
func (m *MockInstrumentRepository) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.instruments[id]; !ok {
		return &instrument.ErrInstrumentNotFound{ID: id}
	}
	delete(m.instruments, id)
	delete(m.rois, id)
	return nil
}

// FindByID retrieves an instrument by ID
func (m *MockInstrumentRepository) FindByID(ctx context.Context, id int64) (*instrument.Instrument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	inst, ok := m.instruments[id]
	if !ok {
		return nil, &instrument.ErrInstrumentNotFound{ID: id}
	}
	return inst, nil
}

// FindByNormalizedName retrieves an instrument by its canonical name
func (m *MockInstrumentRepository) FindByNormalizedName(ctx context.Context, name string) (*instrument.Instrument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	needle := strings.ToUpper(strings.TrimSpace(name))
	for _, inst := range m.instruments {
		if inst.NormalizedName() == needle {
			return inst, nil
		}
	}
	return nil, &instrument.ErrInstrumentNotFound{NormalizedName: needle}
}

// FindByPlatform returns the platform's instruments ordered by name
func (m *MockInstrumentRepository) FindByPlatform(ctx context.Context, platformID int64) ([]*instrument.Instrument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var instruments []*instrument.Instrument
	for _, inst := range m.instruments {
		if inst.PlatformID() == platformID {
			instruments = append(instruments, inst)
		}
	}
	sort.Slice(instruments, func(i, j int) bool {
		return instruments[i].NormalizedName() < instruments[j].NormalizedName()
	})
	return instruments, nil
}

// CountByPlatform returns the number of instruments mounted on a platform
func (m *MockInstrumentRepository) CountByPlatform(ctx context.Context, platformID int64) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var count int64
	for _, inst := range m.instruments {
		if inst.PlatformID() == platformID {
			count++
		}
	}
	return count, nil
}

// NormalizedNameExists reports whether another instrument carries the name
func (m *MockInstrumentRepository) NormalizedNameExists(ctx context.Context, name string, excludeID int64) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	needle := strings.ToUpper(strings.TrimSpace(name))
	for _, inst := range m.instruments {
		if inst.ID() == excludeID {
			continue
		}
		if inst.NormalizedName() == needle {
			return true, nil
		}
	}
	return false, nil
}

// GetNextInstrumentNumber scans the platform's instrument names for the
// highest sequence under the type code and returns the next free number.
func (m *MockInstrumentRepository) GetNextInstrumentNumber(ctx context.Context, platformID int64, typeCode string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	typeCode = strings.ToUpper(strings.TrimSpace(typeCode))

	highest := 0
	for _, inst := range m.instruments {
		if inst.PlatformID() != platformID {
			continue
		}
		name := inst.NormalizedName()
		idx := strings.LastIndex(name, "_")
		if idx < 0 {
			continue
		}
		segment := name[idx+1:]
		if !strings.HasPrefix(segment, typeCode) {
			continue
		}
		number, err := strconv.Atoi(segment[len(typeCode):])
		if err != nil {
			continue
		}
		if number > highest {
			highest = number
		}
	}
	return highest + 1, nil
}

// FindROIs returns the instrument's regions of interest
func (m *MockInstrumentRepository) FindROIs(ctx context.Context, instrumentID int64) ([]*instrument.ROI, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rois[instrumentID], nil
}
