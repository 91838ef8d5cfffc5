package helpers

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/sitesspectral/spectral-go/internal/domain/platform"
)

// MockPlatformRepository is a test double for the platform.Repository port
type MockPlatformRepository struct {
	mu        sync.RWMutex
	platforms map[int64]*platform.Platform
	nextID    int64
}

// NewMockPlatformRepository creates a new mock platform repository
func NewMockPlatformRepository() *MockPlatformRepository {
	return &MockPlatformRepository{
		platforms: make(map[int64]*platform.Platform),
		nextID:    1,
	}
}

// AddPlatform seeds a platform, assigning an ID when it has none
func (m *MockPlatformRepository) AddPlatform(p *platform.Platform) *platform.Platform {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID() == 0 {
		_ = p.AssignID(m.nextID)
		m.nextID++
	}
	m.platforms[p.ID()] = p
	return p
}

// Save persists a platform (insert when ID is zero, update otherwise)
func (m *MockPlatformRepository) Save(ctx context.Context, p *platform.Platform) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID() == 0 {
		if err := p.AssignID(m.nextID); err != nil {
			return err
		}
		m.nextID++
	}
	m.platforms[p.ID()] = p
	return nil
}

// Delete removes a platform by ID
func (m *MockPlatformRepository) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.platforms[id]; !ok {
		return &platform.ErrPlatformNotFound{ID: id}
	}
	delete(m.platforms, id)
	return nil
}

// FindByID retrieves a platform by ID
func (m *MockPlatformRepository) FindByID(ctx context.Context, id int64) (*platform.Platform, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.platforms[id]
	if !ok {
		return nil, &platform.ErrPlatformNotFound{ID: id}
	}
	return p, nil
}

// FindByNormalizedName retrieves a platform by its canonical name
func (m *MockPlatformRepository) FindByNormalizedName(ctx context.Context, normalizedName string) (*platform.Platform, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	needle := strings.ToUpper(strings.TrimSpace(normalizedName))
	for _, p := range m.platforms {
		if p.NormalizedName() == needle {
			return p, nil
		}
	}
	return nil, &platform.ErrPlatformNotFound{NormalizedName: needle}
}

// FindByStation returns all platforms of a station ordered by name
func (m *MockPlatformRepository) FindByStation(ctx context.Context, stationID int64) ([]*platform.Platform, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var platforms []*platform.Platform
	for _, p := range m.platforms {
		if p.StationID() == stationID {
			platforms = append(platforms, p)
		}
	}
	sortPlatformsByName(platforms)
	return platforms, nil
}

// List returns all platforms ordered by name
func (m *MockPlatformRepository) List(ctx context.Context) ([]*platform.Platform, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	platforms := make([]*platform.Platform, 0, len(m.platforms))
	for _, p := range m.platforms {
		platforms = append(platforms, p)
	}
	sortPlatformsByName(platforms)
	return platforms, nil
}

// NormalizedNameExists reports whether another platform carries the name
func (m *MockPlatformRepository) NormalizedNameExists(ctx context.Context, normalizedName string, excludeID int64) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	needle := strings.ToUpper(strings.TrimSpace(normalizedName))
	for _, p := range m.platforms {
		if p.ID() == excludeID {
			continue
		}
		if p.NormalizedName() == needle {
			return true, nil
		}
	}
	return false, nil
}

// GetNextMountTypeCode scans the station's platforms for the highest
// sequence under the prefix (and ecosystem, when given) and returns the
// next free code.
func (m *MockPlatformRepository) GetNextMountTypeCode(ctx context.Context, stationID int64, prefix, ecosystemCode string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	ecosystemCode = strings.ToUpper(strings.TrimSpace(ecosystemCode))

	highest := 0
	for _, p := range m.platforms {
		if p.StationID() != stationID {
			continue
		}
		if ecosystemCode != "" && p.EcosystemCode() != ecosystemCode {
			continue
		}
		code := p.MountTypeCode()
		if !strings.HasPrefix(code, prefix) {
			continue
		}
		number, err := strconv.Atoi(code[len(prefix):])
		if err != nil {
			continue
		}
		if number > highest {
			highest = number
		}
	}
	return platform.FormatMountCode(prefix, highest+1), nil
}

func sortPlatformsByName(platforms []*platform.Platform) {
	sort.Slice(platforms, func(i, j int) bool {
		return platforms[i].NormalizedName() < platforms[j].NormalizedName()
	})
}
