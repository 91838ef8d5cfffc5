package importer

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/time/rate"

	"github.com/sitesspectral/spectral-go/internal/domain/platform"
)

// RowOutcome records one successfully processed row.
type RowOutcome struct {
	// Row is the 1-based position in the file.
	Row            int
	NormalizedName string

	// AutoInstruments counts instruments provisioned alongside a
	// platform row (UAV payload sensors, satellite sensors).
	AutoInstruments int
}

// ImportSummary aggregates the result of one import run.
type ImportSummary struct {
	DryRun   bool
	Total    int
	Imported []RowOutcome
	Errors   []string
}

func (s *ImportSummary) addError(row int, err error) {
	s.Errors = append(s.Errors, fmt.Sprintf("row %d: %v", row, err))
}

// writeLimiter paces writes between saves. A zero rate means unlimited.
type writeLimiter struct {
	limiter *rate.Limiter
}

func newWriteLimiter(perSecond float64, burst int) *writeLimiter {
	if perSecond <= 0 {
		return &writeLimiter{}
	}
	if burst < 1 {
		burst = 1
	}
	return &writeLimiter{limiter: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

func (w *writeLimiter) Wait(ctx context.Context) error {
	if w.limiter == nil {
		return nil
	}
	return w.limiter.Wait(ctx)
}

// namePreview tracks the names and sequence codes a dry run has already
// handed out, so a multi-row file previews the same sequences a real
// import would assign without writing anything.
type namePreview struct {
	names             map[string]bool
	mountCodes        map[string]int
	instrumentNumbers map[string]int
}

func newNamePreview() *namePreview {
	return &namePreview{
		names:             make(map[string]bool),
		mountCodes:        make(map[string]int),
		instrumentNumbers: make(map[string]int),
	}
}

func (p *namePreview) taken(name string) bool {
	return p.names[name]
}

func (p *namePreview) claim(name string) {
	p.names[name] = true
}

// bumpMountCode advances a previewed mount code past the codes earlier
// rows of this run already previewed for the same reservation scope.
func (p *namePreview) bumpMountCode(stationID int64, prefix, ecosystem, code string) string {
	key := fmt.Sprintf("%d|%s|%s", stationID, prefix, ecosystem)
	offset := p.mountCodes[key]
	p.mountCodes[key]++
	if offset == 0 {
		return code
	}
	number, err := strconv.Atoi(strings.TrimPrefix(code, prefix))
	if err != nil {
		return code
	}
	return platform.FormatMountCode(prefix, number+offset)
}

// bumpInstrumentNumber returns how many instruments of the type earlier
// rows of this run already previewed on the platform.
func (p *namePreview) bumpInstrumentNumber(platformID int64, typeCode string) int {
	key := fmt.Sprintf("%d|%s", platformID, typeCode)
	offset := p.instrumentNumbers[key]
	p.instrumentNumbers[key]++
	return offset
}
