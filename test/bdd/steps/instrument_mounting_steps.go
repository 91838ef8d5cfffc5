package steps

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	"github.com/cucumber/messages/go/v21"
	"gorm.io/gorm"

	"github.com/sitesspectral/spectral-go/internal/adapters/persistence"
	"github.com/sitesspectral/spectral-go/internal/application/provisioning"
	"github.com/sitesspectral/spectral-go/internal/domain/instrument"
	"github.com/sitesspectral/spectral-go/internal/domain/platform"
	"github.com/sitesspectral/spectral-go/test/helpers"
)

type instrumentMountingContext struct {
	// Response/Error tracking
	response *provisioning.CreateInstrumentResponse
	err      error

	// REAL dependencies (NO MOCK REPOS!)
	db          *gorm.DB
	stations    *persistence.GormStationRepository
	platforms   *persistence.GormPlatformRepository
	instruments *persistence.GormInstrumentRepository

	// Catalog registries
	registry *platform.TypeRegistry
	factory  *instrument.Factory

	// Handlers
	stationHandler    *provisioning.CreateStationHandler
	platformHandler   *provisioning.CreatePlatformHandler
	instrumentHandler *provisioning.CreateInstrumentHandler
}

func (imc *instrumentMountingContext) reset() {
	imc.response = nil
	imc.err = nil

	// Truncate all tables for test isolation
	if err := helpers.TruncateAllTables(); err != nil {
		panic(fmt.Errorf("failed to truncate tables: %w", err))
	}

	// Use shared test DB with REAL GORM repositories
	imc.db = helpers.SharedTestDB
	imc.stations = persistence.NewGormStationRepository(helpers.SharedTestDB)
	imc.platforms = persistence.NewGormPlatformRepository(helpers.SharedTestDB)
	imc.instruments = persistence.NewGormInstrumentRepository(helpers.SharedTestDB)

	imc.registry, imc.factory = helpers.NewCatalogRegistries()

	imc.stationHandler = provisioning.NewCreateStationHandler(imc.stations)
	imc.platformHandler = provisioning.NewCreatePlatformHandler(
		imc.stations,
		imc.platforms,
		imc.instruments,
		imc.registry,
		imc.factory,
	)
	imc.instrumentHandler = provisioning.NewCreateInstrumentHandler(
		imc.platforms,
		imc.instruments,
		imc.factory,
	)
}

func (imc *instrumentMountingContext) seedStation(acronym string) error {
	_, err := imc.stationHandler.Handle(context.Background(), &provisioning.CreateStationCommand{
		Acronym:     acronym,
		DisplayName: acronym + " Research Station",
	})
	return err
}

func (imc *instrumentMountingContext) mount(cmd *provisioning.CreateInstrumentCommand) error {
	response, err := imc.instrumentHandler.Handle(context.Background(), cmd)
	imc.err = err
	if err == nil {
		imc.response = response.(*provisioning.CreateInstrumentResponse)
	} else {
		imc.response = nil
	}
	return nil
}

// Given steps

func (imc *instrumentMountingContext) aStationHostingAFixedPlatformInEcosystem(acronym, ecosystem string) error {
	if err := imc.seedStation(acronym); err != nil {
		return err
	}
	_, err := imc.platformHandler.Handle(context.Background(), &provisioning.CreatePlatformCommand{
		StationAcronym: acronym,
		PlatformType:   platform.TypeFixed,
		Data:           platform.Data{EcosystemCode: ecosystem},
	})
	return err
}

func (imc *instrumentMountingContext) aStationOperatingAUAV(acronym, vendor, model string) error {
	if err := imc.seedStation(acronym); err != nil {
		return err
	}
	_, err := imc.platformHandler.Handle(context.Background(), &provisioning.CreatePlatformCommand{
		StationAcronym: acronym,
		PlatformType:   platform.TypeUAV,
		Data:           platform.Data{Vendor: vendor, Model: model},
	})
	return err
}

func (imc *instrumentMountingContext) anInstrumentIsAlreadyMountedOnPlatform(instrumentType, platformName string) error {
	if err := imc.iMountAnInstrumentOnPlatform(instrumentType, platformName); err != nil {
		return err
	}
	if imc.err != nil {
		return fmt.Errorf("failed to seed instrument: %w", imc.err)
	}
	return nil
}

// When steps

func (imc *instrumentMountingContext) iMountAnInstrumentOnPlatform(instrumentType, platformName string) error {
	return imc.mount(&provisioning.CreateInstrumentCommand{
		PlatformName:   platformName,
		InstrumentType: instrumentType,
	})
}

func (imc *instrumentMountingContext) iMountAnInstrumentOnPlatformWithSpecifications(instrumentType, platformName string, table *godog.Table) error {
	specs := make(map[string]interface{})
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}
		key := getCellValueFromTable(table, row, "spec")
		specs[key] = parseSpecificationValue(getCellValueFromTable(table, row, "value"))
	}
	return imc.mount(&provisioning.CreateInstrumentCommand{
		PlatformName:   platformName,
		InstrumentType: instrumentType,
		Specifications: specs,
	})
}

// Then steps

func (imc *instrumentMountingContext) mountingShouldSucceed() error {
	if imc.err != nil {
		return fmt.Errorf("expected success but got error: %v", imc.err)
	}
	if imc.response == nil {
		return fmt.Errorf("expected response but got nil")
	}
	return nil
}

func (imc *instrumentMountingContext) mountingShouldFailWithAnErrorContaining(expected string) error {
	if imc.err == nil {
		return fmt.Errorf("expected error containing %q but mounting succeeded", expected)
	}
	if !strings.Contains(imc.err.Error(), expected) {
		return fmt.Errorf("expected error containing %q but got %q", expected, imc.err.Error())
	}
	return nil
}

func (imc *instrumentMountingContext) theInstrumentNormalizedNameShouldBe(expected string) error {
	if imc.response == nil {
		return fmt.Errorf("no response available")
	}
	if got := imc.response.Instrument.NormalizedName(); got != expected {
		return fmt.Errorf("expected instrument name %q, got %q", expected, got)
	}
	return nil
}

func (imc *instrumentMountingContext) theInstrumentDisplayNameShouldBe(expected string) error {
	if imc.response == nil {
		return fmt.Errorf("no response available")
	}
	if got := imc.response.Instrument.DisplayName(); got != expected {
		return fmt.Errorf("expected display name %q, got %q", expected, got)
	}
	return nil
}

func (imc *instrumentMountingContext) theMountedInstrumentShouldBePersisted() error {
	if imc.response == nil {
		return fmt.Errorf("no response available")
	}

	// Reload from database to verify persistence
	reloaded, err := imc.instruments.FindByNormalizedName(context.Background(), imc.response.Instrument.NormalizedName())
	if err != nil {
		return fmt.Errorf("failed to reload instrument: %w", err)
	}
	if reloaded.InstrumentType() != imc.response.Instrument.InstrumentType() {
		return fmt.Errorf("persisted type %q does not match response type %q",
			reloaded.InstrumentType(), imc.response.Instrument.InstrumentType())
	}
	return nil
}

// getCellValueFromTable gets a cell value from a table row by column name
// It uses the first row (table.Rows[0]) as the header to find the column index
func getCellValueFromTable(table *godog.Table, row *messages.PickleTableRow, columnName string) string {
	if len(table.Rows) == 0 {
		return ""
	}

	headerRow := table.Rows[0]

	// Find column index by matching header
	for i, headerCell := range headerRow.Cells {
		if headerCell.Value == columnName {
			if i < len(row.Cells) {
				return row.Cells[i].Value
			}
			return ""
		}
	}

	return ""
}

// parseSpecificationValue types a raw table cell the way import rows are
// typed: number, then boolean, then string.
func parseSpecificationValue(raw string) interface{} {
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(raw); err == nil {
		return b
	}
	return raw
}

func InitializeInstrumentMountingScenario(ctx *godog.ScenarioContext) {
	imc := &instrumentMountingContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		imc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a station "([^"]*)" hosting a fixed platform in ecosystem "([^"]*)"$`, imc.aStationHostingAFixedPlatformInEcosystem)
	ctx.Step(`^a station "([^"]*)" operating a "([^"]*)" "([^"]*)" UAV$`, imc.aStationOperatingAUAV)
	ctx.Step(`^a "([^"]*)" instrument is already mounted on platform "([^"]*)"$`, imc.anInstrumentIsAlreadyMountedOnPlatform)

	// When steps
	ctx.Step(`^I mount a "([^"]*)" instrument on platform "([^"]*)"$`, imc.iMountAnInstrumentOnPlatform)
	ctx.Step(`^I mount a "([^"]*)" instrument on platform "([^"]*)" with specifications:$`, imc.iMountAnInstrumentOnPlatformWithSpecifications)

	// Then steps
	ctx.Step(`^mounting should succeed$`, imc.mountingShouldSucceed)
	ctx.Step(`^mounting should fail with an error containing "([^"]*)"$`, imc.mountingShouldFailWithAnErrorContaining)
	ctx.Step(`^the instrument normalized name should be "([^"]*)"$`, imc.theInstrumentNormalizedNameShouldBe)
	ctx.Step(`^the instrument display name should be "([^"]*)"$`, imc.theInstrumentDisplayNameShouldBe)
	ctx.Step(`^the mounted instrument should be persisted$`, imc.theMountedInstrumentShouldBePersisted)
}
