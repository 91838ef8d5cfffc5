package steps

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"
	"gorm.io/gorm"

	"github.com/sitesspectral/spectral-go/internal/adapters/persistence"
	"github.com/sitesspectral/spectral-go/internal/application/provisioning"
	"github.com/sitesspectral/spectral-go/internal/domain/instrument"
	"github.com/sitesspectral/spectral-go/internal/domain/platform"
	"github.com/sitesspectral/spectral-go/test/helpers"
)

type platformProvisioningContext struct {
	// Response/Error tracking
	response *provisioning.CreatePlatformResponse
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
	stationHandler  *provisioning.CreateStationHandler
	platformHandler *provisioning.CreatePlatformHandler
}

func (ppc *platformProvisioningContext) reset() {
	ppc.response = nil
	ppc.err = nil

	// Truncate all tables for test isolation
	if err := helpers.TruncateAllTables(); err != nil {
		panic(fmt.Errorf("failed to truncate tables: %w", err))
	}

	// Use shared test DB with REAL GORM repositories
	ppc.db = helpers.SharedTestDB
	ppc.stations = persistence.NewGormStationRepository(helpers.SharedTestDB)
	ppc.platforms = persistence.NewGormPlatformRepository(helpers.SharedTestDB)
	ppc.instruments = persistence.NewGormInstrumentRepository(helpers.SharedTestDB)

	ppc.registry, ppc.factory = helpers.NewCatalogRegistries()

	ppc.stationHandler = provisioning.NewCreateStationHandler(ppc.stations)
	ppc.platformHandler = provisioning.NewCreatePlatformHandler(
		ppc.stations,
		ppc.platforms,
		ppc.instruments,
		ppc.registry,
		ppc.factory,
	)
}

func (ppc *platformProvisioningContext) provision(cmd *provisioning.CreatePlatformCommand) error {
	response, err := ppc.platformHandler.Handle(context.Background(), cmd)
	ppc.err = err
	if err == nil {
		ppc.response = response.(*provisioning.CreatePlatformResponse)
	} else {
		ppc.response = nil
	}
	return nil
}

// Given steps

func (ppc *platformProvisioningContext) aRegisteredStationNamed(acronym, name string) error {
	_, err := ppc.stationHandler.Handle(context.Background(), &provisioning.CreateStationCommand{
		Acronym:     acronym,
		DisplayName: name,
	})
	return err
}

func (ppc *platformProvisioningContext) aFixedPlatformAlreadyExistsAtInEcosystem(acronym, ecosystem string) error {
	if err := ppc.iProvisionAFixedPlatformAtInEcosystem(acronym, ecosystem); err != nil {
		return err
	}
	if ppc.err != nil {
		return fmt.Errorf("failed to seed fixed platform: %w", ppc.err)
	}
	return nil
}

// When steps

func (ppc *platformProvisioningContext) iRegisterAStationNamed(acronym, name string) error {
	_, err := ppc.stationHandler.Handle(context.Background(), &provisioning.CreateStationCommand{
		Acronym:     acronym,
		DisplayName: name,
	})
	ppc.err = err
	return nil
}

func (ppc *platformProvisioningContext) iProvisionAFixedPlatformAtInEcosystem(acronym, ecosystem string) error {
	return ppc.provision(&provisioning.CreatePlatformCommand{
		StationAcronym: acronym,
		PlatformType:   platform.TypeFixed,
		Data:           platform.Data{EcosystemCode: ecosystem},
	})
}

func (ppc *platformProvisioningContext) iProvisionAFixedPlatformAtInEcosystemWithMountCode(acronym, ecosystem, mountCode string) error {
	return ppc.provision(&provisioning.CreatePlatformCommand{
		StationAcronym: acronym,
		PlatformType:   platform.TypeFixed,
		Data:           platform.Data{EcosystemCode: ecosystem, MountTypeCode: mountCode},
	})
}

func (ppc *platformProvisioningContext) iProvisionAUAVAtStation(vendor, model, acronym string) error {
	return ppc.provision(&provisioning.CreatePlatformCommand{
		StationAcronym: acronym,
		PlatformType:   platform.TypeUAV,
		Data:           platform.Data{Vendor: vendor, Model: model},
	})
}

func (ppc *platformProvisioningContext) iProvisionSatelliteCoverageAtStation(agency, satellite, sensor, acronym string) error {
	return ppc.provision(&provisioning.CreatePlatformCommand{
		StationAcronym: acronym,
		PlatformType:   platform.TypeSatellite,
		Data:           platform.Data{Agency: agency, Satellite: satellite, Sensor: sensor},
	})
}

// Then steps

func (ppc *platformProvisioningContext) provisioningShouldSucceed() error {
	if ppc.err != nil {
		return fmt.Errorf("expected success but got error: %v", ppc.err)
	}
	return nil
}

func (ppc *platformProvisioningContext) provisioningShouldFailWithAnErrorContaining(expected string) error {
	if ppc.err == nil {
		return fmt.Errorf("expected error containing %q but provisioning succeeded", expected)
	}
	if !strings.Contains(ppc.err.Error(), expected) {
		return fmt.Errorf("expected error containing %q but got %q", expected, ppc.err.Error())
	}
	return nil
}

func (ppc *platformProvisioningContext) thePlatformNormalizedNameShouldBe(expected string) error {
	if ppc.response == nil {
		return fmt.Errorf("no response available")
	}
	if got := ppc.response.Platform.NormalizedName(); got != expected {
		return fmt.Errorf("expected platform name %q, got %q", expected, got)
	}
	return nil
}

func (ppc *platformProvisioningContext) thePlatformMountCodeShouldBe(expected string) error {
	if ppc.response == nil {
		return fmt.Errorf("no response available")
	}
	if got := ppc.response.Platform.MountTypeCode(); got != expected {
		return fmt.Errorf("expected mount code %q, got %q", expected, got)
	}
	return nil
}

func (ppc *platformProvisioningContext) instrumentsShouldBeAutoCreated(count int) error {
	if ppc.response == nil {
		return fmt.Errorf("no response available")
	}
	if got := len(ppc.response.Instruments); got != count {
		names := make([]string, 0, got)
		for _, inst := range ppc.response.Instruments {
			names = append(names, inst.NormalizedName())
		}
		return fmt.Errorf("expected %d auto-created instruments, got %d: %s", count, got, strings.Join(names, ", "))
	}
	return nil
}

func (ppc *platformProvisioningContext) autoCreatedInstrumentShouldBeOfType(position int, name, instrumentType string) error {
	if ppc.response == nil {
		return fmt.Errorf("no response available")
	}
	if position < 1 || position > len(ppc.response.Instruments) {
		return fmt.Errorf("no auto-created instrument at position %d (got %d)", position, len(ppc.response.Instruments))
	}
	inst := ppc.response.Instruments[position-1]
	if inst.NormalizedName() != name {
		return fmt.Errorf("expected instrument %d to be %q, got %q", position, name, inst.NormalizedName())
	}
	if inst.InstrumentType() != instrumentType {
		return fmt.Errorf("expected instrument %d type %q, got %q", position, instrumentType, inst.InstrumentType())
	}
	return nil
}

func (ppc *platformProvisioningContext) theInstrumentShouldRecordSpecificationAs(name, key, expected string) error {
	inst, err := ppc.findCreatedInstrument(name)
	if err != nil {
		return err
	}
	value, ok := inst.Specification(key)
	if !ok {
		return fmt.Errorf("instrument %s has no specification %q", name, key)
	}
	if got := fmt.Sprint(value); got != expected {
		return fmt.Errorf("expected %s specification %q to be %q, got %q", name, key, expected, got)
	}
	return nil
}

func (ppc *platformProvisioningContext) thePlatformShouldBePersistedWithMountedInstruments(count int) error {
	if ppc.response == nil {
		return fmt.Errorf("no response available")
	}

	// Reload from database to verify persistence
	reloaded, err := ppc.platforms.FindByNormalizedName(context.Background(), ppc.response.Platform.NormalizedName())
	if err != nil {
		return fmt.Errorf("failed to reload platform: %w", err)
	}
	mounted, err := ppc.instruments.CountByPlatform(context.Background(), reloaded.ID())
	if err != nil {
		return fmt.Errorf("failed to count instruments: %w", err)
	}
	if mounted != int64(count) {
		return fmt.Errorf("expected %d persisted instruments, got %d", count, mounted)
	}
	return nil
}

func (ppc *platformProvisioningContext) theStationShouldBePersisted(acronym string) error {
	_, err := ppc.stations.FindByAcronym(context.Background(), acronym)
	if err != nil {
		return fmt.Errorf("station %s not persisted: %w", acronym, err)
	}
	return nil
}

func (ppc *platformProvisioningContext) findCreatedInstrument(name string) (*instrument.Instrument, error) {
	if ppc.response == nil {
		return nil, fmt.Errorf("no response available")
	}
	for _, inst := range ppc.response.Instruments {
		if inst.NormalizedName() == name {
			return inst, nil
		}
	}
	return nil, fmt.Errorf("no auto-created instrument named %q", name)
}

func InitializePlatformProvisioningScenario(ctx *godog.ScenarioContext) {
	ppc := &platformProvisioningContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		ppc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a registered station "([^"]*)" named "([^"]*)"$`, ppc.aRegisteredStationNamed)
	ctx.Step(`^a fixed platform already exists at "([^"]*)" in ecosystem "([^"]*)"$`, ppc.aFixedPlatformAlreadyExistsAtInEcosystem)

	// When steps
	ctx.Step(`^I register a station "([^"]*)" named "([^"]*)"$`, ppc.iRegisterAStationNamed)
	ctx.Step(`^I provision a fixed platform at "([^"]*)" in ecosystem "([^"]*)"$`, ppc.iProvisionAFixedPlatformAtInEcosystem)
	ctx.Step(`^I provision a fixed platform at "([^"]*)" in ecosystem "([^"]*)" with mount code "([^"]*)"$`, ppc.iProvisionAFixedPlatformAtInEcosystemWithMountCode)
	ctx.Step(`^I provision a "([^"]*)" "([^"]*)" UAV at station "([^"]*)"$`, ppc.iProvisionAUAVAtStation)
	ctx.Step(`^I provision satellite coverage of "([^"]*)" "([^"]*)" "([^"]*)" at station "([^"]*)"$`, ppc.iProvisionSatelliteCoverageAtStation)

	// Then steps
	ctx.Step(`^provisioning should succeed$`, ppc.provisioningShouldSucceed)
	ctx.Step(`^provisioning should fail with an error containing "([^"]*)"$`, ppc.provisioningShouldFailWithAnErrorContaining)
	ctx.Step(`^the platform normalized name should be "([^"]*)"$`, ppc.thePlatformNormalizedNameShouldBe)
	ctx.Step(`^the platform mount code should be "([^"]*)"$`, ppc.thePlatformMountCodeShouldBe)
	ctx.Step(`^(\d+) instruments? should be auto-created$`, ppc.instrumentsShouldBeAutoCreated)
	ctx.Step(`^auto-created instrument (\d+) should be "([^"]*)" of type "([^"]*)"$`, ppc.autoCreatedInstrumentShouldBeOfType)
	ctx.Step(`^the instrument "([^"]*)" should record specification "([^"]*)" as "([^"]*)"$`, ppc.theInstrumentShouldRecordSpecificationAs)
	ctx.Step(`^the platform should be persisted with (\d+) mounted instruments?$`, ppc.thePlatformShouldBePersistedWithMountedInstruments)
	ctx.Step(`^the station "([^"]*)" should be persisted$`, ppc.theStationShouldBePersisted)
}
