package steps

import (
	"context"
	"errors"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/sitesspectral/spectral-go/internal/domain/platform"
	"github.com/sitesspectral/spectral-go/test/helpers"
)

type platformNamingContext struct {
	registry *platform.TypeRegistry

	namingCtx     platform.NamingContext
	generatedName string
	genErr        error

	recoveredIdentity platform.NamingContext
	recoveredOK       bool
}

func (pnc *platformNamingContext) reset() {
	registry, _ := helpers.NewCatalogRegistries()
	pnc.registry = registry
	pnc.namingCtx = platform.NamingContext{}
	pnc.generatedName = ""
	pnc.genErr = nil
	pnc.recoveredIdentity = platform.NamingContext{}
	pnc.recoveredOK = false
}

// Given steps

func (pnc *platformNamingContext) aNamingContextForStation(acronym string) error {
	pnc.namingCtx.StationAcronym = acronym
	return nil
}

func (pnc *platformNamingContext) theContextHasEcosystemCode(code string) error {
	pnc.namingCtx.EcosystemCode = code
	return nil
}

func (pnc *platformNamingContext) theContextHasMountTypeCode(code string) error {
	pnc.namingCtx.MountTypeCode = code
	return nil
}

func (pnc *platformNamingContext) theContextHasVendorAndModel(vendor, model string) error {
	pnc.namingCtx.Vendor = vendor
	pnc.namingCtx.Model = model
	return nil
}

func (pnc *platformNamingContext) theContextHasAgencySatelliteAndSensor(agency, satellite, sensor string) error {
	pnc.namingCtx.Agency = agency
	pnc.namingCtx.Satellite = satellite
	pnc.namingCtx.Sensor = sensor
	return nil
}

func (pnc *platformNamingContext) theContextHasCarrierType(carrier string) error {
	pnc.namingCtx.CarrierType = carrier
	return nil
}

// When steps

func (pnc *platformNamingContext) iGenerateTheNormalizedNameForAPlatform(typeCode string) error {
	name, err := pnc.registry.GenerateNormalizedName(typeCode, pnc.namingCtx)
	pnc.generatedName = name
	pnc.genErr = err
	return nil
}

func (pnc *platformNamingContext) iRecoverTheIdentityFromName(typeCode, name string) error {
	pnc.recoveredIdentity, pnc.recoveredOK = platform.IdentityFromName(typeCode, name)
	return nil
}

// Then steps

func (pnc *platformNamingContext) theNormalizedNameShouldBe(expected string) error {
	if pnc.genErr != nil {
		return fmt.Errorf("expected name %q but generation failed: %v", expected, pnc.genErr)
	}
	if pnc.generatedName != expected {
		return fmt.Errorf("expected name %q, got %q", expected, pnc.generatedName)
	}
	return nil
}

func (pnc *platformNamingContext) nameGenerationShouldFailForMissingField(field string) error {
	if pnc.genErr == nil {
		return fmt.Errorf("expected generation to fail for missing %q, but got name %q", field, pnc.generatedName)
	}
	var missing *platform.MissingContextFieldError
	if !errors.As(pnc.genErr, &missing) {
		return fmt.Errorf("expected MissingContextFieldError, got %v", pnc.genErr)
	}
	if missing.Field != field {
		return fmt.Errorf("expected missing field %q, got %q", field, missing.Field)
	}
	return nil
}

func (pnc *platformNamingContext) nameGenerationShouldFailForUnknownType(typeCode string) error {
	if pnc.genErr == nil {
		return fmt.Errorf("expected generation to fail for type %q, but got name %q", typeCode, pnc.generatedName)
	}
	var unknown *platform.UnknownPlatformTypeError
	if !errors.As(pnc.genErr, &unknown) {
		return fmt.Errorf("expected UnknownPlatformTypeError, got %v", pnc.genErr)
	}
	if unknown.TypeCode != typeCode {
		return fmt.Errorf("expected unknown type %q, got %q", typeCode, unknown.TypeCode)
	}
	return nil
}

func (pnc *platformNamingContext) theIdentityShouldBeRecovered() error {
	if !pnc.recoveredOK {
		return fmt.Errorf("expected identity to be recovered, but it was not")
	}
	return nil
}

func (pnc *platformNamingContext) theIdentityShouldNotBeRecovered() error {
	if pnc.recoveredOK {
		return fmt.Errorf("expected identity recovery to fail, but it succeeded")
	}
	return nil
}

func (pnc *platformNamingContext) theRecoveredStationShouldBe(expected string) error {
	if pnc.recoveredIdentity.StationAcronym != expected {
		return fmt.Errorf("expected recovered station %q, got %q", expected, pnc.recoveredIdentity.StationAcronym)
	}
	return nil
}

func (pnc *platformNamingContext) theRecoveredVendorAndModelShouldBe(vendor, model string) error {
	if pnc.recoveredIdentity.Vendor != vendor {
		return fmt.Errorf("expected recovered vendor %q, got %q", vendor, pnc.recoveredIdentity.Vendor)
	}
	if pnc.recoveredIdentity.Model != model {
		return fmt.Errorf("expected recovered model %q, got %q", model, pnc.recoveredIdentity.Model)
	}
	return nil
}

func (pnc *platformNamingContext) theRecoveredEcosystemShouldBe(expected string) error {
	if pnc.recoveredIdentity.EcosystemCode != expected {
		return fmt.Errorf("expected recovered ecosystem %q, got %q", expected, pnc.recoveredIdentity.EcosystemCode)
	}
	return nil
}

func InitializePlatformNamingScenario(ctx *godog.ScenarioContext) {
	pnc := &platformNamingContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		pnc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a naming context for station "([^"]*)"$`, pnc.aNamingContextForStation)
	ctx.Step(`^the context has ecosystem code "([^"]*)"$`, pnc.theContextHasEcosystemCode)
	ctx.Step(`^the context has mount type code "([^"]*)"$`, pnc.theContextHasMountTypeCode)
	ctx.Step(`^the context has vendor "([^"]*)" and model "([^"]*)"$`, pnc.theContextHasVendorAndModel)
	ctx.Step(`^the context has agency "([^"]*)", satellite "([^"]*)" and sensor "([^"]*)"$`, pnc.theContextHasAgencySatelliteAndSensor)
	ctx.Step(`^the context has carrier type "([^"]*)"$`, pnc.theContextHasCarrierType)

	// When steps
	ctx.Step(`^I generate the normalized name for a "([^"]*)" platform$`, pnc.iGenerateTheNormalizedNameForAPlatform)
	ctx.Step(`^I recover the identity from "([^"]*)" name "([^"]*)"$`, pnc.iRecoverTheIdentityFromName)

	// Then steps
	ctx.Step(`^the normalized name should be "([^"]*)"$`, pnc.theNormalizedNameShouldBe)
	ctx.Step(`^name generation should fail for missing field "([^"]*)"$`, pnc.nameGenerationShouldFailForMissingField)
	ctx.Step(`^name generation should fail for unknown type "([^"]*)"$`, pnc.nameGenerationShouldFailForUnknownType)
	ctx.Step(`^the identity should be recovered$`, pnc.theIdentityShouldBeRecovered)
	ctx.Step(`^the identity should not be recovered$`, pnc.theIdentityShouldNotBeRecovered)
	ctx.Step(`^the recovered station should be "([^"]*)"$`, pnc.theRecoveredStationShouldBe)
	ctx.Step(`^the recovered vendor should be "([^"]*)" and model "([^"]*)"$`, pnc.theRecoveredVendorAndModelShouldBe)
	ctx.Step(`^the recovered ecosystem should be "([^"]*)"$`, pnc.theRecoveredEcosystemShouldBe)
}
