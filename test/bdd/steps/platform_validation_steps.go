package steps

import (
	"context"
	"fmt"
	"strings"

	"github.com/cucumber/godog"

	"github.com/sitesspectral/spectral-go/internal/domain/platform"
	"github.com/sitesspectral/spectral-go/internal/domain/shared"
	"github.com/sitesspectral/spectral-go/test/helpers"
)

type platformValidationContext struct {
	registry *platform.TypeRegistry

	data   platform.Data
	result shared.ValidationResult
	valErr error
}

func (pvc *platformValidationContext) reset() {
	registry, _ := helpers.NewCatalogRegistries()
	pvc.registry = registry
	pvc.data = platform.Data{}
	pvc.result = shared.ValidationResult{}
	pvc.valErr = nil
}

// Given steps

func (pvc *platformValidationContext) platformDataForStation(acronym string) error {
	pvc.data.StationAcronym = acronym
	return nil
}

func (pvc *platformValidationContext) theDataHasEcosystemCode(code string) error {
	pvc.data.EcosystemCode = code
	return nil
}

func (pvc *platformValidationContext) theDataHasMountTypeCode(code string) error {
	pvc.data.MountTypeCode = code
	return nil
}

func (pvc *platformValidationContext) theDataHasVendorAndModel(vendor, model string) error {
	pvc.data.Vendor = vendor
	pvc.data.Model = model
	return nil
}

func (pvc *platformValidationContext) theDataHasAgencySatelliteAndSensor(agency, satellite, sensor string) error {
	pvc.data.Agency = agency
	pvc.data.Satellite = satellite
	pvc.data.Sensor = sensor
	return nil
}

func (pvc *platformValidationContext) theDataHasCarrierType(carrier string) error {
	pvc.data.CarrierType = carrier
	return nil
}

func (pvc *platformValidationContext) theDataHasPlatformHeight(height float64) error {
	pvc.data.PlatformHeightM = &height
	return nil
}

func (pvc *platformValidationContext) theDataHasLatitudeAndLongitude(lat, lon float64) error {
	pvc.data.Latitude = &lat
	pvc.data.Longitude = &lon
	return nil
}

func (pvc *platformValidationContext) theDataHasMaxDepthAndOperatingDepth(maxDepth, operatingDepth float64) error {
	pvc.data.MaxDepthM = &maxDepth
	pvc.data.OperatingDepthM = &operatingDepth
	return nil
}

// When steps

func (pvc *platformValidationContext) iValidateTheDataAsAPlatform(typeCode string) error {
	result, err := pvc.registry.Validate(typeCode, pvc.data)
	pvc.result = result
	pvc.valErr = err
	return nil
}

// Then steps

func (pvc *platformValidationContext) theDataShouldBeValid() error {
	if pvc.valErr != nil {
		return fmt.Errorf("validation dispatch failed: %v", pvc.valErr)
	}
	if !pvc.result.Valid {
		return fmt.Errorf("expected valid data, got violations: %s", strings.Join(pvc.result.Errors, "; "))
	}
	return nil
}

func (pvc *platformValidationContext) theDataShouldBeInvalid() error {
	if pvc.valErr != nil {
		return fmt.Errorf("validation dispatch failed: %v", pvc.valErr)
	}
	if pvc.result.Valid {
		return fmt.Errorf("expected invalid data, but validation passed")
	}
	return nil
}

func (pvc *platformValidationContext) validationShouldReport(expected string) error {
	for _, violation := range pvc.result.Errors {
		if strings.Contains(violation, expected) {
			return nil
		}
	}
	return fmt.Errorf("expected a violation containing %q, got: %s", expected, strings.Join(pvc.result.Errors, "; "))
}

func (pvc *platformValidationContext) validationShouldReportViolations(count int) error {
	if len(pvc.result.Errors) != count {
		return fmt.Errorf("expected %d violations, got %d: %s", count, len(pvc.result.Errors), strings.Join(pvc.result.Errors, "; "))
	}
	return nil
}

func InitializePlatformValidationScenario(ctx *godog.ScenarioContext) {
	pvc := &platformValidationContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		pvc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^platform data for station "([^"]*)"$`, pvc.platformDataForStation)
	ctx.Step(`^the data has ecosystem code "([^"]*)"$`, pvc.theDataHasEcosystemCode)
	ctx.Step(`^the data has mount type code "([^"]*)"$`, pvc.theDataHasMountTypeCode)
	ctx.Step(`^the data has vendor "([^"]*)" and model "([^"]*)"$`, pvc.theDataHasVendorAndModel)
	ctx.Step(`^the data has agency "([^"]*)", satellite "([^"]*)" and sensor "([^"]*)"$`, pvc.theDataHasAgencySatelliteAndSensor)
	ctx.Step(`^the data has carrier type "([^"]*)"$`, pvc.theDataHasCarrierType)
	ctx.Step(`^the data has platform height (-?\d+\.?\d*) m$`, pvc.theDataHasPlatformHeight)
	ctx.Step(`^the data has latitude (-?\d+\.?\d*) and longitude (-?\d+\.?\d*)$`, pvc.theDataHasLatitudeAndLongitude)
	ctx.Step(`^the data has max depth (-?\d+\.?\d*) m and operating depth (-?\d+\.?\d*) m$`, pvc.theDataHasMaxDepthAndOperatingDepth)

	// When steps
	ctx.Step(`^I validate the data as a "([^"]*)" platform$`, pvc.iValidateTheDataAsAPlatform)

	// Then steps
	ctx.Step(`^the data should be valid$`, pvc.theDataShouldBeValid)
	ctx.Step(`^the data should be invalid$`, pvc.theDataShouldBeInvalid)
	ctx.Step(`^validation should report "([^"]*)"$`, pvc.validationShouldReport)
	ctx.Step(`^validation should report (\d+) violations?$`, pvc.validationShouldReportViolations)
}
