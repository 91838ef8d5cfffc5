package bdd

import (
	"os"
	"testing"

	"github.com/cucumber/godog"

	"github.com/sitesspectral/spectral-go/test/bdd/steps"
	"github.com/sitesspectral/spectral-go/test/helpers"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/domain", "features/application"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

func InitializeScenario(sc *godog.ScenarioContext) {
	// Register all step definitions
	// Domain layer scenarios (pure registry/strategy behavior, no database)
	steps.InitializePlatformNamingScenario(sc)
	steps.InitializePlatformValidationScenario(sc)

	// Application layer scenarios (real handlers over the shared test database)
	// NOTE: ProvisioningScenario registered BEFORE InstrumentMountingScenario so its
	// station/platform seeding steps take precedence (first registration wins in godog)
	steps.InitializePlatformProvisioningScenario(sc)
	steps.InitializeInstrumentMountingScenario(sc)
}

func TestMain(m *testing.M) {
	// Initialize shared test database for all integration tests
	// One in-memory database across scenarios avoids per-scenario DB creation
	if err := helpers.InitializeSharedTestDB(); err != nil {
		panic("Failed to initialize shared test database: " + err.Error())
	}
	defer helpers.CloseSharedTestDB()

	// Run tests
	os.Exit(m.Run())
}
