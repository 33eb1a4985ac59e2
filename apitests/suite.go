package apitests

import (
	"github.com/restapidev/objects-contract-tests/config"
	"github.com/restapidev/objects-contract-tests/framework"
	"github.com/restapidev/objects-contract-tests/rest"
)

// RunTestSuite runs the full objects API test suite against the service that
// the client is configured for. A fresh fixture store is created for this run
// and injected into every test scope; no state survives the call.
//
// The suite runs sequentially on the calling goroutine. The order of the Run
// calls below is the ordering contract between dependent tests: the create
// test must run before the tests that consume its fixture.
func RunTestSuite(
	client *rest.Client,
	cfg *config.Config,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := newTestScope(c, &environment{
			client:   client,
			config:   cfg,
			fixtures: NewStore(),
		})

		t.Run("crud", DoCRUDTests)
		t.Run("negative", DoNegativeTests)
		t.Run("lifecycle", DoLifecycleTest)
	})
}
