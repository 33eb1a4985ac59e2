package main

import (
	"fmt"
	"log"
	"os"

	"github.com/restapidev/objects-contract-tests/apitests"
	"github.com/restapidev/objects-contract-tests/config"
	"github.com/restapidev/objects-contract-tests/framework"
	"github.com/restapidev/objects-contract-tests/rest"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	cfg, err := config.Load(params.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %s\n", err)
		os.Exit(1)
	}
	if params.serviceURL != "" {
		cfg.BaseURL = params.serviceURL
	}
	if params.timeoutSeconds > 0 {
		cfg.TimeoutSeconds = params.timeoutSeconds
	}

	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}

	client := rest.NewClient(cfg.BaseURL, cfg.Timeout(), cfg.Auth.Token, mainDebugLogger)

	fmt.Println()
	framework.PrintFilterDescription(params.filters)
	fmt.Printf("Running test suite against %s\n", cfg.BaseURL)

	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	results := apitests.RunTestSuite(client, cfg, params.filters.AsFilter, testLogger)

	fmt.Println()
	framework.PrintResults(results)
	if !results.OK() {
		fmt.Printf("\nTo rerun only the failed tests:\n  %s\n", rerunCommand(os.Args[0], params, results))
		os.Exit(1)
	}
}
