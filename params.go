package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/alessio/shellescape"

	"github.com/restapidev/objects-contract-tests/framework"
)

type commandParams struct {
	configPath     string
	serviceURL     string
	timeoutSeconds int
	filters        framework.RegexFilters
	debug          bool
	debugAll       bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.configPath, "config", "", "path to the YAML configuration file")
	fs.StringVar(&c.serviceURL, "url", "", "base URL of the objects service (overrides the config file)")
	fs.IntVar(&c.timeoutSeconds, "timeout", 0, "per-request timeout in seconds (overrides the config file)")
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select tests to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select tests not to run")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all tests")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	if c.configPath == "" && c.serviceURL == "" && os.Getenv("OBJECTS_API_BASE_URL") == "" {
		fmt.Fprintln(os.Stderr, "either -config or -url is required")
		fs.Usage()
		return false
	}
	return true
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}

// rerunCommand builds a command line that reruns exactly the tests that failed,
// so it can be pasted straight into a shell.
func rerunCommand(argv0 string, params commandParams, results framework.Results) string {
	var b commandBuilder
	b.add(argv0)
	if params.configPath != "" {
		b.add("-config", params.configPath)
	}
	if params.serviceURL != "" {
		b.add("-url", params.serviceURL)
	}
	b.add("-debug")
	for _, f := range results.Failures {
		b.add("-run", exactTestPattern(f.TestID))
	}
	return b.String()
}

// exactTestPattern builds a -run pattern that selects exactly the given test:
// one anchored regex per path component, so the test's ancestor groups match
// too and are descended into.
func exactTestPattern(id framework.TestID) string {
	parts := make([]string, 0, len(id.Path))
	for _, name := range id.Path {
		parts = append(parts, "^"+regexp.QuoteMeta(name)+"$")
	}
	return strings.Join(parts, "/")
}
