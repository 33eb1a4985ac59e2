package framework

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Results is the accumulated outcome of a test run.
type Results struct {
	Tests    []TestResult
	Failures []TestResult
	Skipped  []TestResult
}

// TestResult is the outcome of a single test.
type TestResult struct {
	TestID  TestID
	Errors  []error
	Skipped bool
}

// OK returns true if no tests failed.
func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// TestID identifies a test by the names of the test and its ancestors.
type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// PrintResults writes a summary of the test run to standard output.
func PrintResults(results Results) {
	if results.OK() {
		fmt.Println(color.GreenString("All tests passed"))
	} else {
		fmt.Println(color.RedString("FAILED TESTS (%d):", len(results.Failures)))
		for _, f := range results.Failures {
			fmt.Println(color.RedString("  * %s", f.TestID))
		}
	}
	fmt.Printf("Tests run: %d, skipped: %d, failures: %d\n",
		len(results.Tests), len(results.Skipped), len(results.Failures))
}
