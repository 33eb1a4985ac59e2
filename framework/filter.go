package framework

import (
	"fmt"
	"regexp"
	"strings"
)

// Filter is a function that can determine whether to run a specific test or not.
type Filter func(TestID) bool

// RegexFilters holds the regex patterns specified with the -run and -skip
// command-line options.
type RegexFilters struct {
	MustMatch    RegexList
	MustNotMatch RegexList
}

// AsFilter makes RegexFilters usable as a Filter.
//
// MustMatch treats its patterns the way go test -run does: the pattern is
// split on slashes and each element must match the test path element at the
// same depth. A group whose path is shorter than the pattern still runs when
// its components all match, so that the matching descendants can be reached.
// MustNotMatch applies to the full slash-joined test name.
func (r RegexFilters) AsFilter(id TestID) bool {
	return (!r.MustMatch.IsDefined() || r.MustMatch.MatchPathComponents(id.Path)) &&
		!r.MustNotMatch.AnyMatch(id.String())
}

// RegexList is a list of regexes that can be built up from repeated command-line
// options; it implements flag.Value.
type RegexList struct {
	patterns []regexPattern
}

type regexPattern struct {
	whole      *regexp.Regexp
	components []*regexp.Regexp
}

func (r RegexList) String() string {
	var ss []string
	for _, p := range r.patterns {
		ss = append(ss, `"`+p.whole.String()+`"`)
	}
	return strings.Join(ss, " or ")
}

// Set is called by the command line parser. The pattern must remain a valid
// regex after being split on slashes, since slashes separate test path levels.
func (r *RegexList) Set(value string) error {
	whole, err := regexp.Compile(value)
	if err != nil {
		return fmt.Errorf("invalid regex: %w", err)
	}
	var components []*regexp.Regexp
	for _, part := range strings.Split(value, "/") {
		c, err := regexp.Compile(part)
		if err != nil {
			return fmt.Errorf("invalid regex element %q: %w", part, err)
		}
		components = append(components, c)
	}
	r.patterns = append(r.patterns, regexPattern{whole: whole, components: components})
	return nil
}

func (r RegexList) IsDefined() bool {
	return len(r.patterns) != 0
}

// AnyMatch reports whether any pattern in the list matches the string.
func (r RegexList) AnyMatch(s string) bool {
	for _, p := range r.patterns {
		if p.whole.MatchString(s) {
			return true
		}
	}
	return false
}

// MatchPathComponents reports whether any pattern in the list matches the test
// path, component by component. Path components beyond the end of the pattern
// are unconstrained, and a path shorter than the pattern matches as long as
// all of its components do.
func (r RegexList) MatchPathComponents(path []string) bool {
	for _, p := range r.patterns {
		if p.matchPathComponents(path) {
			return true
		}
	}
	return false
}

func (p regexPattern) matchPathComponents(path []string) bool {
	n := len(path)
	if len(p.components) < n {
		n = len(p.components)
	}
	for i := 0; i < n; i++ {
		if !p.components[i].MatchString(path[i]) {
			return false
		}
	}
	return true
}

// PrintFilterDescription explains on standard output which tests will be
// skipped due to the filter criteria, if any.
func PrintFilterDescription(filters RegexFilters) {
	if filters.MustMatch.IsDefined() || filters.MustNotMatch.IsDefined() {
		fmt.Println("Some tests will be skipped based on the filter criteria for this test run:")
		if filters.MustMatch.IsDefined() {
			fmt.Printf("  skip any not matching %s\n", filters.MustMatch)
		}
		if filters.MustNotMatch.IsDefined() {
			fmt.Printf("  skip any matching %s\n", filters.MustNotMatch)
		}
		fmt.Println()
	}
}
