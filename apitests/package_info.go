// Package apitests contains the objects API contract tests themselves and their
// supporting API.
//
// Test harness infrastructure that is not specific to the objects API, such as
// the test context and result reporting, is in the lower-level framework
// package. The HTTP client adapter is in the rest package.
//
// State that one test creates for another - currently just the identifier of
// the most recently created object - is held in a Store instance that exists
// for exactly one suite run and is injected into every test scope. Nothing is
// ever written to disk, so two consecutive runs cannot influence each other.
package apitests
