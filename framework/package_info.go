// Package framework contains the generic test harness infrastructure that is not
// specific to the objects API.
//
// The general model is:
//
// 1. There is a notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to
// accumulate success/failure results, without running under the Go test runner.
//
// 2. Tests can be selected or excluded by regex filters supplied on the command
// line.
//
// 3. Each test can produce debug output which is captured and replayed by the
// test logger, normally only when the test fails.
//
// The domain-specific code that knows what is being tested is responsible for
// providing the HTTP requests to send, the assertions to make, and a
// domain-specific test API on top of the test context.
package framework
