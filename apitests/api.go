package apitests

import (
	"github.com/stretchr/testify/require"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/restapidev/objects-contract-tests/config"
	"github.com/restapidev/objects-contract-tests/framework"
	"github.com/restapidev/objects-contract-tests/rest"
)

type environment struct {
	client   *rest.Client
	fixtures *Store
	config   *config.Config
}

// T represents a test or subtest in the objects API test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an
// environment that is outside of the Go test runner, with extra features such
// as captured debug logging. Those features are provided by the lower-level
// framework package.
//
// It also provides functionality that is specific to testing the objects API:
// request helpers with built-in transport-failure assertions, and access to
// the fixture store that carries resource identifiers between
// ordering-dependent tests.
//
// To make test assertions, use the assert and require packages, passing the *T
// as if it were a *testing.T.
type T struct {
	context *framework.Context
	env     *environment
}

func newTestScope(context *framework.Context, env *environment) *T {
	t := &T{context: context, env: env}
	// Route the client's request logging into this test's captured output.
	// The suite runs on a single goroutine, so the client is never shared
	// between two live scopes.
	env.client.SetLogger(context.DebugLogger())
	return t
}

// Errorf is called by assertions to log a test failure. It does not cause an
// immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately
// exit. The methods in the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(newTestScope(c, t.env))
	})
}

// Debug logs some debug output for the test. The output will be passed to the
// test logger at the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// Defer registers a cleanup to run when this test finishes.
func (t *T) Defer(cleanup func()) {
	t.context.Defer(cleanup)
}

// Config returns the harness configuration for this run.
func (t *T) Config() *config.Config {
	return t.env.config
}

// Fixtures returns the fixture store for this suite run.
func (t *T) Fixtures() *Store {
	return t.env.fixtures
}

// Get issues a GET request, failing the test immediately on a transport error.
func (t *T) Get(path string) rest.Response {
	return t.send("GET", path, ldvalue.Null())
}

// Post issues a POST request with a JSON body, failing the test immediately on
// a transport error.
func (t *T) Post(path string, body ldvalue.Value) rest.Response {
	return t.send("POST", path, body)
}

// Put issues a PUT request with a JSON body, failing the test immediately on a
// transport error.
func (t *T) Put(path string, body ldvalue.Value) rest.Response {
	return t.send("PUT", path, body)
}

// Delete issues a DELETE request, failing the test immediately on a transport
// error.
func (t *T) Delete(path string) rest.Response {
	return t.send("DELETE", path, ldvalue.Null())
}

func (t *T) send(method, path string, body ldvalue.Value) rest.Response {
	resp, err := t.env.client.Send(method, path, body)
	require.NoError(t, err)
	return resp
}

// RequireStatus fails the test immediately unless the response has the
// expected status code. The response body is included in the failure message
// since it usually explains the unexpected status.
func (t *T) RequireStatus(resp rest.Response, expectedStatus int) {
	if resp.Status != expectedStatus {
		require.Fail(t, "unexpected response status",
			"expected %d but got %d; response body was: %s", expectedStatus, resp.Status, string(resp.RawBody))
	}
}

// RequireJSONObject fails the test immediately unless the response body is a
// JSON object, which it returns.
func (t *T) RequireJSONObject(resp rest.Response) ldvalue.Value {
	if resp.Body.Type() != ldvalue.ObjectType {
		require.Fail(t, "response body was not a JSON object",
			"body was: %s", string(resp.RawBody))
	}
	return resp.Body
}

// RequireJSONArray fails the test immediately unless the response body is a
// JSON array, which it returns.
func (t *T) RequireJSONArray(resp rest.Response) ldvalue.Value {
	if resp.Body.Type() != ldvalue.ArrayType {
		require.Fail(t, "response body was not a JSON array",
			"body was: %s", string(resp.RawBody))
	}
	return resp.Body
}

// MustGetFixture returns the fixture value stored under the key, failing the
// test immediately with the store's diagnostic if it is absent. No HTTP call
// should be attempted after a missing fixture; this is an ordering problem,
// not a service problem.
func (t *T) MustGetFixture(key string) string {
	value, err := t.env.fixtures.Get(key)
	require.NoError(t, err)
	return value
}

// SaveFixture stores a value for later tests in this run.
func (t *T) SaveFixture(key, value string) {
	t.Debug("saving fixture %s = %s", key, value)
	t.env.fixtures.Set(key, value)
}

// ClearFixture removes a stored fixture value.
func (t *T) ClearFixture(key string) {
	t.Debug("clearing fixture %s", key)
	t.env.fixtures.Clear(key)
}
