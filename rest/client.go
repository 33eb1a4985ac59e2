// Package rest is a thin adapter over the HTTP client used to call the objects
// service. It knows nothing about individual test cases; it sends one request,
// returns the parsed response, and reports transport problems as TransportError.
package rest

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/restapidev/objects-contract-tests/framework"
)

// Response is what a test case sees after issuing a request. Body is the
// parsed JSON value, or null if the response had no body or the body was not
// valid JSON; RawBody always holds the original bytes for diagnostics.
type Response struct {
	Status  int
	Body    ldvalue.Value
	RawBody []byte
	Headers http.Header
}

// TransportError indicates that a request could not be completed at all:
// connection failure, timeout, or a malformed request. It is distinct from an
// unexpected status code, which is an assertion concern, not a transport one.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Client issues requests against a single base URL. It performs no retries;
// a transport failure is surfaced to the caller so the test can fail loudly.
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client
	logger     framework.Logger
}

// NewClient creates a Client for the given base URL. The timeout applies to
// each individual request. An empty authToken disables the Authorization
// header; a nil logger disables request logging.
func NewClient(baseURL string, timeout time.Duration, authToken string, logger framework.Logger) *Client {
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		authToken:  authToken,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// SetLogger redirects the client's request logging, so that output produced
// while a test is running is captured with that test.
func (c *Client) SetLogger(logger framework.Logger) {
	if logger == nil {
		logger = framework.NullLogger()
	}
	c.logger = logger
}

// Send issues a single request. The path is appended to the base URL and must
// begin with a slash. A null body value means no request body; anything else
// is serialized as JSON.
func (c *Client) Send(method, path string, body ldvalue.Value) (Response, error) {
	url := c.baseURL + path

	var reqBody io.Reader
	if !body.IsNull() {
		data := []byte(body.JSONString())
		reqBody = bytes.NewReader(data)
		c.logger.Printf("%s %s with body: %s", method, url, string(data))
	} else {
		c.logger.Printf("%s %s", method, url)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		return Response{}, &TransportError{Method: method, URL: url, Err: err}
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, &TransportError{Method: method, URL: url, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, &TransportError{Method: method, URL: url, Err: err}
	}

	c.logger.Printf("received %d with body: %s", resp.StatusCode, string(data))

	return Response{
		Status:  resp.StatusCode,
		Body:    ldvalue.Parse(data),
		RawBody: data,
		Headers: resp.Header,
	}, nil
}
