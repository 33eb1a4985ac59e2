// Package objects defines the wire shapes of the objects service API that the
// test suite exercises.
package objects

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Object is a single object resource as represented by the service. Data is an
// arbitrary JSON object supplied by the creator; the service stores it opaquely.
type Object struct {
	ID   string        `json:"id"`
	Name string        `json:"name"`
	Data ldvalue.Value `json:"data"`
}

// ErrorResponse is the body shape the service returns for rejected requests.
type ErrorResponse struct {
	Error string `json:"error"`
}
