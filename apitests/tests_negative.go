package apitests

import (
	"github.com/stretchr/testify/assert"
)

// DoNegativeTests verifies that the service rejects bad input with the right
// status codes. None of these cases read or write fixtures; they can run in
// any order relative to the CRUD tests.
func DoNegativeTests(t *T) {
	t.Run("create with missing field", func(t *T) {
		resp := t.Post("/objects", missingFieldPayload())
		t.RequireStatus(resp, 400)
		body := t.RequireJSONObject(resp)
		assert.NotEmpty(t, body.GetByKey("error").StringValue(),
			"rejection body did not include an error message")
	})

	t.Run("create with wrong-typed fields", func(t *T) {
		resp := t.Post("/objects", wrongTypesPayload())
		t.RequireStatus(resp, 400)
	})

	t.Run("unknown route", func(t *T) {
		resp := t.Get("/objects/A/F")
		t.RequireStatus(resp, 404)
	})
}
