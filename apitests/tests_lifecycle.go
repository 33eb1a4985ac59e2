package apitests

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DoLifecycleTest exercises the whole create/get/update/delete sequence as a
// single case that carries its own local state, instead of spanning several
// top-level tests. It holds the created id in a local variable, so it is
// self-contained even when the individual CRUD cases are filtered out.
func DoLifecycleTest(t *T) {
	t.Run("create, read, update, delete", func(t *T) {
		resp := t.Post("/objects", macBookPayload())
		t.RequireStatus(resp, 200)
		id := t.RequireJSONObject(resp).GetByKey("id").StringValue()
		require.NotEmpty(t, id, "create response did not include an id")

		resp = t.Get("/objects/" + id)
		t.RequireStatus(resp, 200)
		body := t.RequireJSONObject(resp)
		assert.Equal(t, id, body.GetByKey("id").StringValue())
		assert.Equal(t, "Apple MacBook Pro 16", body.GetByKey("name").StringValue())

		resp = t.Put("/objects/"+id, updatedMacBookPayload())
		expectedStatus := t.Config().ExpectedUpdateStatus()
		t.RequireStatus(resp, expectedStatus)
		if expectedStatus == 200 {
			assert.Equal(t, id, t.RequireJSONObject(resp).GetByKey("id").StringValue())
		}

		resp = t.Delete("/objects/" + id)
		t.RequireStatus(resp, 200)

		resp = t.Get("/objects/" + id)
		assert.NotEqual(t, 200, resp.Status, "service still serves an object that was deleted")
	})
}
