package apitests

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DoCRUDTests runs the basic operation tests in dependency order: the create
// test publishes the new object's id to the fixture store, and the get,
// update, and delete tests consume it. A consumer that finds no fixture fails
// immediately without calling the service.
func DoCRUDTests(t *T) {
	t.Run("list objects", func(t *T) {
		resp := t.Get("/objects")
		t.RequireStatus(resp, 200)
		body := t.RequireJSONArray(resp)
		if body.Count() > 0 {
			id := body.GetByIndex(0).GetByKey("id").StringValue()
			assert.NotEmpty(t, id, "first listed object has no id")
			if id != "" {
				t.SaveFixture(FixtureKeyObjectID, id)
			}
		}
	})

	t.Run("create object", func(t *T) {
		resp := t.Post("/objects", macBookPayload())
		t.RequireStatus(resp, 200)
		body := t.RequireJSONObject(resp)
		id := body.GetByKey("id").StringValue()
		require.NotEmpty(t, id, "create response did not include an id")
		t.SaveFixture(FixtureKeyObjectID, id)
	})

	t.Run("get object by id", func(t *T) {
		id := t.MustGetFixture(FixtureKeyObjectID)
		resp := t.Get("/objects/" + id)
		t.RequireStatus(resp, 200)
		body := t.RequireJSONObject(resp)
		assert.Equal(t, id, body.GetByKey("id").StringValue(), "returned id did not match requested id")
		assert.NotEmpty(t, body.GetByKey("name").StringValue(), "returned object has no name")
	})

	t.Run("update object", func(t *T) {
		id := t.MustGetFixture(FixtureKeyObjectID)
		resp := t.Put("/objects/"+id, updatedMacBookPayload())
		t.RequireStatus(resp, t.Config().ExpectedUpdateStatus())
	})

	t.Run("delete object", func(t *T) {
		id := t.MustGetFixture(FixtureKeyObjectID)
		resp := t.Delete("/objects/" + id)
		t.RequireStatus(resp, 200)
		// Later tests must not reuse the deleted id as a live object, but the
		// deleted-object check still needs to know what it was.
		t.SaveFixture(FixtureKeyDeletedObjectID, id)
		t.ClearFixture(FixtureKeyObjectID)
	})

	t.Run("get deleted object", func(t *T) {
		id := t.MustGetFixture(FixtureKeyDeletedObjectID)
		resp := t.Get("/objects/" + id)
		assert.NotEqual(t, 200, resp.Status, "service still serves an object that was deleted")
	})
}
