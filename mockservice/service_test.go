package mockservice

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/restapidev/objects-contract-tests/objects"
	"github.com/restapidev/objects-contract-tests/rest"
)

func newTestClient(t *testing.T) (*rest.Client, *Service) {
	t.Helper()
	service := New(nil)
	server := httptest.NewServer(service)
	t.Cleanup(server.Close)
	return rest.NewClient(server.URL, time.Second*5, "", nil), service
}

func validPayload(name string) ldvalue.Value {
	return ldvalue.ObjectBuild().
		Set("name", ldvalue.String(name)).
		Set("data", ldvalue.ObjectBuild().Set("year", ldvalue.Int(2019)).Build()).
		Build()
}

func TestListStartsEmpty(t *testing.T) {
	client, _ := newTestClient(t)

	resp, err := client.Send("GET", "/objects", ldvalue.Null())
	require.NoError(t, err)

	assert.Equal(t, 200, resp.Status)
	require.Equal(t, ldvalue.ArrayType, resp.Body.Type())
	assert.Equal(t, 0, resp.Body.Count())
}

func TestCreateAssignsIDAndStoresObject(t *testing.T) {
	client, service := newTestClient(t)

	resp, err := client.Send("POST", "/objects", validPayload("thing"))
	require.NoError(t, err)
	require.Equal(t, 200, resp.Status)

	id := resp.Body.GetByKey("id").StringValue()
	assert.NotEmpty(t, id)
	assert.Equal(t, "thing", resp.Body.GetByKey("name").StringValue())
	assert.Equal(t, 1, service.Count())

	resp, err = client.Send("GET", "/objects/"+id, ldvalue.Null())
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Status)
	assert.Equal(t, id, resp.Body.GetByKey("id").StringValue())
	assert.Equal(t, 2019, resp.Body.GetByKey("data").GetByKey("year").IntValue())
}

func TestListReturnsObjectsInInsertionOrder(t *testing.T) {
	client, service := newTestClient(t)
	ids := service.Seed(
		objects.Object{Name: "first", Data: ldvalue.Null()},
		objects.Object{Name: "second", Data: ldvalue.Null()},
	)

	resp, err := client.Send("GET", "/objects", ldvalue.Null())
	require.NoError(t, err)
	require.Equal(t, 2, resp.Body.Count())
	assert.Equal(t, ids[0], resp.Body.GetByIndex(0).GetByKey("id").StringValue())
	assert.Equal(t, ids[1], resp.Body.GetByIndex(1).GetByKey("id").StringValue())
}

func TestGetUnknownIDReturns404WithErrorBody(t *testing.T) {
	client, _ := newTestClient(t)

	resp, err := client.Send("GET", "/objects/nope", ldvalue.Null())
	require.NoError(t, err)

	assert.Equal(t, 404, resp.Status)
	assert.NotEmpty(t, resp.Body.GetByKey("error").StringValue())
}

func TestCreateRejectsMissingName(t *testing.T) {
	client, service := newTestClient(t)

	body := ldvalue.ObjectBuild().Set("data", ldvalue.ObjectBuild().Build()).Build()
	resp, err := client.Send("POST", "/objects", body)
	require.NoError(t, err)

	assert.Equal(t, 400, resp.Status)
	assert.Contains(t, resp.Body.GetByKey("error").StringValue(), "name")
	assert.Equal(t, 0, service.Count())
}

func TestCreateRejectsWrongTypedFields(t *testing.T) {
	client, _ := newTestClient(t)

	body := ldvalue.ObjectBuild().
		Set("name", ldvalue.Int(123)).
		Set("data", ldvalue.String("not an object")).
		Build()
	resp, err := client.Send("POST", "/objects", body)
	require.NoError(t, err)

	assert.Equal(t, 400, resp.Status)
}

func TestCreateRejectsNonObjectBody(t *testing.T) {
	client, _ := newTestClient(t)

	resp, err := client.Send("POST", "/objects", ldvalue.String("just a string"))
	require.NoError(t, err)

	assert.Equal(t, 400, resp.Status)
}

func TestUpdateReplacesObjectAndKeepsID(t *testing.T) {
	client, _ := newTestClient(t)

	resp, err := client.Send("POST", "/objects", validPayload("before"))
	require.NoError(t, err)
	id := resp.Body.GetByKey("id").StringValue()

	resp, err = client.Send("PUT", "/objects/"+id, validPayload("after"))
	require.NoError(t, err)
	require.Equal(t, 200, resp.Status)
	assert.Equal(t, id, resp.Body.GetByKey("id").StringValue())
	assert.Equal(t, "after", resp.Body.GetByKey("name").StringValue())
}

func TestUpdateUnknownIDReturns404(t *testing.T) {
	client, _ := newTestClient(t)

	resp, err := client.Send("PUT", "/objects/nope", validPayload("x"))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.Status)
}

func TestUpdateRejectsInvalidPayloadBeforeCheckingID(t *testing.T) {
	client, _ := newTestClient(t)

	resp, err := client.Send("PUT", "/objects/nope", ldvalue.String("bad"))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.Status)
}

func TestDeleteRemovesObject(t *testing.T) {
	client, service := newTestClient(t)

	resp, err := client.Send("POST", "/objects", validPayload("doomed"))
	require.NoError(t, err)
	id := resp.Body.GetByKey("id").StringValue()

	resp, err = client.Send("DELETE", "/objects/"+id, ldvalue.Null())
	require.NoError(t, err)
	assert.Equal(t, 200, resp.Status)
	assert.Equal(t, 0, service.Count())

	resp, err = client.Send("GET", "/objects/"+id, ldvalue.Null())
	require.NoError(t, err)
	assert.Equal(t, 404, resp.Status)
}

func TestDeleteUnknownIDReturns404(t *testing.T) {
	client, _ := newTestClient(t)

	resp, err := client.Send("DELETE", "/objects/nope", ldvalue.Null())
	require.NoError(t, err)
	assert.Equal(t, 404, resp.Status)
}

func TestUnrecognizedRouteReturns404(t *testing.T) {
	client, _ := newTestClient(t)

	resp, err := client.Send("GET", "/objects/A/F", ldvalue.Null())
	require.NoError(t, err)
	assert.Equal(t, 404, resp.Status)
	assert.NotEmpty(t, resp.Body.GetByKey("error").StringValue())
}
