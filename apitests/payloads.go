package apitests

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// macBookPayload is the canonical well-formed create payload used by the
// positive tests.
func macBookPayload() ldvalue.Value {
	return ldvalue.ObjectBuild().
		Set("name", ldvalue.String("Apple MacBook Pro 16")).
		Set("data", ldvalue.ObjectBuild().
			Set("year", ldvalue.Int(2019)).
			Set("price", ldvalue.Float64(1849.99)).
			Set("cpuModel", ldvalue.String("Intel Core i9")).
			Set("hardDiskSize", ldvalue.String("1 TB")).
			Build()).
		Build()
}

// updatedMacBookPayload is a well-formed update payload for the same object.
func updatedMacBookPayload() ldvalue.Value {
	return ldvalue.ObjectBuild().
		Set("name", ldvalue.String("Apple MacBook Pro 16")).
		Set("data", ldvalue.ObjectBuild().
			Set("year", ldvalue.Int(2019)).
			Set("price", ldvalue.Float64(2049.99)).
			Set("cpuModel", ldvalue.String("Intel Core i9")).
			Set("hardDiskSize", ldvalue.String("2 TB")).
			Build()).
		Build()
}

// missingFieldPayload omits the required name field.
func missingFieldPayload() ldvalue.Value {
	return ldvalue.ObjectBuild().
		Set("data", ldvalue.ObjectBuild().
			Set("year", ldvalue.Int(2019)).
			Build()).
		Build()
}

// wrongTypesPayload has the right field names with the wrong types.
func wrongTypesPayload() ldvalue.Value {
	return ldvalue.ObjectBuild().
		Set("name", ldvalue.Int(12345)).
		Set("data", ldvalue.String("not an object")).
		Build()
}
