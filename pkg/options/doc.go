// Package options models the option lists attached to SELECT and MULTI_SELECT
// fields. A Builder turns user-typed labels into options whose values are
// derived with optionvalue.ComputeFromLabel, and a Set can be validated,
// persisted as YAML/JSON and exported as an OpenAPI enum schema.
package options
