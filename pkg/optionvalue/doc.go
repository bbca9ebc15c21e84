// Package optionvalue derives the canonical machine identifier of a select
// option from its user-typed label. Values never start with a digit, match
// Pattern and are uppercase, so they can be stored as enum members without
// further escaping. A label that cannot be mapped onto the pattern is rejected
// with an *InvalidLabelError instead of being truncated or replaced.
package optionvalue
