// Package kernel contains shared value objects used across the domain model.
//
// The kernel holds primitives that carry meaning in every aggregate of the
// fulfillment domain but belong to none of them, currently the UUID identifier
// value object. Types in this package are immutable, validated on construction,
// and safe for concurrent use.
package kernel
