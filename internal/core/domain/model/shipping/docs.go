// Package shipping contains the ephemeral value types exchanged with the
// shipping-carrier aggregator: rate requests and quotes, shipment creation
// requests and their normalized identity, document URLs, and tracking
// queries/snapshots.
//
// Nothing in this package is persisted. Rate quotes live only for the duration
// of one shipment-creation attempt; tracking snapshots are passed through to
// the caller opaquely. The Order aggregate is the sole durable record, and it
// stores only the normalized identifiers and document URLs.
package shipping
