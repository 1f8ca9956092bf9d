// Package carrier implements the CarrierGateway port against the external
// shipping aggregator's HTTP API. Every operation authenticates with the
// aggregator before performing its call; no token is cached between calls.
package carrier
