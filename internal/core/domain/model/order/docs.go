// Package order contains the Order aggregate and its status state machines.
//
// Order is the single shared mutable resource of the fulfillment workflow. It
// carries the commercial and customer data captured at checkout, the business
// lifecycle status, and the shipping-carrier linkage that is populated
// progressively as the shipment-creation workflow advances.
//
// Two independent status fields live on the aggregate:
//
//   - Status: the business lifecycle (pending/processing/shipped/delivered/cancelled),
//     written by order management and only read by the shipping workflow.
//   - ShippingStatus: the shipping workflow state machine. Automated transitions
//     only move forward (pending -> processing -> shipped -> delivered, with
//     cancelled reachable from any non-terminal state); manual operator overrides
//     via OverrideShippingStatus are the sole exception and may set any value.
//
// All transitions are centralized in the ShippingStatus transition methods so
// that illegal transitions are rejected in one place rather than relying on
// call-site discipline.
//
// Carrier linkage invariants enforced by the aggregate:
//
//   - a carrier shipment id is only present together with a carrier order id
//   - label and manifest URLs are only present together with a carrier shipment id
package order
