// Package shipment holds the shipment lifecycle model: the status machine,
// the transition policy, the domain events appended to a shipment's stream
// and the snapshot aggregate the orchestrating use cases mutate.
//
// Lifecycle:
//
//	New ──> Accepted ──> Processed ──> InTransit ──> Delivered
//	 │          │            │             │
//	 └──────────┴────────────┴─────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. An office change may only accompany
// a transition into InTransit. ValidateTransition is a pure function and the
// single place that decides which transitions are legal.
package shipment
