// Package order holds the Order aggregate: identity, type and payment, the fee
// breakdown fixed at creation, and the status machine
//
//	placed -> accepted -> preparing -> ready -> picked_up -> delivered
//	placed -> rejected
//	any state before delivered -> cancelled
//
// A delivery partner may be attached only while the order is active
// (accepted, preparing, ready or picked_up). Partner occupancy is derived from
// this set; nothing on the partner records it.
package order
