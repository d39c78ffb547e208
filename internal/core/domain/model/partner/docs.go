// Package partner models delivery partners: identity, presence (online flag and last
// known location) and the lifetime delivery counter maintained by settlement.
package partner
