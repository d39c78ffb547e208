// Package kernel provides the shared value objects of the dispatch domain.
//
// The package includes:
//   - UUID: identifier for partners, orders, wallets and transactions
//   - Location: a validated latitude/longitude pair with haversine distance
//
// Both are immutable and safe for concurrent use. Zero values are invalid and
// fail Validate, so data that skipped a constructor is caught at the boundary.
package kernel
