// Package services holds domain logic that spans aggregates: choosing a partner for
// an order (PartnerDispatcher) and pricing an order (FeeCalculator).
package services
