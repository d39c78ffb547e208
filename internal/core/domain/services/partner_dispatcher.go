package services

import (
	"cmp"
	"errors"
	"slices"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
)

// ErrPartnerNotFound is returned by Nearest when no partner can be offered the order.
var ErrPartnerNotFound = errors.New("partner not found")

// Candidate is a dispatchable partner together with its distance from the shop.
type Candidate struct {
	Partner    *partner.Partner
	DistanceKm float64
}

// PartnerDispatcher chooses which partner gets an order.
//
// Selection rules:
//   - only dispatchable partners (active, online, located) are considered
//   - the partner closest to the shop by great-circle distance wins
//   - equal distances are broken by the lowest partner ID
//
// The dispatcher knows nothing about occupancy; callers pass partners that were
// free when read and re-check each candidate under a row lock before assigning.
//
// Example usage:
//
//	dispatcher := services.NewPartnerDispatcher()
//	candidates, err := dispatcher.Rank(shop, available)
//	for _, c := range candidates {
//	    // lock c.Partner, re-check, then
//	    err = dispatcher.Assign(o, c, time.Now())
//	}
type PartnerDispatcher struct{}

func NewPartnerDispatcher() PartnerDispatcher {
	return PartnerDispatcher{}
}

// Rank orders the partners by preference for a pickup at shop. Partners that are
// not dispatchable are left out; an empty result is not an error.
func (d PartnerDispatcher) Rank(shop kernel.Location, partners []*partner.Partner) ([]Candidate, error) {
	if err := shop.Validate(); err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(partners))
	for _, p := range partners {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if !p.IsDispatchable() {
			continue
		}

		km, err := shop.DistanceKm(*p.Location())
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, Candidate{Partner: p, DistanceKm: km})
	}

	slices.SortFunc(candidates, func(a, b Candidate) int {
		if c := cmp.Compare(a.DistanceKm, b.DistanceKm); c != 0 {
			return c
		}
		switch {
		case a.Partner.ID().Less(b.Partner.ID()):
			return -1
		case b.Partner.ID().Less(a.Partner.ID()):
			return 1
		default:
			return 0
		}
	})

	return candidates, nil
}

// Nearest returns the preferred candidate, or ErrPartnerNotFound.
func (d PartnerDispatcher) Nearest(shop kernel.Location, partners []*partner.Partner) (Candidate, error) {
	candidates, err := d.Rank(shop, partners)
	if err != nil {
		return Candidate{}, err
	}
	if len(candidates) == 0 {
		return Candidate{}, ErrPartnerNotFound
	}
	return candidates[0], nil
}

// Assign attaches the candidate to the order.
func (d PartnerDispatcher) Assign(o *order.Order, c Candidate, at time.Time) error {
	if err := c.Partner.Validate(); err != nil {
		return err
	}
	return o.AssignPartner(c.Partner.ID(), c.DistanceKm, at)
}
