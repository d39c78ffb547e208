// Package queries contains read operations. Handlers read straight from the database
// with SQL and return read models; they never load aggregates.
package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetAvailablePartnersQueryIsNotConstructed = errors.New(
	"GetAvailablePartnersQuery must be created via NewGetAvailablePartnersQuery constructor",
)

// GetAvailablePartnersQuery lists the partner directory: partners that could take an
// order right now. When near is set, each entry carries its distance to it and the
// list is sorted nearest first.
type GetAvailablePartnersQuery struct {
	near  *kernel.Location
	guard guard.ConstructorGuard
}

func NewGetAvailablePartnersQuery(near *kernel.Location) (GetAvailablePartnersQuery, error) {
	if near != nil {
		if err := near.Validate(); err != nil {
			return GetAvailablePartnersQuery{}, err
		}
	}
	return GetAvailablePartnersQuery{near: near, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAvailablePartnersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailablePartnersQueryIsNotConstructed)
}

func (q GetAvailablePartnersQuery) Near() *kernel.Location {
	return q.near
}

type GetAvailablePartnersQueryResponse struct {
	ID              kernel.UUID
	Name            string
	VehicleType     string
	Location        kernel.Location
	TotalDeliveries int
	// DistanceKm is set only when the query was given a reference point.
	DistanceKm *float64
}
