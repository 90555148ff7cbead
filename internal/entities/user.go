package entities

import (
	"time"

	"github.com/google/uuid"
)

// Credentials is the capability set shared by every account that can
// authenticate: sellers and delivery partners compose it instead of
// inheriting from a common user type.
type Credentials struct {
	ID            uuid.UUID
	Name          string
	Email         string
	PasswordHash  string
	EmailVerified bool
	CreatedAt     time.Time
}

type Seller struct {
	Credentials

	Address *string
	ZipCode *int64
}

type DeliveryPartner struct {
	Credentials

	ServiceableZipCodes []int64
	MaxHandlingCapacity int
}

// RemainingCapacity is derived, never stored: the ceiling minus the count
// of assigned shipments whose derived status is still open.
func (p *DeliveryPartner) RemainingCapacity(activeShipments int) int {
	return p.MaxHandlingCapacity - activeShipments
}

func (p *DeliveryPartner) ServesZip(zip int64) bool {
	for _, z := range p.ServiceableZipCodes {
		if z == zip {
			return true
		}
	}
	return false
}

// PartnerCandidate pairs a zip-eligible partner with its live shipment
// count as counted by storage at lookup time.
type PartnerCandidate struct {
	Partner         DeliveryPartner
	ActiveShipments int
}

func (c *PartnerCandidate) Remaining() int {
	return c.Partner.RemainingCapacity(c.ActiveShipments)
}

type SellerCreate struct {
	Name     string
	Email    string
	Password string
	Address  *string
	ZipCode  *int64
}

type PartnerCreate struct {
	Name                string
	Email               string
	Password            string
	ServiceableZipCodes []int64
	MaxHandlingCapacity int
}

type PartnerModify struct {
	ID                  *uuid.UUID
	ServiceableZipCodes *[]int64
	MaxHandlingCapacity *int
}

type ActorRole string

const (
	RoleSeller  ActorRole = "seller"
	RolePartner ActorRole = "partner"
)

func (r ActorRole) String() string {
	return string(r)
}

// Actor is the authenticated identity resolved from an access token.
type Actor struct {
	ID   uuid.UUID
	Role ActorRole
}
