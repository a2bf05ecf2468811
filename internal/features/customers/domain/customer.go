package domain

import (
	"errors"
	"fmt"
)

// IDType represents the kind of identity document a customer registered with.
type IDType string

const (
	// IDTypeCC is the national citizenship card (cédula de ciudadanía).
	IDTypeCC IDType = "CC"
	// IDTypeTI is the minor's identity card (tarjeta de identidad).
	IDTypeTI IDType = "TI"
	// IDTypeCE is the foreigner's identity card (cédula de extranjería).
	IDTypeCE IDType = "CE"
)

// IDTypes lists every accepted identity document type.
var IDTypes = []IDType{IDTypeCC, IDTypeTI, IDTypeCE}

// ErrInvalidIDType is returned when the identity document type is not one of IDTypes.
var ErrInvalidIDType = errors.New("invalid identity document type")

// Customer represents a registered sender. The identifier number is the
// natural key and never changes after registration.
type Customer struct {
	// Names is the customer's given names.
	Names string `json:"nombres"`
	// Surnames is the customer's family names.
	Surnames string `json:"apellidos"`
	// IDNumber is the identity document number, unique across all customers.
	IDNumber string `json:"id_numero"`
	// IDType is the kind of identity document (CC, TI or CE).
	IDType IDType `json:"tipo_id"`
	// Address is the customer's street address.
	Address string `json:"direccion"`
	// Landline is the customer's fixed phone number.
	Landline string `json:"telefono_fijo"`
	// Mobile is the customer's mobile phone number.
	Mobile string `json:"celular"`
	// Neighborhood is the customer's neighborhood of residence.
	Neighborhood string `json:"barrio"`
}

// NewCustomer creates a Customer and validates the identity document type.
func NewCustomer(names, surnames, id string, idType IDType, address, landline, mobile, neighborhood string) (*Customer, error) {
	if !idType.Valid() {
		return nil, fmt.Errorf("%w: %q (expected one of %v)", ErrInvalidIDType, idType, IDTypes)
	}

	return &Customer{
		Names:        names,
		Surnames:     surnames,
		IDNumber:     id,
		IDType:       idType,
		Address:      address,
		Landline:     landline,
		Mobile:       mobile,
		Neighborhood: neighborhood,
	}, nil
}

// Valid reports whether t is one of the accepted identity document types.
func (t IDType) Valid() bool {
	switch t {
	case IDTypeCC, IDTypeTI, IDTypeCE:
		return true
	}
	return false
}

// FullName returns the customer's display name.
func (c *Customer) FullName() string {
	return c.Names + " " + c.Surnames
}

// Patch holds the mutable contact fields of a Customer. Empty fields are
// left untouched when applied; identity fields can never be patched.
type Patch struct {
	Address      string
	Landline     string
	Mobile       string
	Neighborhood string
}

// IsZero reports whether the patch carries no changes at all.
func (p Patch) IsZero() bool {
	return p == Patch{}
}

// Apply overwrites the customer's contact fields with the patch's non-empty values.
func (c *Customer) Apply(p Patch) {
	if p.Address != "" {
		c.Address = p.Address
	}
	if p.Landline != "" {
		c.Landline = p.Landline
	}
	if p.Mobile != "" {
		c.Mobile = p.Mobile
	}
	if p.Neighborhood != "" {
		c.Neighborhood = p.Neighborhood
	}
}
