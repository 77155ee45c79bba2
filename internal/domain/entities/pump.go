package entities

import "time"

// PumpStatus is the publication state of a petrol pump entry. Entries
// created through approval always start active.
const PumpStatusActive = "active"

// PetrolPump is a published location in the public registry. It is created
// only as the side effect of approving a PumpRequest and is owned
// independently afterwards: nothing couples it back to the request beyond
// the RequestID reference.
type PetrolPump struct {
	ID string

	RequestDetails

	RequestID  string
	Status     string
	IsVerified bool

	ApprovedAt time.Time
	ApprovedBy string
}

// NewPetrolPumpFromRequest copies the descriptive fields of an approved
// request into a fresh registry entry. Missing optional fields stay at
// their zero values; an empty company falls back to DefaultCompany.
func NewPetrolPumpFromRequest(id string, req PumpRequest, actor string, at time.Time) PetrolPump {
	details := req.RequestDetails
	if details.Company == "" {
		details.Company = DefaultCompany
	}
	return PetrolPump{
		ID:             id,
		RequestDetails: details,
		RequestID:      req.ID,
		Status:         PumpStatusActive,
		IsVerified:     true,
		ApprovedAt:     at,
		ApprovedBy:     actor,
	}
}
