package entities

import "time"

// RequestStatus represents the review state of a pump registration request.
//
// Domain notes:
//   - Requests enter the queue as pending (field-team submission or the
//     admin create dialog) and leave it via approve or reject.
//   - Approval additionally publishes a PetrolPump record; the request
//     itself is kept for audit.

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// Companies the registration form accepts. The constraint is form-level
// only; the store does not enforce it.
var Companies = []string{"HPCL", "BPCL", "IOCL"}

// DefaultCompany is used when a request is published without a company set.
const DefaultCompany = "HPCL"

// Zones offered by the registration form.
var Zones = []string{"North", "South", "East", "West", "North East", "Central", "South East"}

// RequestDetails is the descriptive field set of a registration request.
// It is exactly the allow-list an edit may overwrite: status and the
// approval/rejection stamps are never part of it.
type RequestDetails struct {
	CustomerName          string
	Location              string
	Zone                  string
	SalesArea             string
	CoClDo                string
	District              string
	SapCode               string
	AddressLine1          string
	AddressLine2          string
	Pincode               string
	DealerName            string
	ContactDetails        string
	Latitude              float64
	Longitude             float64
	Company               string
	RegionalOffice        string
	BannerImageURL        string
	BoardImageURL         string
	BillSlipImageURL      string
	GovernmentDocImageURL string
}

// PumpRequest is a pump registration request persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// CreatedAt may arrive from older writers in several encodings; the
// repository normalizes them. A zero CreatedAt means the stored value was
// unparseable and the record is excluded from every date-bounded filter.
type PumpRequest struct {
	ID                string
	Status            RequestStatus
	RequestedByUserID string

	RequestDetails

	CreatedAt time.Time
	CreatedBy string
	UpdatedAt time.Time
	UpdatedBy string

	ApprovedAt time.Time
	ApprovedBy string

	RejectedAt      time.Time
	RejectedBy      string
	RejectionReason string
}
