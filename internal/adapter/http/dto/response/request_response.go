package response

import (
	"strconv"
	"time"

	"petromap/internal/domain/entities"
)

// RequestResponse is the wire shape of a registration request. Coordinates
// are emitted as strings because stored values may be NaN, which JSON
// cannot carry as a number.
type RequestResponse struct {
	ID                    string     `json:"id"`
	Status                string     `json:"status"`
	RequestedByUserID     string     `json:"requestedByUserId,omitempty"`
	CustomerName          string     `json:"customerName"`
	Location              string     `json:"location"`
	Zone                  string     `json:"zone"`
	SalesArea             string     `json:"salesArea"`
	CoClDo                string     `json:"coClDo"`
	District              string     `json:"district"`
	SapCode               string     `json:"sapCode"`
	AddressLine1          string     `json:"addressLine1"`
	AddressLine2          string     `json:"addressLine2"`
	Pincode               string     `json:"pincode"`
	DealerName            string     `json:"dealerName"`
	ContactDetails        string     `json:"contactDetails"`
	Latitude              string     `json:"latitude"`
	Longitude             string     `json:"longitude"`
	Company               string     `json:"company"`
	RegionalOffice        string     `json:"regionalOffice"`
	BannerImageURL        string     `json:"bannerImageUrl,omitempty"`
	BoardImageURL         string     `json:"boardImageUrl,omitempty"`
	BillSlipImageURL      string     `json:"billSlipImageUrl,omitempty"`
	GovernmentDocImageURL string     `json:"governmentDocImageUrl,omitempty"`
	CreatedAt             *time.Time `json:"createdAt,omitempty"`
	CreatedBy             string     `json:"createdBy,omitempty"`
	UpdatedAt             *time.Time `json:"updatedAt,omitempty"`
	UpdatedBy             string     `json:"updatedBy,omitempty"`
	ApprovedAt            *time.Time `json:"approvedAt,omitempty"`
	ApprovedBy            string     `json:"approvedBy,omitempty"`
	RejectedAt            *time.Time `json:"rejectedAt,omitempty"`
	RejectedBy            string     `json:"rejectedBy,omitempty"`
	RejectionReason       string     `json:"rejectionReason,omitempty"`
}

func FromRequest(r entities.PumpRequest) RequestResponse {
	return RequestResponse{
		ID:                    r.ID,
		Status:                string(r.Status),
		RequestedByUserID:     r.RequestedByUserID,
		CustomerName:          r.CustomerName,
		Location:              r.Location,
		Zone:                  r.Zone,
		SalesArea:             r.SalesArea,
		CoClDo:                r.CoClDo,
		District:              r.District,
		SapCode:               r.SapCode,
		AddressLine1:          r.AddressLine1,
		AddressLine2:          r.AddressLine2,
		Pincode:               r.Pincode,
		DealerName:            r.DealerName,
		ContactDetails:        r.ContactDetails,
		Latitude:              formatCoordinate(r.Latitude),
		Longitude:             formatCoordinate(r.Longitude),
		Company:               r.Company,
		RegionalOffice:        r.RegionalOffice,
		BannerImageURL:        r.BannerImageURL,
		BoardImageURL:         r.BoardImageURL,
		BillSlipImageURL:      r.BillSlipImageURL,
		GovernmentDocImageURL: r.GovernmentDocImageURL,
		CreatedAt:             optionalTime(r.CreatedAt),
		CreatedBy:             r.CreatedBy,
		UpdatedAt:             optionalTime(r.UpdatedAt),
		UpdatedBy:             r.UpdatedBy,
		ApprovedAt:            optionalTime(r.ApprovedAt),
		ApprovedBy:            r.ApprovedBy,
		RejectedAt:            optionalTime(r.RejectedAt),
		RejectedBy:            r.RejectedBy,
		RejectionReason:       r.RejectionReason,
	}
}

func FromRequests(requests []entities.PumpRequest) []RequestResponse {
	out := make([]RequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, FromRequest(r))
	}
	return out
}

// ListRequestsResponse wraps the filtered subset.
type ListRequestsResponse struct {
	Requests []RequestResponse `json:"requests"`
	Count    int               `json:"count"`
}

// CountsResponse carries the tab badge counts, computed over the
// unfiltered collection.
type CountsResponse struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

func FromCounts(counts map[entities.RequestStatus]int) CountsResponse {
	return CountsResponse{
		Pending:  counts[entities.RequestStatusPending],
		Approved: counts[entities.RequestStatusApproved],
		Rejected: counts[entities.RequestStatusRejected],
	}
}

// RequestDetailResponse is the review-dialog view: the request plus the
// best-effort submitter profile (null when unresolved).
type RequestDetailResponse struct {
	Request     RequestResponse      `json:"request"`
	SubmittedBy *UserProfileResponse `json:"submittedBy,omitempty"`
}

type UserProfileResponse struct {
	UserID string `json:"userId"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
}

func FromUserProfile(p *entities.UserProfile) *UserProfileResponse {
	if p == nil {
		return nil
	}
	return &UserProfileResponse{
		UserID: p.UserID,
		Name:   p.Name,
		Email:  p.Email,
		Phone:  p.Phone,
	}
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
