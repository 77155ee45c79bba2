package request

import (
	"petromap/internal/domain/entities"
	"petromap/internal/domain/filter"
	"petromap/internal/usecase"
)

// CreateRequestPayload is the create-dialog body. Field names match the
// documents the intake app writes. Nothing beyond the field set itself is
// validated server-side; in particular company is a form-level constraint
// only.
type CreateRequestPayload struct {
	CustomerName          string  `json:"customerName"`
	Location              string  `json:"location"`
	Zone                  string  `json:"zone"`
	SalesArea             string  `json:"salesArea"`
	CoClDo                string  `json:"coClDo"`
	District              string  `json:"district"`
	SapCode               string  `json:"sapCode"`
	AddressLine1          string  `json:"addressLine1"`
	AddressLine2          string  `json:"addressLine2"`
	Pincode               string  `json:"pincode"`
	DealerName            string  `json:"dealerName"`
	ContactDetails        string  `json:"contactDetails"`
	Latitude              float64 `json:"latitude"`
	Longitude             float64 `json:"longitude"`
	Company               string  `json:"company"`
	RegionalOffice        string  `json:"regionalOffice"`
	BannerImageURL        string  `json:"bannerImageUrl"`
	BoardImageURL         string  `json:"boardImageUrl"`
	BillSlipImageURL      string  `json:"billSlipImageUrl"`
	GovernmentDocImageURL string  `json:"governmentDocImageUrl"`
}

func (p CreateRequestPayload) ToDetails() entities.RequestDetails {
	return entities.RequestDetails{
		CustomerName:          p.CustomerName,
		Location:              p.Location,
		Zone:                  p.Zone,
		SalesArea:             p.SalesArea,
		CoClDo:                p.CoClDo,
		District:              p.District,
		SapCode:               p.SapCode,
		AddressLine1:          p.AddressLine1,
		AddressLine2:          p.AddressLine2,
		Pincode:               p.Pincode,
		DealerName:            p.DealerName,
		ContactDetails:        p.ContactDetails,
		Latitude:              p.Latitude,
		Longitude:             p.Longitude,
		Company:               p.Company,
		RegionalOffice:        p.RegionalOffice,
		BannerImageURL:        p.BannerImageURL,
		BoardImageURL:         p.BoardImageURL,
		BillSlipImageURL:      p.BillSlipImageURL,
		GovernmentDocImageURL: p.GovernmentDocImageURL,
	}
}

// UpdateRequestPayload is the edit-dialog body. Latitude and longitude
// arrive as the raw form text and are coerced downstream; non-numeric
// input ends up stored as NaN.
type UpdateRequestPayload struct {
	CustomerName   string `json:"customerName"`
	Location       string `json:"location"`
	Zone           string `json:"zone"`
	SalesArea      string `json:"salesArea"`
	CoClDo         string `json:"coClDo"`
	District       string `json:"district"`
	SapCode        string `json:"sapCode"`
	AddressLine1   string `json:"addressLine1"`
	AddressLine2   string `json:"addressLine2"`
	Pincode        string `json:"pincode"`
	DealerName     string `json:"dealerName"`
	ContactDetails string `json:"contactDetails"`
	Latitude       string `json:"latitude"`
	Longitude      string `json:"longitude"`
	Company        string `json:"company"`
	RegionalOffice string `json:"regionalOffice"`
}

func (p UpdateRequestPayload) ToPatch() usecase.EditPatch {
	return usecase.EditPatch{
		CustomerName:   p.CustomerName,
		Location:       p.Location,
		Zone:           p.Zone,
		SalesArea:      p.SalesArea,
		CoClDo:         p.CoClDo,
		District:       p.District,
		SapCode:        p.SapCode,
		AddressLine1:   p.AddressLine1,
		AddressLine2:   p.AddressLine2,
		Pincode:        p.Pincode,
		DealerName:     p.DealerName,
		ContactDetails: p.ContactDetails,
		Latitude:       p.Latitude,
		Longitude:      p.Longitude,
		Company:        p.Company,
		RegionalOffice: p.RegionalOffice,
	}
}

// RejectRequestPayload carries the mandatory rejection reason.
type RejectRequestPayload struct {
	Reason string `json:"reason"`
}

// ListRequestsQuery is the filter state as query parameters. Missing
// status defaults to the pending tab; there is no all-statuses view.
type ListRequestsQuery struct {
	Status    string `form:"status"`
	Search    string `form:"search"`
	Company   string `form:"company"`
	District  string `form:"district"`
	DateRange string `form:"date_range"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

func (q ListRequestsQuery) ToFilterState() (filter.State, bool) {
	status := entities.RequestStatus(q.Status)
	switch status {
	case "":
		status = entities.RequestStatusPending
	case entities.RequestStatusPending, entities.RequestStatusApproved, entities.RequestStatusRejected:
	default:
		return filter.State{}, false
	}

	s := filter.NewState(status)
	s.Search = q.Search
	if q.Company != "" {
		s.Company = q.Company
	}
	if q.District != "" {
		s.District = q.District
	}
	if q.DateRange != "" {
		s.DateRange = filter.DateRange(q.DateRange)
	}
	s.StartDate = q.StartDate
	s.EndDate = q.EndDate
	return s, true
}
