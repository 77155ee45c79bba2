package response

import (
	"time"

	"petromap/internal/domain/entities"
)

// PumpResponse is the wire shape of a published registry entry.
type PumpResponse struct {
	ID                    string     `json:"id"`
	Zone                  string     `json:"zone"`
	SalesArea             string     `json:"salesArea"`
	CoClDo                string     `json:"coClDo"`
	District              string     `json:"district"`
	SapCode               string     `json:"sapCode"`
	CustomerName          string     `json:"customerName"`
	Location              string     `json:"location"`
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
	ApprovedAt            *time.Time `json:"approvedAt,omitempty"`
	ApprovedBy            string     `json:"approvedBy,omitempty"`
	RequestID             string     `json:"requestId"`
	Status                string     `json:"status"`
	IsVerified            bool       `json:"isVerified"`
}

func FromPump(p entities.PetrolPump) PumpResponse {
	return PumpResponse{
		ID:                    p.ID,
		Zone:                  p.Zone,
		SalesArea:             p.SalesArea,
		CoClDo:                p.CoClDo,
		District:              p.District,
		SapCode:               p.SapCode,
		CustomerName:          p.CustomerName,
		Location:              p.Location,
		AddressLine1:          p.AddressLine1,
		AddressLine2:          p.AddressLine2,
		Pincode:               p.Pincode,
		DealerName:            p.DealerName,
		ContactDetails:        p.ContactDetails,
		Latitude:              formatCoordinate(p.Latitude),
		Longitude:             formatCoordinate(p.Longitude),
		Company:               p.Company,
		RegionalOffice:        p.RegionalOffice,
		BannerImageURL:        p.BannerImageURL,
		BoardImageURL:         p.BoardImageURL,
		BillSlipImageURL:      p.BillSlipImageURL,
		GovernmentDocImageURL: p.GovernmentDocImageURL,
		ApprovedAt:            optionalTime(p.ApprovedAt),
		ApprovedBy:            p.ApprovedBy,
		RequestID:             p.RequestID,
		Status:                p.Status,
		IsVerified:            p.IsVerified,
	}
}

// ApproveResponse carries both effects of an approval.
type ApproveResponse struct {
	Request RequestResponse `json:"request"`
	Pump    PumpResponse    `json:"pump"`
}

// DistrictsResponse is the district autocomplete catalogue.
type DistrictsResponse struct {
	Districts []string `json:"districts"`
}
