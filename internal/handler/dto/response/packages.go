package response

import (
	"oasis-backend/internal/usecase/queries"
)

type PackageResponse struct {
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Destination string   `json:"destination"`
	Duration    string   `json:"duration"`
	Price       int64    `json:"price"` // major units
	Currency    string   `json:"currency"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
}

type PackageListEnvelope struct {
	Success  bool              `json:"success"`
	Count    int               `json:"count"`
	Packages []PackageResponse `json:"packages"`
}

type PackageEnvelope struct {
	Success bool            `json:"success"`
	Package PackageResponse `json:"package"`
}

func FromPackage(p queries.TravelPackage) PackageResponse {
	return PackageResponse{
		Slug:        p.Slug,
		Name:        p.Name,
		Destination: p.Destination,
		Duration:    p.Duration,
		Price:       p.PriceMajor,
		Currency:    p.Currency,
		Description: p.Description,
		Highlights:  p.Highlights,
		ImageURL:    p.ImageURL,
	}
}

func FromPackages(list []queries.TravelPackage) PackageListEnvelope {
	out := make([]PackageResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromPackage(p))
	}
	return PackageListEnvelope{Success: true, Count: len(out), Packages: out}
}
