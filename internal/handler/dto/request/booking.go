package request

import (
	"oasis-backend/internal/usecase/commands"
)

type CreateBookingRequest struct {
	Customer CustomerPayload `json:"customerDetails" binding:"required"`
	Package  PackagePayload  `json:"packageDetails" binding:"required"`
}

func (r CreateBookingRequest) ToInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		Customer: commands.CustomerInput{
			Name:  r.Customer.Name,
			Email: r.Customer.Email,
			Phone: r.Customer.Phone,
		},
		Package: commands.PackageInput{
			Name:        r.Package.Name,
			Duration:    r.Package.Duration,
			AmountMajor: r.Package.Amount,
		},
	}
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
