//go:build unit || e2e

package builder

type ContactBuilder struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

func NewContactBuilder() *ContactBuilder {
	return &ContactBuilder{
		Name:    "Ravi Kumar",
		Email:   "ravi@example.com",
		Phone:   "9123456780",
		Subject: "Honeymoon packages",
		Message: "Looking for a 7 day Kerala itinerary in November.",
	}
}

func (c *ContactBuilder) BuildRequestMap() map[string]any {
	return map[string]any{
		"name":    c.Name,
		"email":   c.Email,
		"phone":   c.Phone,
		"subject": c.Subject,
		"message": c.Message,
	}
}
