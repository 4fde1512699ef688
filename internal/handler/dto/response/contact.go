package response

type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Note    string `json:"note,omitempty"`
}
