package dto

import "github.com/bydcare/landing/internal/domain"

// ContactFormRequest represents the JSON body for the contact API.
// Every field is optional.
type ContactFormRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Message string `json:"message"`
	Volume  string `json:"volume"`
}

// ToDomain converts the request into a contact form snapshot.
func (r ContactFormRequest) ToDomain() domain.ContactForm {
	return domain.ContactForm{
		Name:    r.Name,
		Email:   r.Email,
		Company: r.Company,
		Message: r.Message,
		Volume:  r.Volume,
	}
}
