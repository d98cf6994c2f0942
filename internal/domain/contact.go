package domain

// FieldKey identifies one input of the contact form.
type FieldKey string

const (
	FieldName    FieldKey = "name"
	FieldCompany FieldKey = "company"
	FieldEmail   FieldKey = "email"
	FieldVolume  FieldKey = "volume"
	FieldMessage FieldKey = "message"
)

// ContactField describes how a contact form input is labelled and rendered.
type ContactField struct {
	Key       FieldKey
	Label     string
	InputType string // "text", "email" or "textarea"
	Rows      int    // textarea only
}

// IsTextArea returns true for multi-line inputs.
func (f ContactField) IsTextArea() bool {
	return f.InputType == "textarea"
}

// ContactFields lists the form inputs in display order.
var ContactFields = []ContactField{
	{Key: FieldName, Label: "Name", InputType: "text"},
	{Key: FieldCompany, Label: "Company", InputType: "text"},
	{Key: FieldEmail, Label: "Email", InputType: "email"},
	{Key: FieldVolume, Label: "Monthly Volume (units)", InputType: "text"},
	{Key: FieldMessage, Label: "Message", InputType: "textarea", Rows: 5},
}

// ContactForm is an immutable snapshot of the contact form.
// All fields are optional free text; Volume is not coerced to a number.
// The zero value is the empty form a visitor starts with.
type ContactForm struct {
	Name    string
	Email   string
	Company string
	Message string
	Volume  string
}

// With returns a new snapshot with one field replaced.
// Unknown keys return the snapshot unchanged.
func (f ContactForm) With(key FieldKey, value string) ContactForm {
	switch key {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldCompany:
		f.Company = value
	case FieldMessage:
		f.Message = value
	case FieldVolume:
		f.Volume = value
	}
	return f
}

// Value returns the text of the given field.
func (f ContactForm) Value(key FieldKey) string {
	switch key {
	case FieldName:
		return f.Name
	case FieldEmail:
		return f.Email
	case FieldCompany:
		return f.Company
	case FieldMessage:
		return f.Message
	case FieldVolume:
		return f.Volume
	default:
		return ""
	}
}

// IsEmpty reports whether every field is blank.
func (f ContactForm) IsEmpty() bool {
	return f == ContactForm{}
}

// ContactIntent is everything an email client needs to compose an inquiry.
type ContactIntent struct {
	Subject   string
	Body      string
	MailtoURI string
}
