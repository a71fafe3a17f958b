package models

// Form identifiers carried in the form-name field so the ingestion
// endpoint can distinguish the logical forms.
const (
	FormNameContact        = "contact"
	FormNameServiceRequest = "service-request"
	FormNamePartsRequest   = "parts-request"
)

// HoneypotField is a hidden anti-automation field, always submitted
// empty. The receiving endpoint rejects submissions where it is filled;
// this server only carries it.
const HoneypotField = "bot-field"

// ContactForm is the general "send us a message" form.
type ContactForm struct {
	Name    string `form:"name" json:"name" binding:"required"`
	Email   string `form:"email" json:"email" binding:"required,email"`
	Phone   string `form:"phone" json:"phone" binding:"required"`
	Subject string `form:"subject" json:"subject" binding:"required"`
	Message string `form:"message" json:"message" binding:"required"`
	Company string `form:"company" json:"company"`
}

// Fields returns the payload relayed to the ingestion endpoint.
func (f *ContactForm) Fields() map[string]string {
	return map[string]string{
		"name":    f.Name,
		"email":   f.Email,
		"phone":   f.Phone,
		"subject": f.Subject,
		"message": f.Message,
		"company": f.Company,
	}
}

// ServiceRequestForm is the mobile service request form.
type ServiceRequestForm struct {
	Name     string `form:"name" json:"name" binding:"required"`
	Phone    string `form:"phone" json:"phone" binding:"required"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	Company  string `form:"company" json:"company"`
	Location string `form:"location" json:"location" binding:"required"`
	Service  string `form:"service" json:"service" binding:"required"`
	Notes    string `form:"notes" json:"notes"`
}

func (f *ServiceRequestForm) Fields() map[string]string {
	return map[string]string{
		"name":     f.Name,
		"phone":    f.Phone,
		"email":    f.Email,
		"company":  f.Company,
		"location": f.Location,
		"service":  f.Service,
		"notes":    f.Notes,
	}
}

// PartsRequestForm is the custom part sourcing form. Urgency and
// delivery are optional but must be a listed value when present. The
// optional photo attachment is bound separately from the multipart body.
type PartsRequestForm struct {
	ContactName string `form:"contact_name" json:"contact_name" binding:"required"`
	CompanyName string `form:"company_name" json:"company_name"`
	Phone       string `form:"phone" json:"phone" binding:"required"`
	Email       string `form:"email" json:"email" binding:"required,email"`
	VIN         string `form:"vin" json:"vin"`
	Year        string `form:"year" json:"year" binding:"required"`
	Make        string `form:"make" json:"make" binding:"required"`
	Model       string `form:"model" json:"model" binding:"required"`
	PartNeeded  string `form:"part_needed" json:"part_needed" binding:"required"`
	Urgency     string `form:"urgency" json:"urgency" binding:"omitempty,oneof=standard urgent emergency"`
	Delivery    string `form:"delivery" json:"delivery" binding:"omitempty,oneof=pickup delivery ship"`
	Notes       string `form:"notes" json:"notes"`
}

func (f *PartsRequestForm) Fields() map[string]string {
	return map[string]string{
		"contact_name": f.ContactName,
		"company_name": f.CompanyName,
		"phone":        f.Phone,
		"email":        f.Email,
		"vin":          f.VIN,
		"year":         f.Year,
		"make":         f.Make,
		"model":        f.Model,
		"part_needed":  f.PartNeeded,
		"urgency":      f.Urgency,
		"delivery":     f.Delivery,
		"notes":        f.Notes,
	}
}
