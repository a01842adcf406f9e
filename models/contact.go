package models

// ContactSubjects is the fixed set of subjects the contact form offers.
var ContactSubjects = []string{
	"General Inquiry",
	"Booking Question",
	"Feedback",
	"Support",
}

// ContactMessage is one contact form submission. It lives only for the
// duration of a single POST and is cleared after a confirmed success.
type ContactMessage struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty" form:"phone"`
	Subject string `json:"subject" form:"subject" validate:"required,oneof='General Inquiry' 'Booking Question' 'Feedback' 'Support'"`
	Message string `json:"message" form:"message" validate:"required"`
}
