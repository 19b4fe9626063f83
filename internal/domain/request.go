package domain

// SuggestionCategory is the fixed category set for the suggestion form.
type SuggestionCategory string

const (
	CategoryGeneral    SuggestionCategory = "general"
	CategoryServices   SuggestionCategory = "services"
	CategoryFacilities SuggestionCategory = "facilities"
	CategoryActivities SuggestionCategory = "activities"
)

func ValidSuggestionCategory(c string) bool {
	switch SuggestionCategory(c) {
	case CategoryGeneral, CategoryServices, CategoryFacilities, CategoryActivities:
		return true
	}
	return false
}

// PreReservation is a fire-and-forget booking request; the site never tracks
// the resulting reservation state. ConfirmEmail exists only for client-side
// validation and is not sent over the wire.
type PreReservation struct {
	ServiceID    int64  `json:"service_id" validate:"required,gt=0"`
	FullName     string `json:"full_name" validate:"required,min=2,max=100"`
	Email        string `json:"email" validate:"required,email,max=150"`
	ConfirmEmail string `json:"confirm_email" validate:"required,email,max=150,eqfield=Email"`
	Phone        string `json:"phone" validate:"required,min=6,max=30"`
	Guests       int    `json:"guests" validate:"required,min=1,max=20"`
	CheckIn      string `json:"check_in" validate:"required"`
	CheckOut     string `json:"check_out" validate:"required"`
	Notes        string `json:"notes" validate:"max=1000"`
	Lang         string `json:"lang"`
}

// Suggestion is the outbound contact-form request.
type Suggestion struct {
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Email        string `json:"email" validate:"required,email,max=150"`
	ConfirmEmail string `json:"confirmEmail" validate:"required,email,max=150,eqfield=Email"`
	Category     string `json:"category" validate:"required,max=50"`
	Message      string `json:"message" validate:"required,min=10,max=2000"`
	Lang         string `json:"lang"`
}

// Ack is whatever acknowledgement payload the backend returns for a
// submission. The site forwards it as-is.
type Ack map[string]any
