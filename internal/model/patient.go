package model

// Channels a notification job can be delivered over.
const (
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

// Patient is a single patient record. The id is assigned by the store on
// insert and never changes afterwards; email is unique across all records.
type Patient struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// PatientPatch carries a partial update. A nil field means "leave as is".
type PatientPatch struct {
	Name  *string
	Email *string
	Phone *string
}
