package model

// Appointment is a scheduled visit. Date is a zero-padded YYYY-MM-DD
// string so that lexicographic ordering is chronological.
type Appointment struct {
	ID      string `json:"id"`
	Kind    Kind   `json:"kind"`
	Client  string `json:"client"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Created string `json:"created"`
}

// NewAppointment creates an appointment record with a fresh identifier.
func NewAppointment(client, date, timeOfDay, created string) *Appointment {
	return &Appointment{
		ID:      NewID(),
		Kind:    KindAppointment,
		Client:  client,
		Date:    date,
		Time:    timeOfDay,
		Created: created,
	}
}

func (a *Appointment) RecordID() string { return a.ID }

func (a *Appointment) RecordKind() Kind { return KindAppointment }
