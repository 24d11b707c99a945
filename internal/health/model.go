package health

// Reminder is a scheduled prompt attached to a medication. Enabled is
// a pointer so a missing field is distinguishable from false and can be
// rejected as a schema violation.
type Reminder struct {
	ID      string  `json:"id"`
	Time    string  `json:"time"`
	Enabled *bool   `json:"enabled"`
	Days    []int   `json:"days,omitempty"`
	Message *string `json:"message,omitempty"`
}

type Medication struct {
	ID           string     `json:"id"`
	ProfileID    string     `json:"profileId"`
	Name         string     `json:"name"`
	Dosage       string     `json:"dosage"`
	Frequency    string     `json:"frequency"`
	TimeOfDay    []string   `json:"timeOfDay"`
	Remaining    int        `json:"remaining"`
	Total        int        `json:"total"`
	Instructions *string    `json:"instructions,omitempty"`
	Reminders    []Reminder `json:"reminders"`
}

// AdherenceRecord marks whether a dose was taken on a given date.
// MedicationID is not checked against the medication list; the store
// keeps no referential integrity between collections.
type AdherenceRecord struct {
	Date         string  `json:"date"`
	ProfileID    string  `json:"profileId"`
	MedicationID string  `json:"medicationId"`
	Taken        *bool   `json:"taken"`
	TimeTaken    *string `json:"timeTaken,omitempty"`
}

type HealthLog struct {
	ID        string `json:"id"`
	ProfileID string `json:"profileId"`
	Date      string `json:"date"`
	Type      string `json:"type"`
	Value     string `json:"value"`
	Unit      string `json:"unit"`
}

type NotificationsConfig struct {
	Enabled *bool `json:"enabled"`
}

// Profile keeps age and weight as strings; they are display fields,
// never computed with.
type Profile struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Email         string              `json:"email"`
	Phone         string              `json:"phone"`
	Age           string              `json:"age"`
	Weight        string              `json:"weight"`
	BloodType     string              `json:"bloodType"`
	Notifications NotificationsConfig `json:"notifications"`
}

// UserHealthData is the full per-account aggregate. Exactly one exists
// per account key; accounts never seen before get an empty one.
type UserHealthData struct {
	Medications []Medication      `json:"medications"`
	Adherence   []AdherenceRecord `json:"adherence"`
	Logs        []HealthLog       `json:"logs"`
	Profile     *Profile          `json:"profile"`
}

func NewUserHealthData() *UserHealthData {
	return &UserHealthData{
		Medications: []Medication{},
		Adherence:   []AdherenceRecord{},
		Logs:        []HealthLog{},
	}
}

// Clone deep-copies the aggregate so callers can never mutate
// store-owned memory through a read result.
func (d *UserHealthData) Clone() *UserHealthData {
	if d == nil {
		return NewUserHealthData()
	}
	out := &UserHealthData{
		Medications: CloneMedications(d.Medications),
		Adherence:   CloneAdherence(d.Adherence),
		Logs:        CloneLogs(d.Logs),
	}
	if d.Profile != nil {
		out.Profile = d.Profile.Clone()
	}
	return out
}

// Clone returns an independent copy of the profile.
func (p Profile) Clone() *Profile {
	p.Notifications.Enabled = cloneBoolPtr(p.Notifications.Enabled)
	return &p
}

func CloneMedications(meds []Medication) []Medication {
	out := make([]Medication, 0, len(meds))
	for _, m := range meds {
		m.TimeOfDay = append([]string(nil), m.TimeOfDay...)
		m.Instructions = cloneStringPtr(m.Instructions)
		m.Reminders = cloneReminders(m.Reminders)
		out = append(out, m)
	}
	return out
}

func CloneAdherence(recs []AdherenceRecord) []AdherenceRecord {
	out := make([]AdherenceRecord, 0, len(recs))
	for _, r := range recs {
		r.Taken = cloneBoolPtr(r.Taken)
		r.TimeTaken = cloneStringPtr(r.TimeTaken)
		out = append(out, r)
	}
	return out
}

func CloneLogs(logs []HealthLog) []HealthLog {
	return append([]HealthLog{}, logs...)
}

func cloneReminders(rems []Reminder) []Reminder {
	out := make([]Reminder, 0, len(rems))
	for _, r := range rems {
		r.Enabled = cloneBoolPtr(r.Enabled)
		r.Days = append([]int(nil), r.Days...)
		r.Message = cloneStringPtr(r.Message)
		out = append(out, r)
	}
	return out
}

func cloneStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneBoolPtr(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}
