package health

import "fmt"

// SchemaError reports a record that fails shape validation. Field is
// the path to the offending value, e.g. "medications[2].reminders[0].time".
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema violation at %s: %s", e.Field, e.Reason)
}

func violation(field, reason string) error {
	return &SchemaError{Field: field, Reason: reason}
}

// Validation checks shape only: required fields present, numbers in
// range, nested records well-formed. Cross-field rules (remaining vs
// total) and cross-collection references are intentionally out of scope.

func ValidateMedications(meds []Medication) error {
	for i, m := range meds {
		if err := m.validate(fmt.Sprintf("medications[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func ValidateAdherence(recs []AdherenceRecord) error {
	for i, r := range recs {
		if err := r.validate(fmt.Sprintf("adherence[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func ValidateLogs(logs []HealthLog) error {
	for i, l := range logs {
		if err := l.validate(fmt.Sprintf("logs[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}

func ValidateProfile(p Profile) error {
	return p.validate("profile")
}

func (m Medication) validate(path string) error {
	switch {
	case m.ID == "":
		return violation(path+".id", "required")
	case m.ProfileID == "":
		return violation(path+".profileId", "required")
	case m.Name == "":
		return violation(path+".name", "required")
	case m.Dosage == "":
		return violation(path+".dosage", "required")
	case m.Frequency == "":
		return violation(path+".frequency", "required")
	case m.TimeOfDay == nil:
		return violation(path+".timeOfDay", "required")
	case m.Reminders == nil:
		return violation(path+".reminders", "required")
	case m.Remaining < 0:
		return violation(path+".remaining", "must not be negative")
	case m.Total < 0:
		return violation(path+".total", "must not be negative")
	}
	for i, r := range m.Reminders {
		if err := r.validate(fmt.Sprintf("%s.reminders[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func (r Reminder) validate(path string) error {
	if r.ID == "" {
		return violation(path+".id", "required")
	}
	if r.Time == "" {
		return violation(path+".time", "required")
	}
	if r.Enabled == nil {
		return violation(path+".enabled", "required")
	}
	for i, d := range r.Days {
		if d < 0 || d > 6 {
			return violation(fmt.Sprintf("%s.days[%d]", path, i), "must be a weekday 0-6")
		}
	}
	return nil
}

func (r AdherenceRecord) validate(path string) error {
	switch {
	case r.Date == "":
		return violation(path+".date", "required")
	case r.ProfileID == "":
		return violation(path+".profileId", "required")
	case r.MedicationID == "":
		return violation(path+".medicationId", "required")
	case r.Taken == nil:
		return violation(path+".taken", "required")
	}
	return nil
}

func (l HealthLog) validate(path string) error {
	switch {
	case l.ID == "":
		return violation(path+".id", "required")
	case l.ProfileID == "":
		return violation(path+".profileId", "required")
	case l.Date == "":
		return violation(path+".date", "required")
	case l.Type == "":
		return violation(path+".type", "required")
	case l.Value == "":
		return violation(path+".value", "required")
	case l.Unit == "":
		return violation(path+".unit", "required")
	}
	return nil
}

func (p Profile) validate(path string) error {
	switch {
	case p.ID == "":
		return violation(path+".id", "required")
	case p.Name == "":
		return violation(path+".name", "required")
	case p.Email == "":
		return violation(path+".email", "required")
	case p.Phone == "":
		return violation(path+".phone", "required")
	case p.Age == "":
		return violation(path+".age", "required")
	case p.Weight == "":
		return violation(path+".weight", "required")
	case p.BloodType == "":
		return violation(path+".bloodType", "required")
	case p.Notifications.Enabled == nil:
		return violation(path+".notifications.enabled", "required")
	}
	return nil
}
