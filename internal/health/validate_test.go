package health

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func validMedication() Medication {
	return Medication{
		ID:        "med-1",
		ProfileID: "prof-1",
		Name:      "Lisinopril",
		Dosage:    "10mg",
		Frequency: "daily",
		TimeOfDay: []string{"08:00"},
		Remaining: 20,
		Total:     30,
		Reminders: []Reminder{{ID: "rem-1", Time: "08:00", Enabled: boolPtr(true)}},
	}
}

func TestValidateMedications_OK(t *testing.T) {
	require.NoError(t, ValidateMedications([]Medication{validMedication()}))
	require.NoError(t, ValidateMedications(nil))
}

func TestValidateMedications_FieldPaths(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Medication)
		field  string
	}{
		{"missing name", func(m *Medication) { m.Name = "" }, "medications[0].name"},
		{"missing dosage", func(m *Medication) { m.Dosage = "" }, "medications[0].dosage"},
		{"missing timeOfDay", func(m *Medication) { m.TimeOfDay = nil }, "medications[0].timeOfDay"},
		{"missing reminders", func(m *Medication) { m.Reminders = nil }, "medications[0].reminders"},
		{"negative remaining", func(m *Medication) { m.Remaining = -1 }, "medications[0].remaining"},
		{"negative total", func(m *Medication) { m.Total = -5 }, "medications[0].total"},
		{"reminder missing time", func(m *Medication) { m.Reminders[0].Time = "" }, "medications[0].reminders[0].time"},
		{"reminder missing enabled", func(m *Medication) { m.Reminders[0].Enabled = nil }, "medications[0].reminders[0].enabled"},
		{"reminder bad weekday", func(m *Medication) { m.Reminders[0].Days = []int{7} }, "medications[0].reminders[0].days[0]"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := validMedication()
			tc.mutate(&m)
			err := ValidateMedications([]Medication{m})
			require.Error(t, err)

			var se *SchemaError
			require.True(t, errors.As(err, &se))
			assert.Equal(t, tc.field, se.Field)
		})
	}
}

func TestValidateMedications_OffenderIndexInPath(t *testing.T) {
	meds := []Medication{validMedication(), validMedication()}
	meds[1].ProfileID = ""

	var se *SchemaError
	err := ValidateMedications(meds)
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "medications[1].profileId", se.Field)
}

func TestValidateMedications_NoCrossFieldRules(t *testing.T) {
	// remaining > total is deliberately allowed.
	m := validMedication()
	m.Remaining = 99
	m.Total = 10
	require.NoError(t, ValidateMedications([]Medication{m}))
}

func TestValidateMedications_OptionalFieldsAbsent(t *testing.T) {
	m := validMedication()
	m.Instructions = nil
	m.Reminders = []Reminder{{ID: "r", Time: "09:00", Enabled: boolPtr(false)}} // no days, no message
	require.NoError(t, ValidateMedications([]Medication{m}))

	// empty timeOfDay and reminders are present-but-empty, which is fine
	m.TimeOfDay = []string{}
	m.Reminders = []Reminder{}
	require.NoError(t, ValidateMedications([]Medication{m}))
}

func TestValidateMedications_DecodedWithoutRequiredKeys(t *testing.T) {
	// a body that omits reminders entirely must not slip through as an
	// empty list
	raw := `[{"id":"m1","profileId":"p1","name":"Aspirin","dosage":"100mg",
		"frequency":"daily","timeOfDay":["08:00"],"remaining":12,"total":30}]`

	var meds []Medication
	require.NoError(t, json.Unmarshal([]byte(raw), &meds))

	var se *SchemaError
	err := ValidateMedications(meds)
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "medications[0].reminders", se.Field)
}

func TestValidateAdherence(t *testing.T) {
	rec := AdherenceRecord{Date: "2025-06-01", ProfileID: "p", MedicationID: "m", Taken: boolPtr(true)}
	require.NoError(t, ValidateAdherence([]AdherenceRecord{rec}))

	var se *SchemaError

	bad := rec
	bad.MedicationID = ""
	err := ValidateAdherence([]AdherenceRecord{bad})
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "adherence[0].medicationId", se.Field)

	bad = rec
	bad.Taken = nil
	err = ValidateAdherence([]AdherenceRecord{bad})
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "adherence[0].taken", se.Field)
}

func TestValidateLogs(t *testing.T) {
	l := HealthLog{ID: "l1", ProfileID: "p", Date: "2025-06-01", Type: "weight", Value: "70", Unit: "kg"}
	require.NoError(t, ValidateLogs([]HealthLog{l}))

	l.Unit = ""
	var se *SchemaError
	err := ValidateLogs([]HealthLog{l})
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "logs[0].unit", se.Field)
}

func TestValidateProfile(t *testing.T) {
	p := Profile{ID: "p1", Name: "Ann", Email: "a@x.com", Phone: "555", Age: "40", Weight: "60", BloodType: "A+",
		Notifications: NotificationsConfig{Enabled: boolPtr(true)}}
	require.NoError(t, ValidateProfile(p))

	var se *SchemaError

	bad := p
	bad.BloodType = ""
	err := ValidateProfile(bad)
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "profile.bloodType", se.Field)

	bad = p
	bad.Notifications.Enabled = nil
	err = ValidateProfile(bad)
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "profile.notifications.enabled", se.Field)
}

func TestCloneDoesNotAlias(t *testing.T) {
	d := NewUserHealthData()
	d.Medications = []Medication{validMedication()}

	c := d.Clone()
	c.Medications[0].TimeOfDay[0] = "23:59"
	c.Medications[0].Reminders[0].Time = "23:59"

	assert.Equal(t, "08:00", d.Medications[0].TimeOfDay[0])
	assert.Equal(t, "08:00", d.Medications[0].Reminders[0].Time)
}
