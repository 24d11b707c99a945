package refill

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medkit/internal/health"
	"medkit/internal/store"
)

func med(id, name string, remaining int) health.Medication {
	return health.Medication{
		ID:        id,
		ProfileID: "prof-1",
		Name:      name,
		Dosage:    "10mg",
		Frequency: "daily",
		TimeOfDay: []string{"08:00"},
		Remaining: remaining,
		Total:     30,
		Reminders: []health.Reminder{},
	}
}

func TestScan_FlagsLowStockOnly(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "health_database.json"))
	require.NoError(t, err)

	require.NoError(t, s.ReplaceMedications("a@x.com", []health.Medication{
		med("m1", "Aspirin", 2),
		med("m2", "Lisinopril", 20),
	}))
	require.NoError(t, s.ReplaceMedications("b@x.com", []health.Medication{
		med("m3", "Metformin", 0),
	}))

	w := &Worker{Store: s, Threshold: 3}
	alerts := w.Scan()

	require.Len(t, alerts, 2)
	assert.Equal(t, Alert{AccountKey: "a@x.com", Medication: "Aspirin", Remaining: 2}, alerts[0])
	assert.Equal(t, Alert{AccountKey: "b@x.com", Medication: "Metformin", Remaining: 0}, alerts[1])
}

func TestScan_EmptyStore(t *testing.T) {
	s, err := store.Open(filepath.Join(t.TempDir(), "health_database.json"))
	require.NoError(t, err)

	w := &Worker{Store: s, Threshold: 3}
	assert.Empty(t, w.Scan())
}
