package store

import (
	"sort"
	"sync"

	"medkit/internal/health"
)

// Store is the tenant document store: one UserHealthData aggregate per
// account key, held in memory and snapshotted to a single JSON file on
// every mutation. One mutex serializes the whole load-mutate-store
// cycle; without it, two interleaved writes would rebuild the image
// from different bases and the later one would drop the earlier one's
// effect.
type Store struct {
	mu   sync.Mutex
	path string
	data map[string]*health.UserHealthData
}

// Open loads the full image at path. It fails with ErrCorruptImage when
// the file exists but cannot be parsed.
func Open(path string) (*Store, error) {
	img, err := loadImage[*health.UserHealthData](path)
	if err != nil {
		return nil, err
	}
	return &Store{path: path, data: img}, nil
}

// Aggregate returns a deep copy of the account's aggregate. Unknown
// accounts get an empty default; that is never an error and nothing is
// persisted for them.
func (s *Store) Aggregate(key string) *health.UserHealthData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data[key].Clone()
}

func (s *Store) Medications(key string) []health.Medication {
	return s.Aggregate(key).Medications
}

func (s *Store) Adherence(key string) []health.AdherenceRecord {
	return s.Aggregate(key).Adherence
}

func (s *Store) Logs(key string) []health.HealthLog {
	return s.Aggregate(key).Logs
}

// Profile returns the account's profile, or nil if none was ever saved.
func (s *Store) Profile(key string) *health.Profile {
	return s.Aggregate(key).Profile
}

// Accounts lists every account key with a stored aggregate, sorted.
func (s *Store) Accounts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Update runs mutate against a working copy of the account's aggregate
// (created empty if absent) and snapshots the whole image, all under
// the store lock. This is the serialization point for every write:
// read-modify-write callers go through here and cannot lose updates to
// each other. If mutate or the snapshot fails, the prior state stays
// fully intact.
func (s *Store) Update(key string, mutate func(*health.UserHealthData) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.data[key]
	work := prev.Clone()
	if err := mutate(work); err != nil {
		return err
	}

	s.data[key] = work
	if err := storeImage(s.path, s.data); err != nil {
		if existed {
			s.data[key] = prev
		} else {
			delete(s.data, key)
		}
		return err
	}
	return nil
}

// Init persists an empty aggregate for a new account. Called on
// registration so every credential key has a tenant entry.
func (s *Store) Init(key string) error {
	return s.Update(key, func(*health.UserHealthData) error { return nil })
}

// The Replace* operations overwrite one collection wholesale with the
// caller-supplied sequence. Clients always send the full desired
// collection; there is no merge or append API.

func (s *Store) ReplaceMedications(key string, meds []health.Medication) error {
	if err := health.ValidateMedications(meds); err != nil {
		return err
	}
	return s.Update(key, func(d *health.UserHealthData) error {
		d.Medications = health.CloneMedications(meds)
		return nil
	})
}

func (s *Store) ReplaceAdherence(key string, recs []health.AdherenceRecord) error {
	if err := health.ValidateAdherence(recs); err != nil {
		return err
	}
	return s.Update(key, func(d *health.UserHealthData) error {
		d.Adherence = health.CloneAdherence(recs)
		return nil
	})
}

func (s *Store) ReplaceLogs(key string, logs []health.HealthLog) error {
	if err := health.ValidateLogs(logs); err != nil {
		return err
	}
	return s.Update(key, func(d *health.UserHealthData) error {
		d.Logs = health.CloneLogs(logs)
		return nil
	})
}

func (s *Store) ReplaceProfile(key string, p health.Profile) error {
	if err := health.ValidateProfile(p); err != nil {
		return err
	}
	return s.Update(key, func(d *health.UserHealthData) error {
		d.Profile = p.Clone()
		return nil
	})
}
