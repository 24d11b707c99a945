package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Credential is the stored account record, keyed by email in the users
// image. JSON field names match the on-disk format ("password" holds
// whatever the secret policy sealed, plaintext under the default
// policy).
type Credential struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Secret string `json:"password"`
}

// Identity is what a successful register or verify returns.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SecretPolicy seals secrets at registration and checks presented
// secrets against stored ones. The store never inspects secrets itself.
type SecretPolicy interface {
	Seal(secret string) (string, error)
	Check(stored, presented string) bool
}

// CredentialStore maps account keys to credentials, with the same
// lock + full-snapshot discipline as the document store. docs receives
// an Init for every new registration so each credential key always has
// a tenant aggregate.
type CredentialStore struct {
	mu     sync.Mutex
	path   string
	policy SecretPolicy
	docs   *Store
	data   map[string]Credential
}

func OpenCredentials(path string, policy SecretPolicy, docs *Store) (*CredentialStore, error) {
	img, err := loadImage[Credential](path)
	if err != nil {
		return nil, err
	}
	return &CredentialStore{path: path, policy: policy, docs: docs, data: img}, nil
}

// Register creates the credential and the account's empty aggregate.
// Duplicate keys fail with ErrAlreadyExists and leave the first
// registration untouched.
func (c *CredentialStore) Register(key, name, secret string) (Identity, error) {
	sealed, err := c.policy.Seal(secret)
	if err != nil {
		return Identity{}, fmt.Errorf("seal secret: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.data[key]; ok {
		return Identity{}, ErrAlreadyExists
	}

	cred := Credential{ID: uuid.NewString(), Name: name, Secret: sealed}
	c.data[key] = cred
	if err := storeImage(c.path, c.data); err != nil {
		delete(c.data, key)
		return Identity{}, err
	}

	if c.docs != nil {
		if err := c.docs.Init(key); err != nil {
			// roll the credential back so registration is all-or-nothing
			delete(c.data, key)
			if serr := storeImage(c.path, c.data); serr != nil {
				return Identity{}, fmt.Errorf("init aggregate for %s: %w (credential rollback failed: %v)", key, err, serr)
			}
			return Identity{}, fmt.Errorf("init aggregate for %s: %w", key, err)
		}
	}
	return Identity{ID: cred.ID, Name: name, Email: key}, nil
}

// Verify checks the presented secret. Unknown account and wrong secret
// are distinct errors here; the HTTP layer reports both as the same 401
// so callers cannot probe which one failed.
func (c *CredentialStore) Verify(key, secret string) (Identity, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	cred, ok := c.data[key]
	if !ok {
		return Identity{}, ErrNotFound
	}
	if !c.policy.Check(cred.Secret, secret) {
		return Identity{}, ErrInvalidCredential
	}
	return Identity{ID: cred.ID, Name: cred.Name, Email: key}, nil
}
