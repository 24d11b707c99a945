package auth

import "golang.org/x/crypto/bcrypt"

// Secret policies implement store.SecretPolicy. The policy is chosen by
// config so the comparison scheme is explicit instead of baked into the
// credential store.

// PlainSecrets stores and compares secrets verbatim. This mirrors the
// historical on-disk format and is the default; it is a known security
// gap, not a recommendation. Comparison is plain equality, not
// timing-safe.
type PlainSecrets struct{}

func (PlainSecrets) Seal(secret string) (string, error) { return secret, nil }

func (PlainSecrets) Check(stored, presented string) bool { return stored == presented }

// BcryptSecrets hashes at registration and compares with bcrypt.
// Existing plaintext images are not migrated; switching policies
// invalidates previously stored secrets.
type BcryptSecrets struct{}

func (BcryptSecrets) Seal(secret string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (BcryptSecrets) Check(stored, presented string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(presented)) == nil
}
