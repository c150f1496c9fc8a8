package sessionservice

import (
	"sync"

	"github.com/sunbelt-bank/bank-core/internal/domain"
	"github.com/sunbelt-bank/bank-core/pkg/passpkg"
	"github.com/sunbelt-bank/bank-core/pkg/randompkg"
)

const secretLength = 8

// Credentials stores bcrypt hashes of customer secrets keyed by full
// name. Plaintext secrets are returned exactly once, at issue time.
type Credentials struct {
	mu     sync.RWMutex
	hashes map[string]string
}

// NewCredentials returns an empty credential store.
func NewCredentials() *Credentials {
	return &Credentials{hashes: make(map[string]string)}
}

// Issue generates a fresh secret for the customer, stores its hash and
// returns the plaintext. Reissuing replaces the previous secret.
func (c *Credentials) Issue(fullName string) (string, error) {
	secret := randompkg.Secret(secretLength)

	hash, err := passpkg.Hash(secret)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.hashes[fullName] = hash
	c.mu.Unlock()

	return secret, nil
}

// Update replaces the customer's secret. The new secret must be exactly
// eight characters long and differ from the current one.
func (c *Credentials) Update(fullName, newSecret string) error {
	if len(newSecret) != secretLength {
		return domain.ErrInvalidSecret
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	current, ok := c.hashes[fullName]
	if !ok {
		return domain.ErrCredentialNotFound
	}

	if passpkg.Check(newSecret, current) == nil {
		return domain.ErrInvalidSecret
	}

	hash, err := passpkg.Hash(newSecret)
	if err != nil {
		return err
	}

	c.hashes[fullName] = hash

	return nil
}

// Verify checks the secret against the stored hash.
func (c *Credentials) Verify(fullName, secret string) error {
	c.mu.RLock()
	hash, ok := c.hashes[fullName]
	c.mu.RUnlock()

	if !ok {
		return domain.ErrCredentialNotFound
	}

	if err := passpkg.Check(secret, hash); err != nil {
		return domain.ErrWrongPassword
	}

	return nil
}
