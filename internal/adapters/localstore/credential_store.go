package localstore

import (
	domain "playerhub/internal/domain/credential"
)

// credentialKey matches the key the admin panel historically used, so an
// existing mirror file keeps working.
const credentialKey = "admin-password-data"

// CredentialStore keeps the current admin credential in a FileStore. The
// credential never touches the content database.
type CredentialStore struct {
	store *FileStore
}

// NewCredentialStore wraps store for credential access.
func NewCredentialStore(store *FileStore) *CredentialStore {
	return &CredentialStore{store: store}
}

// Get returns the stored credential, if any.
func (c *CredentialStore) Get() (domain.Credential, bool, error) {
	var cred domain.Credential
	ok, err := c.store.Get(credentialKey, &cred)
	if err != nil {
		return domain.Credential{}, false, err
	}
	return cred, ok, nil
}

// Put replaces the stored credential.
func (c *CredentialStore) Put(cred domain.Credential) error {
	return c.store.Set(credentialKey, cred)
}

// Clear removes the stored credential.
func (c *CredentialStore) Clear() error {
	return c.store.Delete(credentialKey)
}
