package core

import (
	"fmt"

	"chartmenu/internal/core/domain"
	"chartmenu/internal/ports"
)

const (
	apiKeyIDName     = "artifacthub-api-key-id"
	apiKeySecretName = "artifacthub-api-key-secret"
)

// CredentialsRepository stores the optional Artifact Hub API key.
type CredentialsRepository interface {
	// LoadAPIKey returns nil when no key is stored.
	LoadAPIKey() (*domain.APIKey, error)
	SaveAPIKey(apiKey domain.APIKey) error
	DeleteAPIKey() error
}

type KeyringCredentialsRepository struct {
	keyring ports.Keyring
	apiKey  *domain.APIKey
	loaded  bool
}

func ProvideKeyringCredentialsRepository(keyring ports.Keyring) *KeyringCredentialsRepository {
	return &KeyringCredentialsRepository{keyring: keyring}
}

func (r *KeyringCredentialsRepository) LoadAPIKey() (*domain.APIKey, error) {
	if r.loaded {
		return r.apiKey, nil
	}

	hasKey, err := r.keyring.HasKey(apiKeyIDName)
	if err != nil {
		return nil, fmt.Errorf("failed to read keyring: %w", err)
	}
	if !hasKey {
		r.loaded = true
		return nil, nil
	}

	id, err := r.keyring.GetKey(apiKeyIDName)
	if err != nil {
		return nil, fmt.Errorf("failed to read api key id: %w", err)
	}
	secret, err := r.keyring.GetKey(apiKeySecretName)
	if err != nil {
		return nil, fmt.Errorf("failed to read api key secret: %w", err)
	}

	r.apiKey = &domain.APIKey{ID: id, Secret: secret}
	r.loaded = true
	return r.apiKey, nil
}

func (r *KeyringCredentialsRepository) SaveAPIKey(apiKey domain.APIKey) error {
	if apiKey.ID == "" || apiKey.Secret == "" {
		return fmt.Errorf("api key id and secret must not be empty")
	}
	if err := r.keyring.SetKey(apiKeyIDName, apiKey.ID); err != nil {
		return fmt.Errorf("failed to store api key id: %w", err)
	}
	if err := r.keyring.SetKey(apiKeySecretName, apiKey.Secret); err != nil {
		return fmt.Errorf("failed to store api key secret: %w", err)
	}
	r.apiKey = &apiKey
	r.loaded = true
	return nil
}

func (r *KeyringCredentialsRepository) DeleteAPIKey() error {
	if err := r.keyring.DeleteKey(apiKeyIDName); err != nil {
		return fmt.Errorf("failed to delete api key id: %w", err)
	}
	if err := r.keyring.DeleteKey(apiKeySecretName); err != nil {
		return fmt.Errorf("failed to delete api key secret: %w", err)
	}
	r.apiKey = nil
	r.loaded = true
	return nil
}
