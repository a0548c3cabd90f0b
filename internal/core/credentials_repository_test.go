package core

import (
	"errors"
	"testing"

	"chartmenu/internal/core/domain"
	"chartmenu/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyringCredentialsRepository_LoadAPIKeyNotStored(t *testing.T) {
	keyring := new(testutil.MockKeyring)
	keyring.On("HasKey", "artifacthub-api-key-id").Return(false, nil).Once()
	sut := ProvideKeyringCredentialsRepository(keyring)

	apiKey, err := sut.LoadAPIKey()
	require.NoError(t, err)
	assert.Nil(t, apiKey)

	// second call is served from memory
	apiKey, err = sut.LoadAPIKey()
	require.NoError(t, err)
	assert.Nil(t, apiKey)
	keyring.AssertExpectations(t)
}

func TestKeyringCredentialsRepository_LoadAPIKey(t *testing.T) {
	keyring := new(testutil.MockKeyring)
	keyring.On("HasKey", "artifacthub-api-key-id").Return(true, nil)
	keyring.On("GetKey", "artifacthub-api-key-id").Return("key-id", nil)
	keyring.On("GetKey", "artifacthub-api-key-secret").Return("key-secret", nil)
	sut := ProvideKeyringCredentialsRepository(keyring)

	apiKey, err := sut.LoadAPIKey()

	require.NoError(t, err)
	assert.Equal(t, &domain.APIKey{ID: "key-id", Secret: "key-secret"}, apiKey)
}

func TestKeyringCredentialsRepository_LoadAPIKeyKeyringError(t *testing.T) {
	keyring := new(testutil.MockKeyring)
	keyring.On("HasKey", "artifacthub-api-key-id").Return(false, errors.New("dbus unavailable"))
	sut := ProvideKeyringCredentialsRepository(keyring)

	_, err := sut.LoadAPIKey()

	assert.ErrorContains(t, err, "dbus unavailable")
}

func TestKeyringCredentialsRepository_SaveAPIKey(t *testing.T) {
	keyring := new(testutil.MockKeyring)
	keyring.On("SetKey", "artifacthub-api-key-id", "key-id").Return(nil)
	keyring.On("SetKey", "artifacthub-api-key-secret", "key-secret").Return(nil)
	sut := ProvideKeyringCredentialsRepository(keyring)

	require.NoError(t, sut.SaveAPIKey(domain.APIKey{ID: "key-id", Secret: "key-secret"}))

	apiKey, err := sut.LoadAPIKey()
	require.NoError(t, err)
	assert.Equal(t, "key-id", apiKey.ID)
	keyring.AssertExpectations(t)
}

func TestKeyringCredentialsRepository_SaveAPIKeyRejectsEmpty(t *testing.T) {
	keyring := new(testutil.MockKeyring)
	sut := ProvideKeyringCredentialsRepository(keyring)

	err := sut.SaveAPIKey(domain.APIKey{ID: "key-id"})

	assert.Error(t, err)
	keyring.AssertNumberOfCalls(t, "SetKey", 0)
}

func TestKeyringCredentialsRepository_DeleteAPIKey(t *testing.T) {
	keyring := new(testutil.MockKeyring)
	keyring.On("DeleteKey", "artifacthub-api-key-id").Return(nil)
	keyring.On("DeleteKey", "artifacthub-api-key-secret").Return(nil)
	sut := ProvideKeyringCredentialsRepository(keyring)

	require.NoError(t, sut.DeleteAPIKey())

	apiKey, err := sut.LoadAPIKey()
	require.NoError(t, err)
	assert.Nil(t, apiKey)
	keyring.AssertExpectations(t)
}
