package chain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/slimkhemiri/slim-cli/internal/domain"
	portmocks "github.com/slimkhemiri/slim-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const apiKey = "phone/api_key"

func newMockedStore(t *testing.T) (*Store, *portmocks.MockSecretStore, *portmocks.MockSecretStore) {
	t.Helper()

	primary := portmocks.NewMockSecretStore(t)
	fallback := portmocks.NewMockSecretStore(t)

	return NewStore(primary, fallback), primary, fallback
}

func TestNewStoreCheckedRejectsNilBackends(t *testing.T) {
	t.Parallel()

	_, err := NewStoreChecked(nil, portmocks.NewMockSecretStore(t))
	require.ErrorIs(t, err, errNilPrimaryStore)

	_, err = NewStoreChecked(portmocks.NewMockSecretStore(t), nil)
	require.ErrorIs(t, err, errNilFallbackStore)
}

func TestStoreGetUsesPrimaryWhenItSucceeds(t *testing.T) {
	t.Parallel()

	store, primary, _ := newMockedStore(t)
	primary.EXPECT().Get(mock.Anything, apiKey).Return("from-env", nil).Once()

	value, err := store.Get(context.Background(), apiKey)
	require.NoError(t, err)
	assert.Equal(t, "from-env", value)
}

func TestStoreGetFallsBackWhenPrimaryMisses(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newMockedStore(t)
	primary.EXPECT().Get(mock.Anything, apiKey).Return("", domain.ErrSecretNotFound).Once()
	fallback.EXPECT().Get(mock.Anything, apiKey).Return("from-file", nil).Once()

	value, err := store.Get(context.Background(), apiKey)
	require.NoError(t, err)
	assert.Equal(t, "from-file", value)
}

func TestStoreGetReportsNotFoundWhenBothMiss(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newMockedStore(t)
	primary.EXPECT().Get(mock.Anything, apiKey).Return("", domain.ErrSecretNotFound).Once()
	fallback.EXPECT().Get(mock.Anything, apiKey).Return("", fmt.Errorf("file secret: %w", domain.ErrSecretNotFound)).Once()

	_, err := store.Get(context.Background(), apiKey)
	require.ErrorIs(t, err, domain.ErrSecretNotFound)
	assert.NotContains(t, err.Error(), "primary backend")
}

func TestStoreGetReturnsCombinedErrorWhenBothBackendsFail(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newMockedStore(t)
	primary.EXPECT().Get(mock.Anything, apiKey).Return("", errors.New("env broken")).Once()
	fallback.EXPECT().Get(mock.Anything, apiKey).Return("", errors.New("file failed")).Once()

	_, err := store.Get(context.Background(), apiKey)
	require.Error(t, err)
	assert.ErrorContains(t, err, "primary backend")
	assert.ErrorContains(t, err, "env broken")
	assert.ErrorContains(t, err, "file failed")
}

func TestStorePutSkipsReadOnlyPrimary(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newMockedStore(t)
	primary.EXPECT().Put(mock.Anything, apiKey, "secret").Return(domain.ErrSecretReadOnly).Once()
	fallback.EXPECT().Put(mock.Anything, apiKey, "secret").Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), apiKey, "secret"))
}

func TestStorePutDoesNotCallFallbackWhenPrimarySucceeds(t *testing.T) {
	t.Parallel()

	store, primary, _ := newMockedStore(t)
	primary.EXPECT().Put(mock.Anything, apiKey, "secret").Return(nil).Once()

	require.NoError(t, store.Put(context.Background(), apiKey, "secret"))
}

func TestStoreDeleteCombinesErrorsWhenBothFail(t *testing.T) {
	t.Parallel()

	store, primary, fallback := newMockedStore(t)
	primary.EXPECT().Delete(mock.Anything, apiKey).Return(errors.New("env broken")).Once()
	fallback.EXPECT().Delete(mock.Anything, apiKey).Return(errors.New("disk full")).Once()

	err := store.Delete(context.Background(), apiKey)
	require.Error(t, err)
	assert.ErrorContains(t, err, "primary backend delete failed")
	assert.ErrorContains(t, err, "disk full")
}

func TestStoreGetDoesNotFallbackOnCanceledContextError(t *testing.T) {
	t.Parallel()

	store, primary, _ := newMockedStore(t)
	primary.EXPECT().Get(mock.Anything, apiKey).Return("", context.Canceled).Once()

	_, err := store.Get(context.Background(), apiKey)
	require.ErrorIs(t, err, context.Canceled)
}

func TestEnvFirstWithFileFallbackReadsFileAndWritesThroughEnv(t *testing.T) {
	root := t.TempDir()
	t.Setenv("SLIM_SECRET_PHONE_API_KEY", "")

	store, err := NewEnvFirstWithFileFallback(root)
	require.NoError(t, err)

	require.NoError(t, store.Put(context.Background(), apiKey, "from-file"))
	value, err := store.Get(context.Background(), apiKey)
	require.NoError(t, err)
	assert.Equal(t, "from-file", value)

	t.Setenv("SLIM_SECRET_PHONE_API_KEY", "from-env")
	value, err = store.Get(context.Background(), apiKey)
	require.NoError(t, err)
	assert.Equal(t, "from-env", value)
}
