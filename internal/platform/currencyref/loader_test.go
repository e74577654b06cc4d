package currencyref_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SscSPs/beers_api/internal/apperrors"
	"github.com/SscSPs/beers_api/internal/platform/currencyref"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeReference(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "supported_currencies.txt")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoad_TrimsAndUppercases(t *testing.T) {
	path := writeReference(t, " usd, EUR ,clp,GBP,jpy\n")

	set, err := currencyref.Load(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"CLP", "EUR", "GBP", "JPY", "USD"}, set.Codes())
	assert.True(t, set.IsValid("clp"))
	assert.False(t, set.IsValid("ARS"))
}

func TestLoad_SkipsEmptyTokens(t *testing.T) {
	path := writeReference(t, "USD,,EUR, ,")

	set, err := currencyref.Load(path)

	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
}

func TestLoad_IsIdempotent(t *testing.T) {
	path := writeReference(t, "USD,EUR,CLP,GBP,JPY")

	first, err := currencyref.Load(path)
	require.NoError(t, err)
	second, err := currencyref.Load(path)
	require.NoError(t, err)

	assert.Equal(t, first.Codes(), second.Codes())
}

func TestLoad_OrderDoesNotMatter(t *testing.T) {
	a, err := currencyref.Parse("USD,EUR,CLP")
	require.NoError(t, err)
	b, err := currencyref.Parse("CLP,USD,EUR")
	require.NoError(t, err)

	assert.Equal(t, a.Codes(), b.Codes())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := currencyref.Load(filepath.Join(t.TempDir(), "nope.txt"))

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrReferenceLoad)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := currencyref.Load("")
	assert.ErrorIs(t, err, apperrors.ErrReferenceLoad)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeReference(t, " \n")

	_, err := currencyref.Load(path)

	assert.ErrorIs(t, err, apperrors.ErrReferenceLoad)
}

func TestLoad_BundledReference(t *testing.T) {
	set, err := currencyref.Load(filepath.Join("..", "..", "..", "resources", "supported_currencies.txt"))

	require.NoError(t, err)
	for _, code := range []string{"USD", "EUR", "CLP", "GBP", "JPY"} {
		assert.True(t, set.Contains(code), code)
	}
}
