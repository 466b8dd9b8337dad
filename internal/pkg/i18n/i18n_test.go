package i18n

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBundleTranslations(t *testing.T) {
	b, err := NewBundle("../../../locales")
	require.NoError(t, err)

	fr := b.T("fr", "report_not_found")
	ar := b.T("ar", "report_not_found")

	require.NotEmpty(t, fr)
	require.NotEmpty(t, ar)
	require.NotEqual(t, fr, ar)
}

func TestUnknownMessageFallsBackToID(t *testing.T) {
	b, err := NewBundle("../../../locales")
	require.NoError(t, err)

	require.Equal(t, "no_such_message", b.T("fr", "no_such_message"))
}

func TestMissingLocalesDir(t *testing.T) {
	_, err := NewBundle("./does-not-exist")
	require.Error(t, err)
}
