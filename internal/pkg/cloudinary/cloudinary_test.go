package cloudinary

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestImageKey(t *testing.T) {
	at := time.UnixMilli(1700000000000)

	require.Equal(t, "1700000000000_photo", ImageKey("photo.jpg", at))
	require.Equal(t, "1700000000000_photo", ImageKey("/tmp/uploads/photo.jpg", at))

	// Unsafe characters are replaced, extension is dropped
	require.Equal(t, "1700000000000_t_l_phone_perdu", ImageKey("téléphone perdu.png", at))
}

func TestImageKeyDistinctTimestamps(t *testing.T) {
	a := ImageKey("photo.jpg", time.UnixMilli(1))
	b := ImageKey("photo.jpg", time.UnixMilli(2))
	require.NotEqual(t, a, b)
}
