package artifact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestPublicID(t *testing.T) {
	assert.Equal(t, "s1_selfie", publicID("s1", "selfie.jpg"))
	assert.Equal(t, "s1_my_photo", publicID("s1", "../my photo.png"))
	assert.Equal(t, "s1", publicID("s1", ""))
}

func TestCloudinaryStore_URL(t *testing.T) {
	s, err := NewCloudinaryStore("demo", "key", "secret", "safemeet/verifications", newTestLogger(t))
	require.NoError(t, err)

	u := s.URL("safemeet/verifications/s1_selfie")

	assert.True(t, strings.HasPrefix(u, "https://res.cloudinary.com/demo/image/upload/"), u)
	assert.True(t, strings.HasSuffix(u, "safemeet/verifications/s1_selfie"), u)
}
