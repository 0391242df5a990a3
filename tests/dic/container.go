package dic

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/gentle-breeze49/birdkit/internal/dic"
	"github.com/gentle-breeze49/birdkit/internal/dic/container"
	"github.com/gentle-breeze49/birdkit/internal/logger"
	"github.com/gentle-breeze49/birdkit/internal/logger/mocks"
)

// BuildTestContainer builds the container with a null logger and a
// configuration that cannot reach real backends. Both the container and
// viper are reset once the test is done.
func BuildTestContainer(t *testing.T) {
	t.Helper()
	dic.ResetContainer()
	viper.Reset()
	t.Cleanup(func() {
		dic.ResetContainer()
		viper.Reset()
	})

	viper.Set("api_host", "http://127.0.0.1:1")
	viper.Set("log_level", "debug")
	viper.Set("token", "token")
	viper.Set("cache_user_ttl", "10s")
	viper.Set("cache_status_ttl", "10s")
	viper.Set("media_fetch_timeout", "1s")

	// Override here services for tests
	require.NoError(t, dic.Register[logger.Logger](mocks.NewNullLogger()))

	require.NoError(t, container.BuildContainer())
}
