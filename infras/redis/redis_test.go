package redis

import (
	"estate/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions(t *testing.T) {
	cfg := &config.Config{}
	cfg.Cache.Redis.Primary.Host = "cache.internal"
	cfg.Cache.Redis.Primary.Port = "6380"
	cfg.Cache.Redis.Primary.Password = "secret"
	cfg.Cache.Redis.Primary.DB = 2

	opts := options(cfg)

	assert.Equal(t, "cache.internal:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
}
