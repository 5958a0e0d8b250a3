package main

import (
	"context"
	"testing"

	"github.com/KirkDiggler/touchline/internal/config"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	logTest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckRedis(t *testing.T) {
	tests := []struct {
		name      string
		backend   string
		down      bool
		wantErr   bool
		wantWarns int
	}{
		{name: "reachable", backend: config.HistoryBackendRedis},
		{name: "down with sqlite history", backend: config.HistoryBackendSQLite, down: true, wantWarns: 1},
		{name: "down with redis history", backend: config.HistoryBackendRedis, down: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mr, err := miniredis.Run()
			require.NoError(t, err)
			defer mr.Close()

			client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
			defer client.Close()
			if tt.down {
				mr.Close()
			}

			logger, hook := logTest.NewNullLogger()
			cfg := &config.Config{RedisAddr: mr.Addr(), HistoryBackend: tt.backend}

			err = checkRedis(context.Background(), client, cfg, logger)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			warns := 0
			for _, e := range hook.AllEntries() {
				if e.Level == logrus.WarnLevel {
					warns++
				}
			}
			assert.Equal(t, tt.wantWarns, warns)
		})
	}
}
