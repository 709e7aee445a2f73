package log

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWithZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	previous := logger
	logger = zap.New(core)
	t.Cleanup(func() {
		logger = previous
	})

	r := chi.NewRouter()
	r.Use(WithZap)
	r.Get("/writeups/{year}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	tests := []struct {
		target string
		level  zapcore.Level
		route  string
		status int64
	}{
		{"/writeups/2022?draft=1", zapcore.InfoLevel, "/writeups/{year}", http.StatusOK},
		{"/broken", zapcore.ErrorLevel, "/broken", http.StatusInternalServerError},
		{"/missing", zapcore.WarnLevel, "", http.StatusNotFound},
	}

	for _, tt := range tests {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.target, nil))
	}

	entries := logs.AllUntimed()
	require.Len(t, entries, len(tests))

	for i, tt := range tests {
		fields := entries[i].ContextMap()
		assert.Equal(t, "request", entries[i].Message, "failed for target: %s", tt.target)
		assert.Equal(t, tt.level, entries[i].Level, "failed for target: %s", tt.target)
		assert.Equal(t, tt.status, fields["status"], "failed for target: %s", tt.target)
		if tt.route == "" {
			assert.NotContains(t, fields, "route", "failed for target: %s", tt.target)
		} else {
			assert.Equal(t, tt.route, fields["route"], "failed for target: %s", tt.target)
		}
	}

	assert.Equal(t, "draft=1", entries[0].ContextMap()["query"])
}
