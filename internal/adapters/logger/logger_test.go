package logger_test

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/catsync/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name string
		log  func(*logger.Logger)
		want []string
	}{
		{
			name: "info",
			log:  func(l *logger.Logger) { l.Info("catalog main is up to date") },
			want: []string{"INFO", "catalog main is up to date"},
		},
		{
			name: "warn",
			log:  func(l *logger.Logger) { l.Warn("cached catalog list is corrupt") },
			want: []string{"WARN", "cached catalog list is corrupt"},
		},
		{
			name: "error",
			log:  func(l *logger.Logger) { l.Error(os.ErrPermission) },
			want: []string{"ERROR", "permission denied"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			lg := logger.NewWithWriter(&buf)

			tt.log(lg)

			for _, w := range tt.want {
				assert.Contains(t, buf.String(), w)
			}
		})
	}
}

func TestLogger_ErrorMetadata(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	err := zerr.With(zerr.Wrap(errors.New("connection refused"), "remote request failed"), "url", "https://cdn/catalog_main.hash")
	lg.Error(err)

	out := buf.String()
	assert.Contains(t, out, "remote request failed")
	assert.Contains(t, out, "connection refused")
	assert.Contains(t, out, "https://cdn/catalog_main.hash")
}

func TestLogger_ErrorNil(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	lg := logger.NewWithWriter(&first)

	lg.Info("before")
	lg.SetOutput(&second)
	lg.Info("after")

	assert.True(t, strings.Contains(first.String(), "before"))
	assert.False(t, strings.Contains(first.String(), "after"))
	assert.Contains(t, second.String(), "after")
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	assert.NoError(t, lg.SetLevel("warn"))
	lg.Info("hidden")
	lg.Warn("shown")
	lg.SetOutput(&buf)
	lg.Info("still hidden")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	assert.Error(t, lg.SetLevel("loud"))
}
