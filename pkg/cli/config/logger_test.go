package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/herald/pkg/cli/config"
)

func TestLogger_Configure(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{name: "debug", level: "debug"},
		{name: "info", level: "info"},
		{name: "warn", level: "warn"},
		{name: "error", level: "error"},
		{name: "levels are case insensitive", level: "DEBUG"},
		{name: "unknown level fails", level: "verbose", wantErr: true},
		{name: "empty level fails", level: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &config.Logger{Level: tt.level}
			result, err := logger.Configure()
			if tt.wantErr {
				gt.Error(t, err)
				return
			}
			gt.NoError(t, err)
			gt.NotNil(t, result)
		})
	}
}

func TestLogger_Configure_Handlers(t *testing.T) {
	for _, jsonMode := range []bool{true, false} {
		logger := &config.Logger{Level: "info", JSON: jsonMode}
		result, err := logger.Configure()
		gt.NoError(t, err)
		gt.NotNil(t, result)

		// Both handlers must accept records without panicking.
		result.Info("handler smoke test", "json", jsonMode)
	}
}

func TestLogger_Flags(t *testing.T) {
	logger := &config.Logger{}
	flags := logger.Flags()
	gt.Number(t, len(flags)).Equal(2)

	names := map[string]bool{}
	for _, flag := range flags {
		if f, ok := flag.(interface{ Names() []string }); ok && len(f.Names()) > 0 {
			names[f.Names()[0]] = true
		}
	}
	gt.True(t, names["log-level"])
	gt.True(t, names["log-json"])
}
