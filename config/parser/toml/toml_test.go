package toml

import (
	"testing"
	"time"

	"github.com/0xalexb/cfgmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	data := []byte(`
title = "service"
port = 8080
ratio = 0.75
debug = true

[default]
timeout = "5s"
retries = 3

[database]
hosts = ["primary", "replica"]
started = 1979-05-27T07:32:00Z
created = 2024-02-03
updated = 2024-02-03T04:05:06

[[listener]]
name = "http"
port = 80

[[listener]]
name = "https"
port = 443
`)

	cfg, err := NewParser().Parse(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"database", "debug", "default", "listener", "port", "ratio", "title"}, cfg.Keys())

	assert.True(t, cfg.Get("title").CheckThat(cfgmap.IsExactlyStr("service")))
	assert.True(t, cfg.Get("port").CheckThat(cfgmap.IsExactlyInt(8080)))
	assert.True(t, cfg.Get("ratio").CheckThat(cfgmap.IsExactlyFloat(0.75)))
	assert.True(t, cfg.Get("debug").CheckThat(cfgmap.IsExactlyBool(true)))
	assert.True(t, cfg.Get("default/retries").CheckThat(cfgmap.IsExactlyInt(3)))
	assert.True(t, cfg.Get("database/hosts").CheckThat(cfgmap.IsListWith(cfgmap.IsStr)))
	assert.True(t, cfg.Get("listener").CheckThat(cfgmap.IsListWith(cfgmap.IsMap)))
	assert.True(t, cfg.Get("listener/1/port").CheckThat(cfgmap.IsExactlyInt(443)))

	started, ok := cfg.Get("database/started").AsDatetime()
	require.True(t, ok)
	assert.True(t, started.Equal(time.Date(1979, 5, 27, 7, 32, 0, 0, time.UTC)))

	created, ok := cfg.Get("database/created").AsDatetime()
	require.True(t, ok)
	assert.True(t, created.Equal(time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC)))

	updated, ok := cfg.Get("database/updated").AsDatetime()
	require.True(t, ok)
	assert.True(t, updated.Equal(time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC)))
}

func TestParser_Parse_WorksWithOptions(t *testing.T) {
	t.Parallel()

	data := []byte(`
[default]
timeout = "5s"

[api]
port = 9000
`)

	cfg, err := NewParser().Parse(data)
	require.NoError(t, err)

	cfg.SetDefaultKey("default")

	assert.True(t, cfg.GetOption("api", "timeout").CheckThat(cfgmap.IsExactlyStr("5s")))
	assert.True(t, cfg.GetOption("api", "port").CheckThat(cfgmap.IsExactlyInt(9000)))
}

func TestParser_Parse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty data", input: "", wantErr: ErrEmptyData},
		{name: "local time", input: "[clock]\nalarm = 07:32:00\n", wantErr: ErrLocalTime},
		{name: "invalid toml", input: "key = \n", wantErr: nil},
		{name: "duplicate key", input: "a = 1\na = 2\n", wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := NewParser().Parse([]byte(tt.input))

			require.Error(t, err)
			assert.Nil(t, cfg)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
