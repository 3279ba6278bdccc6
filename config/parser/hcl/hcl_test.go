package hcl

import (
	"testing"

	"github.com/0xalexb/cfgmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParser_Parse_Attributes(t *testing.T) {
	t.Parallel()

	data := []byte(`
name    = "service"
port    = 8080
ratio   = 0.25
big     = 9007199254740993
huge    = 1e30
enabled = true
nothing = null
hosts   = ["a", "b"]
mixed   = [1, "two", false]
limits  = { memory = "1Gi", cpu = 2 }
`)

	cfg, err := NewParser().Parse(data)
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"name", "port", "ratio", "big", "huge", "enabled", "nothing", "hosts", "mixed", "limits"},
		cfg.Keys(), "attributes keep source order")

	assert.True(t, cfg.Get("name").CheckThat(cfgmap.IsExactlyStr("service")))
	assert.True(t, cfg.Get("port").CheckThat(cfgmap.IsExactlyInt(8080)))
	assert.True(t, cfg.Get("ratio").CheckThat(cfgmap.IsExactlyFloat(0.25)))
	assert.True(t, cfg.Get("big").CheckThat(cfgmap.IsExactlyInt(9007199254740993)))
	assert.True(t, cfg.Get("huge").CheckThat(cfgmap.IsFloat))
	assert.True(t, cfg.Get("enabled").CheckThat(cfgmap.IsExactlyBool(true)))
	assert.True(t, cfg.Get("nothing").CheckThat(cfgmap.IsNull))
	assert.True(t, cfg.Get("hosts").CheckThat(cfgmap.IsListWith(cfgmap.IsStr)))
	assert.True(t, cfg.Get("mixed/1").CheckThat(cfgmap.IsExactlyStr("two")))
	assert.True(t, cfg.Get("limits/cpu").CheckThat(cfgmap.IsExactlyInt(2)))

	limits, ok := cfg.Get("limits").AsMap()
	require.True(t, ok)
	assert.Equal(t, []string{"cpu", "memory"}, limits.Keys())
}

func TestParser_Parse_Blocks(t *testing.T) {
	t.Parallel()

	data := []byte(`
default {
  timeout = "5s"
}

service "api" {
  port = 9000

  tls {
    enabled = true
  }
}

service "worker" {
  port = 9100
}
`)

	cfg, err := NewParser().Parse(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"default", "service"}, cfg.Keys())
	assert.True(t, cfg.Get("default/timeout").CheckThat(cfgmap.IsExactlyStr("5s")))
	assert.True(t, cfg.Get("service/api/port").CheckThat(cfgmap.IsExactlyInt(9000)))
	assert.True(t, cfg.Get("service/api/tls/enabled").CheckThat(cfgmap.IsExactlyBool(true)))
	assert.True(t, cfg.Get("service/worker/port").CheckThat(cfgmap.IsExactlyInt(9100)))

	services, ok := cfg.Get("service").AsMap()
	require.True(t, ok)
	assert.Equal(t, []string{"api", "worker"}, services.Keys())

	cfg.SetDefaultKey("default")
	assert.True(t, cfg.GetOption("service/api", "timeout").CheckThat(cfgmap.IsExactlyStr("5s")))
}

func TestParser_Parse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty data", input: "", wantErr: ErrEmptyData},
		{name: "duplicate block", input: "a \"x\" {}\na \"x\" {}\n", wantErr: ErrDuplicateBlock},
		{name: "block over attribute", input: "a = 1\na {}\n", wantErr: nil},
		{name: "syntax error", input: "a = \n", wantErr: nil},
		{name: "variable reference", input: "a = var.b\n", wantErr: nil},
		{name: "function call", input: "a = upper(\"x\")\n", wantErr: nil},
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

func TestParser_WithFilename(t *testing.T) {
	t.Parallel()

	_, err := NewParser().WithFilename("service.hcl").Parse([]byte("a = \n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "service.hcl")
}
