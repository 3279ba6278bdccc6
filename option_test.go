package cfgmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withDefaults builds {default: {ip: "0.0.0.0", port: 80}, http: {}}.
func withDefaults() *Map {
	defaults := New()
	defaults.Insert("ip", String("0.0.0.0"))
	defaults.Insert("port", Int(80))

	m := WithDefault("default")
	m.Insert("default", MapValue(defaults))
	m.Insert("http", MapValue(New()))

	return m
}

func TestGetOption_FallsBackToDefault(t *testing.T) {
	t.Parallel()

	m := withDefaults()

	assert.True(t, m.GetOption("http", "ip").CheckThat(IsExactlyStr("0.0.0.0")))

	require.True(t, m.Set("http/ip", String("1.2.3.4")))
	assert.True(t, m.GetOption("http", "ip").CheckThat(IsExactlyStr("1.2.3.4")))
}

func TestGetOption_MissingEverywhere(t *testing.T) {
	t.Parallel()

	m := withDefaults()

	assert.True(t, m.GetOption("http", "tls").CheckThat(IsAbsent))
	assert.True(t, m.GetOption("missing", "ip").CheckThat(IsExactlyStr("0.0.0.0")),
		"an absent section still sees defaults")
	assert.Nil(t, m.GetOption("http", ""))
}

func TestGetOption_RootDefault(t *testing.T) {
	t.Parallel()

	sub := New()
	sub.Insert("OP1", Int(5))

	m := New()
	m.Insert("OP1", Int(8))
	m.Insert("sub", MapValue(sub))

	assert.True(t, m.GetOption("sub", "OP1").CheckThat(IsExactlyInt(5)))
	assert.True(t, m.GetOption("foo", "OP1").CheckThat(IsExactlyInt(8)))
	assert.Nil(t, m.GetOption("sub", "OP2"))
}

func TestGetOption_DefaultKeyPointingNowhere(t *testing.T) {
	t.Parallel()

	m := New()
	m.Insert("OP1", Int(8))
	m.SetDefaultKey("defaults")

	assert.Nil(t, m.GetOption("sub", "OP1"))
}

func TestGetOption_NestedOption(t *testing.T) {
	t.Parallel()

	tls := New()
	tls.Insert("enabled", Bool(true))

	m := withDefaults()
	m.Set("default/tls", MapValue(tls))

	assert.True(t, m.GetOption("http", "tls/enabled").CheckThat(IsExactlyBool(true)))
}

func TestUpdateOption_Concrete(t *testing.T) {
	t.Parallel()

	m := withDefaults()
	m.Set("http/port", Int(8080))

	old, ok := m.UpdateOption("http", "port", Int(9090))
	require.True(t, ok)
	assert.True(t, old.CheckThat(IsExactlyInt(8080)))
	assert.True(t, m.Get("http/port").CheckThat(IsExactlyInt(9090)))
	assert.True(t, m.Get("default/port").CheckThat(IsExactlyInt(80)))
}

func TestUpdateOption_DefaultIsNeverWritten(t *testing.T) {
	t.Parallel()

	m := withDefaults()

	old, ok := m.UpdateOption("http", "ip", String("10.0.0.1"))
	require.True(t, ok)
	assert.True(t, old.CheckThat(IsExactlyStr("0.0.0.0")))

	assert.True(t, m.Get("http/ip").CheckThat(IsExactlyStr("10.0.0.1")))
	assert.True(t, m.Get("default/ip").CheckThat(IsExactlyStr("0.0.0.0")))
	assert.True(t, m.GetOption("other", "ip").CheckThat(IsExactlyStr("0.0.0.0")))
}

func TestUpdateOption_NotFound(t *testing.T) {
	t.Parallel()

	m := withDefaults()
	m.Remove("default/port")

	_, ok := m.UpdateOption("http", "port", Int(8080))
	require.False(t, ok)
	assert.Nil(t, m.Get("http/port"))
	assert.Nil(t, m.GetOption("http", "port"))

	require.True(t, m.Add("http/port", Int(8080)), "direct insertion is unaffected")
	assert.True(t, m.GetOption("http", "port").CheckThat(IsExactlyInt(8080)))
}

func TestUpdateOption_MissingSection(t *testing.T) {
	t.Parallel()

	m := withDefaults()

	_, ok := m.UpdateOption("ftp", "port", Int(21))
	require.False(t, ok)
	assert.False(t, m.Has("ftp"))
	assert.True(t, m.Get("default/port").CheckThat(IsExactlyInt(80)))
}

func TestUpdateOption_InvalidInput(t *testing.T) {
	t.Parallel()

	m := withDefaults()

	_, ok := m.UpdateOption("http", "", Int(1))
	assert.False(t, ok)

	_, ok = m.UpdateOption("http", "ip", Value{})
	assert.False(t, ok)
}
