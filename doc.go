// Package cfgmap provides a typed, hierarchical value container for
// application configuration.
//
// A Map holds string keys mapped to Values. A Value is one of a closed set of
// kinds: Int, Float, Bool, String, List, Map and, when a format adapter
// supplies them, Datetime and Null.
//
// # Paths
//
// Path-aware methods take "/"-separated paths that descend through nested
// maps by key and through lists by decimal index:
//
//	cfg.Get("servers/0/host")
//
// is the same as looking up "servers", taking element 0 of the list and
// looking up "host" in that map. The lookup yields nil as soon as a key is
// missing, an index is out of range or not a number, or a scalar is reached
// before the last segment. Empty segments ("a//b", "/a", "a/") never
// resolve; the empty path resolves to the map itself.
//
// # Default Section
//
// A map created with WithDefault (or given one through SetDefaultKey) names a
// top-level section that supplies fallback options:
//
//	cfg := cfgmap.WithDefault("default")
//	cfg.GetOption("http", "ip") // http/ip, else default/ip
//
// Without a default key the fallback is the map root. UpdateOption uses the
// same lookup but only ever writes into the concrete section, so the default
// section stays a read-only template.
//
// # Conditions
//
// Conditions validate a looked-up value without manual type switches:
//
//	ok := cfg.Get("http/port").CheckThat(cfgmap.IsInt.Or(cfgmap.IsStr))
//
// CheckThat is nil-safe, so absence is just another checkable outcome.
//
// # Format Adapters
//
// The core does no I/O. Parsers for YAML, JSON, TOML, HCL and dotenv live in
// config/parser and produce a *Map; config.Provider ties fetching and parsing
// together.
//
// Maps are not safe for concurrent mutation; callers that share one must
// synchronize access themselves.
package cfgmap
