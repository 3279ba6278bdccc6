// Package toml provides a TOML parser implementation for the config package.
//
// Documents are decoded with github.com/pelletier/go-toml/v2. TOML tables are unordered
// after decoding, so the keys of every table are inserted in sorted order.
//
// Conversion:
//   - table -> Map, array and array of tables -> List
//   - integer -> Int, float -> Float, boolean and string keep their kind
//   - offset date-time -> Datetime
//   - local date and local date-time -> Datetime in UTC
//   - local time is rejected, it has no date to anchor it
package toml
