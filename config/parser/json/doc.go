// Package json provides a JSON parser implementation for the config package.
//
// Comments and trailing commas are accepted (JSONC) by running the input through
// github.com/tidwall/jsonc before decoding. Object keys keep their document order.
//
// Conversion:
//   - object -> Map, array -> List
//   - numbers without fraction or exponent that fit int64 -> Int, other numbers -> Float
//   - booleans and strings keep their kind, null -> Null
package json
