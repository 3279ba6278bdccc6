// Package hcl provides an HCL native syntax parser implementation for the config package.
//
// Documents are parsed with github.com/hashicorp/hcl/v2 and attribute expressions are
// evaluated without variables or functions, so only literal values are accepted.
// Values are converted from github.com/zclconf/go-cty.
//
// Structure:
//   - attributes keep their source order
//   - a block nests its body under its type followed by its labels, so
//     `service "api" { port = 80 }` is reachable at "service/api/port"
//   - a block that lands on an existing entry is an error
//
// Conversion:
//   - number -> Int when it is a whole number within int64, Float otherwise
//   - string and bool keep their kind, null -> Null
//   - list, tuple and set -> List, object and map -> Map (keys sorted)
package hcl
