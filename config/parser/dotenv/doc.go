// Package dotenv provides a parser for .env files.
//
// Files are read with github.com/joho/godotenv, so quoting, `export` prefixes,
// comments and variable expansion follow its rules. Every value is a String.
//
// Keys are split on a separator into nested sections:
//
//	DATABASE__HOST=db.local
//	DATABASE__PORT=5432
//
// parsed with NewParser(WithLowercase()) yields a "database" section whose "port"
// option is the string "5432". Keys are inserted in sorted order.
package dotenv
