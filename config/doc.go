// Package config loads the shop configuration and opens database connections from it.
//
// Values are resolved in this order, later sources winning: built-in defaults,
// a TOML file, SHOP_* environment variables and finally command line flags
// (applied by the caller).
package config
