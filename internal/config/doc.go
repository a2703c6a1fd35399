// Package config loads, normalizes, and validates matchreview configuration.
//
// Settings come from a TOML file (default ~/.config/matchreview/config.toml)
// layered over repository defaults, with MATCHREVIEW_STORE,
// MATCHREVIEW_CATALOG and MATCHREVIEW_EXPORT_DIR taking precedence over the
// file. Paths are returned expanded and absolute.
package config
