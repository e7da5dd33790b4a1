// Package config handles loading and validation of rpc configuration.
//
// Configuration is read from ~/.config/rpc/config.toml with environment
// variable overrides for the settings doctor uses.
//
// # Configuration Sources (highest priority first)
//
//   - RPC_PACKAGE_NAME env var: package name queried on the registry
//   - RPC_MIN_NODE_VERSION env var: minimum supported Node.js version
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - package_name: name of rpc's own package on the npm registry
//   - min_node_version: dotted version doctor compares node against
//   - issues_url: where doctor tells users to report problems
//   - auto_select_single: skip the selector when only one script exists
//   - [doctor] lookup_timeout: bound for each registry/runtime lookup
//   - [theme] name, mode, nerdfont: colors and status icons
//
// A missing file is not an error. An unreadable or invalid file is
// reported and the defaults are used instead.
package config
