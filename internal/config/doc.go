// Package config provides configuration loading, merging, and validation
// facilities for the stamper.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier ones):
//  1. JSON or YAML settings file (-c / STAMPER_CONFIG)
//  2. Environment variables (STAMPER_*)
//  3. Command-line flags that were explicitly set
//
// Defaults are applied after merging. The entry point is
// [GetStructuredConfig].
package config
