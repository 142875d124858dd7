// Package config provides configuration loading, merging, and validation
// facilities for store-last-login.
//
// Configuration is assembled from multiple sources; the first source that
// sets a field wins:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig].
package config
