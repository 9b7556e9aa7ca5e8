// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]; the terminal client uses
// [GetClientConfig]. Defaults are filled in after merging, so a bare
// environment yields a runnable development setup.
package config
