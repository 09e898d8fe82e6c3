// Package config provides configuration loading, merging, and validation
// facilities for the nbserve page server.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for fields they set):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// The main entry point is [GetStructuredConfig], which merges all sources,
// normalizes derived values (base URL shape, generated access token, preferred
// directory fallback) and validates the result.
package config
