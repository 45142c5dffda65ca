// Package config provides configuration loading, merging, and validation
// facilities for the tasklist client and the organization API server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. JSON config file (path taken from CONFIG or -c/-config)
//  2. Environment variables
//  3. Command-line flags
//
// The main entry points are [GetClientConfig] and [GetServerConfig]; both
// project the merged [StructuredConfig] onto the settings their binary needs
// and validate the result.
package config
