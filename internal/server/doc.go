// Package server runs the organization API over HTTP and shuts it down
// gracefully on SIGTERM, SIGINT or SIGQUIT.
package server
