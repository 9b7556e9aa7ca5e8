// Package server wires and runs the application's HTTP server together with
// the background workers.
//
// It owns their lifecycle: startup, signal handling, and graceful shutdown
// once SIGTERM, SIGINT or SIGQUIT arrives.
package server
