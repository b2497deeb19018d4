// Package driving defines the ports through which user-facing adapters
// (the CLI and the interactive chooser) drive the core services.
package driving
