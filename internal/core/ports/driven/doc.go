// Package driven defines the ports the core services depend on: the
// external search process, the message viewer, and the configuration and
// history stores. Adapters implement these interfaces.
package driven
