// Package services implements the core application services: the
// incremental search session (process lifecycle, stream parsing, throttled
// candidate publication), candidate actions, and search history.
package services
