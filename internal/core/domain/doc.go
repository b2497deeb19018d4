// Package domain contains the core types for mailseek: search records and
// their wire-format parser, command construction for the external search
// tool, run lifecycle state, and the query highlighting algorithm.
// The domain layer has no dependencies on adapters or frameworks.
package domain
