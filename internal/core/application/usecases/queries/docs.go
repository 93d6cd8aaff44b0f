// Package queries contains read-only operations. Query handlers read through
// the ports repositories and return flat response structs for the adapters.
package queries
