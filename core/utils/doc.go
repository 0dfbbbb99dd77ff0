// Package utils provides common utility functions for the inventory manager.
// It includes helpers that don't fit into domain-specific packages, such as
// file checksums used to correlate import runs.
package utils
