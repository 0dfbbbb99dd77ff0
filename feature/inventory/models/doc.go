// Package models holds the plain data types of the inventory feature.
//
// Product carries no persistence behaviour; the store enforces its invariants
// (unique name, non-negative quantity and price) at its boundary.
package models
