// Package queries contains read-only operations over the order desk and order
// history. Queries never change state; their handlers return flat response
// structs ready for rendering by adapters.
package queries
