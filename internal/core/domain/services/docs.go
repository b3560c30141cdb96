// Package services provides domain services that hold state or behaviour
// spanning more than one order.
//
// The package includes:
//   - CurrentOrder: the owned holder of the order being assembled at the
//     counter, passed explicitly to whoever needs it instead of being
//     reached through a global accessor
package services
