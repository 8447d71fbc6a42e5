// Package guard implements the constructor guard pattern used by commands
// and value objects to detect zero-value instances that bypassed their
// designated constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed as the validation error, so validation always fails with a
// meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes properly constructed objects from zero
// values. Embed it in a struct and initialize it with NewConstructorGuard
// inside the constructor; Validate then fails for any instance created by
// direct struct initialization.
//
// Example:
//
//	type TrackShipmentCommand struct {
//	    billNo int64
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewTrackShipmentCommand(billNo int64) TrackShipmentCommand {
//	    return TrackShipmentCommand{billNo: billNo, guard: guard.NewConstructorGuard()}
//	}
//
//	func (c TrackShipmentCommand) Validate() error {
//	    return c.guard.Validate(ErrTrackShipmentCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for properly constructed objects. For zero-value
// instances it returns validationError, or ErrDefaultConstructorGuard
// when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
