package ecs

import "github.com/rotisserie/eris"

// Programmer errors. The World reports these by panicking with a value that
// wraps one of the sentinels below, so a recovered value can be classified
// with eris.Is.
var (
	ErrCapacityExhausted      = eris.New("entity capacity exhausted")
	ErrComponentNotRegistered = eris.New("component type not registered")
	ErrComponentNotFound      = eris.New("component not found on entity")
	ErrShapeMismatch          = eris.New("entity does not satisfy view shape")
	ErrBorrowConflict         = eris.New("conflicting borrows of the same component type")
	ErrInvalidShape           = eris.New("invalid view shape")
	ErrInvalidComponent       = eris.New("invalid component type")
	ErrEntityNotAlive         = eris.New("entity is not alive")
	ErrStructuralMutation     = eris.New("structural mutation during iteration")
	ErrBuilderFinished        = eris.New("entity builder already finished")
	ErrQueryNotExecuted       = eris.New("query iterated before Execute")
)

func fatalf(sentinel error, format string, args ...any) {
	panic(eris.Wrapf(sentinel, format, args...))
}
