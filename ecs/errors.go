package ecs

import "github.com/rotisserie/eris"

var (
	// ErrConfiguration is returned when a World or Scheduler is set up with a
	// component type that was never registered, a nil system or a duplicate
	// system name. It is fatal at startup.
	ErrConfiguration = eris.New("ecs configuration error")

	// ErrEntityNotAlive is returned when a component is added to an entity
	// that was destroyed or never created.
	ErrEntityNotAlive = eris.New("entity is not alive")

	// ErrUndeclaredAccess is the panic value when a system touches a storage
	// outside of its declared Access.
	ErrUndeclaredAccess = eris.New("undeclared storage access")

	// ErrBorrowConflict is the panic value when a storage is borrowed in a
	// way that conflicts with a borrow already held.
	ErrBorrowConflict = eris.New("conflicting storage borrow")
)

func unregistered(ct ComponentType) error {
	return eris.Wrapf(ErrConfiguration, "component type %s is not registered", ct.Name())
}
