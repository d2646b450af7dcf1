package ecs

import "reflect"

// ComponentID is a unique identifier for component types registered in a World
type ComponentID uint

// ComponentType identifies a component type independently of any World.
// Systems use it to declare their access before a World resolves it.
type ComponentType struct {
	t reflect.Type
}

// TypeOf returns the ComponentType of T
func TypeOf[T any]() ComponentType {
	return ComponentType{t: reflect.TypeFor[T]()}
}

func typeOfValue(v any) ComponentType {
	return ComponentType{t: reflect.TypeOf(v)}
}

// Name returns the Go type name of the component
func (c ComponentType) Name() string {
	if c.t == nil {
		return "<nil>"
	}
	return c.t.String()
}

// ComponentInfo describes a registered component type
type ComponentInfo struct {
	ID   ComponentID
	Name string
	Len  int
}
