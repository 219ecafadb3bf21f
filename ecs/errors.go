package ecs

import (
	"reflect"

	"github.com/pkg/errors"
)

var (
	// ErrUnknownEntity is returned when an id is not currently live.
	ErrUnknownEntity = errors.New("unknown entity")
	// ErrComponentNotFound is returned when a live entity lacks the requested component.
	ErrComponentNotFound = errors.New("component not found")
)

func unknownEntity(id EntityId) error {
	return errors.Wrapf(ErrUnknownEntity, "%s", id)
}

func componentNotFound(id EntityId, t reflect.Type) error {
	return errors.Wrapf(ErrComponentNotFound, "%s has no %s", id, t)
}
