package ecs

import "go.uber.org/multierr"

// Commands buffers structural changes so they can be applied to an
// EntityManager at a known point, typically the end of a frame.
type Commands struct {
	creates []createCommand
	removes []EntityId
	adds    []addComponentCommand
	defers  []func()
}

// NewCommands creates an empty command buffer.
func NewCommands() *Commands {
	return &Commands{}
}

type createCommand struct {
	bundle  []Component
	created func(EntityId)
}

type addComponentCommand struct {
	entity    EntityId
	component Component
}

// Create queues an entity creation. created, when non-nil, receives the new id
// during Flush.
func (c *Commands) Create(created func(EntityId), bundle ...Component) {
	c.creates = append(c.creates, createCommand{bundle: bundle, created: created})
}

// Remove queues an entity removal.
func (c *Commands) Remove(entity EntityId) {
	c.removes = append(c.removes, entity)
}

// Add queues attaching a component built with With.
func (c *Commands) Add(entity EntityId, component Component) {
	c.adds = append(c.adds, addComponentCommand{entity: entity, component: component})
}

// Defer queues a function to run after every other command.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued commands.
func (c *Commands) Len() int {
	return len(c.creates) + len(c.removes) + len(c.adds) + len(c.defers)
}

// Flush applies removals, then component additions, then creations, then
// deferred functions, and resets the buffer. Additions for entities removed
// in the same flush are dropped. Every rejected command contributes to the
// returned error.
func (c *Commands) Flush(m *EntityManager) error {
	var err error
	removed := make(map[EntityId]bool, len(c.removes))

	for _, id := range c.removes {
		if removeErr := m.RemoveEntity(id); removeErr != nil {
			err = multierr.Append(err, removeErr)
			continue
		}
		removed[id] = true
	}

	for _, cmd := range c.adds {
		if removed[cmd.entity] {
			continue
		}
		if !m.EntityExists(cmd.entity) {
			err = multierr.Append(err, unknownEntity(cmd.entity))
			continue
		}
		cmd.component.attach(m.directory, cmd.entity)
	}

	for _, cmd := range c.creates {
		id := m.CreateEntity(cmd.bundle...)
		if cmd.created != nil {
			cmd.created(id)
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.creates = c.creates[:0]
	c.removes = c.removes[:0]
	c.adds = c.adds[:0]
	c.defers = c.defers[:0]
	return err
}
