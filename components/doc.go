// Package components holds the value types the engine attaches to entities:
// shapes, transforms, colors and materials. The ecs package stores them as
// opaque values; only the renderer interprets them.
package components
