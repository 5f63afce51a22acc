package ecs

import (
	"github.com/mythikastudio/showcase"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for scene interaction events.
// Subscribe to this in your ECS systems to receive pointer, drag and key events.
var InteractionEventType = events.NewEventType[showcase.InteractionEvent]()

// NavigationEventType carries carousel renders: the initial bind, every
// navigation and every resize reconciliation.
var NavigationEventType = events.NewEventType[showcase.RenderEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) showcase.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event showcase.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

// PublishRenders subscribes to c's renders and publishes each one to
// NavigationEventType on world. Remove the handle to stop publishing.
func PublishRenders(world donburi.World, c *showcase.Carousel) showcase.CallbackHandle {
	return c.OnRender(func(ev showcase.RenderEvent) {
		NavigationEventType.Publish(world, ev)
	})
}
