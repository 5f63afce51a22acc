// Package ecs provides ECS adapters for showcase scenes and carousels.
//
// [NewDonburiStore] bridges scene interaction events (pointer, click, drag,
// key) into a [Donburi] world as typed events. Subscribe to
// [InteractionEventType] in your ECS systems to receive them.
//
// [PublishRenders] forwards every carousel render to [NavigationEventType],
// so systems can react to slide changes without holding the carousel.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//	h := ecs.PublishRenders(world, carousel)
//	defer h.Remove()
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
