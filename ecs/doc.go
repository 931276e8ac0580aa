// Package ecs provides ECS adapters for thicket widget events.
//
// The primary adapter is [NewDonburiStore], which bridges widget events
// (clicks, toggles, slider changes, open/close, page changes) into a
// [Donburi] world as typed events, and keeps one entity per widget holding
// its latest reported state. Subscribe to [WidgetEventType] in your ECS
// systems to receive them.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	overlay.SetEventSink(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
