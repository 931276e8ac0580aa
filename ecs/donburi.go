package ecs

import (
	"github.com/phanxgames/thicket"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// WidgetEventType is the Donburi event type for thicket widget events.
var WidgetEventType = events.NewEventType[thicket.WidgetEvent]()

// WidgetState is the last state reported by a widget.
type WidgetState struct {
	WidgetID uint32
	Title    string
	On       bool
	Value    float64
	Page     int
	Open     bool
	Frozen   bool
	Events   int // events seen so far
}

// WidgetComponent holds a WidgetState on the entity mirroring a widget.
var WidgetComponent = donburi.NewComponentType[WidgetState]()

// DonburiStore publishes widget events into a Donburi world.
type DonburiStore struct {
	world    donburi.World
	entities map[uint32]donburi.Entity
}

// NewDonburiStore creates an EventSink backed by a Donburi world.
// Events are published to WidgetEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) *DonburiStore {
	return &DonburiStore{world: world, entities: make(map[uint32]donburi.Entity)}
}

// EmitEvent implements thicket.EventSink.
func (s *DonburiStore) EmitEvent(event thicket.WidgetEvent) {
	s.mirror(event)
	WidgetEventType.Publish(s.world, event)
}

// Entity returns the entity mirroring the widget with the given ID, if any
// event from it has been seen.
func (s *DonburiStore) Entity(widgetID uint32) (donburi.Entity, bool) {
	e, ok := s.entities[widgetID]
	if ok && !s.world.Valid(e) {
		delete(s.entities, widgetID)
		return e, false
	}
	return e, ok
}

// State returns the mirrored state of a widget.
func (s *DonburiStore) State(widgetID uint32) (WidgetState, bool) {
	e, ok := s.Entity(widgetID)
	if !ok {
		return WidgetState{}, false
	}
	return *WidgetComponent.Get(s.world.Entry(e)), true
}

func (s *DonburiStore) mirror(event thicket.WidgetEvent) {
	e, ok := s.Entity(event.WidgetID)
	if !ok {
		e = s.world.Create(WidgetComponent)
		s.entities[event.WidgetID] = e
	}
	st := WidgetComponent.Get(s.world.Entry(e))
	st.WidgetID = event.WidgetID
	st.Title = event.Title
	st.Events++
	switch event.Type {
	case thicket.EventToggled:
		st.On = event.On
	case thicket.EventSliderChanged:
		st.Value = event.Value
	case thicket.EventOpened, thicket.EventClosed:
		st.Open = event.Open
	case thicket.EventFrozen:
		st.Frozen = event.Frozen
	case thicket.EventPageChanged:
		st.Page = event.Page
	}
}

var _ thicket.EventSink = (*DonburiStore)(nil)
