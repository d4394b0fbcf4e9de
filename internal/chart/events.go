package chart

import "chartd/internal/render"

// Registration is one event subscription made through On. ID is the
// identity of the wrapped callback handed to the rendering library.
type Registration struct {
	EventType   string
	ID          render.ListenerID
	Description string
}

// EventFilter selects registrations. Zero fields match anything.
type EventFilter struct {
	EventType   string
	ID          render.ListenerID
	Description string
}

func (f EventFilter) match(r Registration) bool {
	return (f.EventType == "" || r.EventType == f.EventType) &&
		(f.ID == 0 || r.ID == f.ID) &&
		(f.Description == "" || r.Description == f.Description)
}

// Registry records subscriptions in registration order. Duplicates are kept
// as separate entries.
type Registry struct {
	entries []Registration
}

func (r *Registry) add(reg Registration) { r.entries = append(r.entries, reg) }

// remove drops every entry matching both eventType and id.
func (r *Registry) remove(eventType string, id render.ListenerID) int {
	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.EventType == eventType && e.ID == id {
			continue
		}
		kept = append(kept, e)
	}
	n := len(r.entries) - len(kept)
	r.entries = kept
	return n
}

func (r *Registry) removeType(eventType string) int {
	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.EventType != eventType {
			kept = append(kept, e)
		}
	}
	n := len(r.entries) - len(kept)
	r.entries = kept
	return n
}

// Find returns the first entry matching f.
func (r *Registry) Find(f EventFilter) (Registration, bool) {
	for _, e := range r.entries {
		if f.match(e) {
			return e, true
		}
	}
	return Registration{}, false
}

// List returns a copy of all entries.
func (r *Registry) List() []Registration { return append([]Registration(nil), r.entries...) }

// Len returns the number of entries.
func (r *Registry) Len() int { return len(r.entries) }

func (r *Registry) clear() { r.entries = nil }

// On subscribes cb to eventType (click, dblclick, mouseover, mouseout,
// legendselectchanged, datazoom, ...) and records the subscription. The
// returned id is what Off and FindEventList use to address it.
func (c *Chart) On(eventType string, cb render.Handler, description string) (render.ListenerID, error) {
	if err := c.live("on"); err != nil {
		return 0, err
	}
	wrapped := func(p render.Params) { cb(p) }
	id := c.handle.On(eventType, wrapped)
	c.events.add(Registration{EventType: eventType, ID: id, Description: description})
	return id, nil
}

// Off unsubscribes the listener and removes the registry entries whose
// event type and id both match. It returns how many entries were removed.
func (c *Chart) Off(eventType string, id render.ListenerID) (int, error) {
	if err := c.live("off"); err != nil {
		return 0, err
	}
	c.handle.Off(eventType, id)
	return c.events.remove(eventType, id), nil
}

// OffAll unsubscribes every listener of eventType.
func (c *Chart) OffAll(eventType string) (int, error) {
	if err := c.live("off_all"); err != nil {
		return 0, err
	}
	c.handle.OffAll(eventType)
	return c.events.removeType(eventType), nil
}

// FindEventList returns the first registration matching f.
func (c *Chart) FindEventList(f EventFilter) (Registration, bool) {
	if c == nil {
		return Registration{}, false
	}
	return c.events.Find(f)
}

// EventList returns a copy of the registrations.
func (c *Chart) EventList() []Registration {
	if c == nil {
		return nil
	}
	return c.events.List()
}
