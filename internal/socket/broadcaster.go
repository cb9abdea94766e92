package socket

// Event types pushed to admin dashboards.
const (
	EventProjectCreated       = "project.created"
	EventProjectStatusChanged = "project.status_changed"
)

// Broadcaster is the narrow surface services use to publish lifecycle
// events without knowing about connections.
type Broadcaster struct {
	hub *Hub
}

func NewBroadcaster(hub *Hub) *Broadcaster {
	return &Broadcaster{hub: hub}
}

func (b *Broadcaster) ProjectCreated(projectID, slug, name string) {
	b.hub.Broadcast(Event{
		Type: EventProjectCreated,
		Payload: map[string]string{
			"projectId": projectID,
			"slug":      slug,
			"name":      name,
		},
	})
}

func (b *Broadcaster) ProjectStatusChanged(projectID, slug, status string) {
	b.hub.Broadcast(Event{
		Type: EventProjectStatusChanged,
		Payload: map[string]string{
			"projectId": projectID,
			"slug":      slug,
			"status":    status,
		},
	})
}
