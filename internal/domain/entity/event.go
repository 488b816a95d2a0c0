package entity

import "time"

// EventKind tipo de evento de analítica; cada uno vive en su propia colección.
type EventKind string

const (
	EventView   EventKind = "view"
	EventAction EventKind = "action"
	EventGoal   EventKind = "goal"
)

// Collection nombre de la colección donde se guarda el tipo de evento.
func (k EventKind) Collection() string {
	return string(k) + "s"
}

// Event evento de analítica (append-only, inmutable una vez escrito).
// Action solo aplica a EventAction y Goal solo a EventGoal.
type Event struct {
	ID        string
	Kind      EventKind
	Source    string
	URL       string
	Visitor   string
	CreatedAt time.Time
	Meta      map[string]any
	Action    string
	Goal      string
}
