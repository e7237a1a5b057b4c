package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	NominaCreatedEventType  = "nomina.created"
	NominaUpdatedEventType  = "nomina.updated"
	NominaDeletedEventType  = "nomina.deleted"
	WorkspaceClosedEventType = "workspace.closed"
)

// NewNominaCreatedEvent is published after a payroll run is persisted with
// its recomputed totals.
func NewNominaCreatedEvent(nominaID, empleadoID, periodo string, netoAPagar int64) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      NominaCreatedEventType,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"nomina_id":    nominaID,
			"empleado_id":  empleadoID,
			"periodo":      periodo,
			"neto_a_pagar": netoAPagar,
		},
	}
}

func NewNominaUpdatedEvent(nominaID, empleadoID, periodo string, netoAPagar int64) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      NominaUpdatedEventType,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"nomina_id":    nominaID,
			"empleado_id":  empleadoID,
			"periodo":      periodo,
			"neto_a_pagar": netoAPagar,
		},
	}
}

func NewNominaDeletedEvent(nominaID, periodo string) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      NominaDeletedEventType,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"nomina_id": nominaID,
			"periodo":   periodo,
		},
	}
}

func NewWorkspaceClosedEvent(workspaceID, periodo string) BaseEvent {
	return BaseEvent{
		ID:        uuid.NewString(),
		Type:      WorkspaceClosedEventType,
		Timestamp: time.Now(),
		Data: map[string]interface{}{
			"workspace_id": workspaceID,
			"periodo":      periodo,
		},
	}
}
