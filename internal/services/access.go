package services

import (
	"fmt"

	"event-admin-backend/internal/models"
)

// Action enumerates the role-gated operations of the admin API.
type Action int

const (
	ActionListAdmins Action = iota
	ActionCreateAdmin
	ActionDeleteAdmin
	ActionCreateEvent
	ActionDeleteEvent
	ActionToggleEvent
	ActionAssignAdmins
	ActionDeleteVenue
	ActionManageVenueChildren
	ActionDeleteCategory
)

// superOnly lists the actions reserved to super admins. Everything else is
// open to any authenticated admin (subject to event scoping).
var superOnly = map[Action]bool{
	ActionListAdmins:          true,
	ActionCreateAdmin:         true,
	ActionDeleteAdmin:         true,
	ActionCreateEvent:         true,
	ActionDeleteEvent:         true,
	ActionToggleEvent:         true,
	ActionAssignAdmins:        true,
	ActionDeleteVenue:         true,
	ActionManageVenueChildren: true,
	ActionDeleteCategory:      true,
}

// Can is the pure role-level decision: it never touches storage.
func Can(admin *models.Admin, action Action) bool {
	if admin == nil {
		return false
	}
	if superOnly[action] {
		return admin.IsSuperAdmin()
	}
	return true
}

// RequireAction short-circuits with ErrForbidden when the role is insufficient.
func RequireAction(admin *models.Admin, action Action) error {
	if admin == nil {
		return ErrUnauthenticated
	}
	if !Can(admin, action) {
		return fmt.Errorf("%w: super admin required", ErrForbidden)
	}
	return nil
}

// AuthorizeEvent gates event-scoped access for an already-loaded event.
// Super admins always pass. For event admins a disabled event is masked as
// not-found rather than forbidden, and an assignment row is required.
func AuthorizeEvent(admin *models.Admin, event *models.Event, assigned bool) error {
	if admin == nil {
		return ErrUnauthenticated
	}
	if admin.IsSuperAdmin() {
		return nil
	}
	if !event.IsEnabled {
		return fmt.Errorf("%w: event not found", ErrNotFound)
	}
	if !assigned {
		return fmt.Errorf("%w: no access to this event", ErrForbidden)
	}
	return nil
}
