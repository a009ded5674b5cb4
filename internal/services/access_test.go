package services

import (
	"errors"
	"testing"

	"event-admin-backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func superAdmin() *models.Admin {
	return &models.Admin{ID: uuid.New(), Email: "root@example.com", Role: models.RoleSuperAdmin}
}

func eventAdmin() *models.Admin {
	return &models.Admin{ID: uuid.New(), Email: "staff@example.com", Role: models.RoleEventAdmin}
}

func TestCan(t *testing.T) {
	super := superAdmin()
	staff := eventAdmin()

	assert.False(t, Can(nil, ActionListAdmins))

	for _, action := range []Action{
		ActionListAdmins, ActionCreateAdmin, ActionDeleteAdmin,
		ActionCreateEvent, ActionDeleteEvent, ActionToggleEvent,
		ActionAssignAdmins, ActionDeleteVenue, ActionManageVenueChildren,
		ActionDeleteCategory,
	} {
		assert.True(t, Can(super, action))
		assert.False(t, Can(staff, action))
	}
}

func TestRequireAction(t *testing.T) {
	assert.ErrorIs(t, RequireAction(nil, ActionCreateEvent), ErrUnauthenticated)
	assert.ErrorIs(t, RequireAction(eventAdmin(), ActionCreateEvent), ErrForbidden)
	assert.NoError(t, RequireAction(superAdmin(), ActionCreateEvent))
}

func TestAuthorizeEvent(t *testing.T) {
	enabled := &models.Event{ID: uuid.New(), IsEnabled: true}
	disabled := &models.Event{ID: uuid.New(), IsEnabled: false}

	t.Run("nil admin is unauthenticated", func(t *testing.T) {
		assert.ErrorIs(t, AuthorizeEvent(nil, enabled, false), ErrUnauthenticated)
	})

	t.Run("super admin passes even for disabled events", func(t *testing.T) {
		assert.NoError(t, AuthorizeEvent(superAdmin(), disabled, false))
	})

	t.Run("disabled event is masked as not found", func(t *testing.T) {
		err := AuthorizeEvent(eventAdmin(), disabled, true)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.False(t, errors.Is(err, ErrForbidden))
	})

	t.Run("unassigned event admin is forbidden", func(t *testing.T) {
		assert.ErrorIs(t, AuthorizeEvent(eventAdmin(), enabled, false), ErrForbidden)
	})

	t.Run("assigned event admin passes", func(t *testing.T) {
		assert.NoError(t, AuthorizeEvent(eventAdmin(), enabled, true))
	})
}
