package permissions_test

import (
	"net/http"
	"stayadmin/permissions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_LoadsEmbeddedEndpoints(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	assert.False(t, data.Skip)
	assert.NotEmpty(t, data.Endpoints)
}

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	t.Run("matches route pattern", func(t *testing.T) {
		perm := data.FindPermissions("/v1/bookings/{id}/cancel", http.MethodPost)

		assert.ElementsMatch(t, []string{"superadmin", "admin"}, perm.Permissions)
	})

	t.Run("completion is admin only", func(t *testing.T) {
		perm := data.FindPermissions("/v1/bookings/{id}/complete", http.MethodPost)

		assert.ElementsMatch(t, []string{"superadmin", "admin"}, perm.Permissions)
	})

	t.Run("ignores trailing slash", func(t *testing.T) {
		perm := data.FindPermissions("/v1/bookings", http.MethodGet)

		assert.NotEmpty(t, perm.Permissions)
	})

	t.Run("unknown route", func(t *testing.T) {
		perm := data.FindPermissions("/v1/unknown", http.MethodGet)

		assert.Empty(t, perm.Permissions)
		assert.False(t, perm.Skip)
	})

	t.Run("method must match", func(t *testing.T) {
		perm := data.FindPermissions("/v1/bookings/{id}/cancel", http.MethodGet)

		assert.Empty(t, perm.Path)
	})
}
