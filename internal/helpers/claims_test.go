package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnhancedClaimsRoles(t *testing.T) {
	organizer := &EnhancedClaims{Role: "ORGANIZER", UserID: "uid-1"}
	assert.True(t, organizer.IsOrganizer())
	assert.False(t, organizer.IsSupplier())
	assert.True(t, organizer.HasRole("ORGANIZER"))
	assert.True(t, organizer.IsOwner("uid-1"))
	assert.False(t, organizer.IsOwner("uid-2"))

	empty := &EnhancedClaims{}
	assert.Equal(t, "USER", empty.GetSafeRole())
	assert.Equal(t, "SUPPLIER", (&EnhancedClaims{Role: "SUPPLIER"}).GetSafeRole())
}
