// internal/domain/role/role_test.go
package role

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutranks(t *testing.T) {
	assert.True(t, Outranks(RoleAdmin, RoleSubAdmin))
	assert.True(t, Outranks(RoleSubAdmin, RoleTeamHead))
	assert.True(t, Outranks(RoleTeamHead, RoleAgent))
	assert.True(t, Outranks(RoleAdmin, RoleAgent))

	assert.False(t, Outranks(RoleAgent, RoleAdmin))
	assert.False(t, Outranks(RoleAdmin, RoleAdmin), "outranks is strict")
	assert.False(t, Outranks(Role("intern"), RoleAgent), "unknown role never outranks")
	assert.False(t, Outranks(RoleAdmin, Role("intern")))
}

func TestIsValid(t *testing.T) {
	for _, r := range All() {
		assert.True(t, IsValid(r))
	}
	assert.False(t, IsValid(Role("superadmin")))
	assert.False(t, IsValid(Role("")))
}

func TestCan(t *testing.T) {
	// Agents must never list accounts, regardless of scope.
	assert.False(t, Can(RoleAgent, EntityAccount, OpList))
	assert.True(t, Can(RoleAgent, EntityAccount, OpGet))

	// Payment and courier edits are admin/subadmin territory.
	assert.True(t, Can(RoleAdmin, EntityOrder, OpUpdatePayment))
	assert.True(t, Can(RoleSubAdmin, EntityOrder, OpUpdateCourier))
	assert.False(t, Can(RoleTeamHead, EntityOrder, OpUpdatePayment))
	assert.False(t, Can(RoleAgent, EntityOrder, OpUpdateCourier))

	// Status moves are open to every operating role.
	for _, r := range All() {
		assert.True(t, Can(r, EntityOrder, OpUpdateStatus), string(r))
	}

	// Deletion is admin-only across the board.
	for _, e := range []Entity{EntityAccount, EntityLead, EntityOrder, EntityProduct} {
		assert.True(t, Can(RoleAdmin, e, OpDelete), string(e))
		assert.False(t, Can(RoleSubAdmin, e, OpDelete), string(e))
		assert.False(t, Can(RoleTeamHead, e, OpDelete), string(e))
		assert.False(t, Can(RoleAgent, e, OpDelete), string(e))
	}

	// Catalog writes.
	assert.True(t, Can(RoleAdmin, EntityProduct, OpCreate))
	assert.False(t, Can(RoleSubAdmin, EntityProduct, OpCreate))
	assert.True(t, Can(RoleSubAdmin, EntityProduct, OpUpdate))
	assert.False(t, Can(RoleAgent, EntityProduct, OpUpdate))

	assert.False(t, Can(Role("unknown"), EntityLead, OpList))
}
