// internal/app/commands/harness_test.go
package commands

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/account"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/audit"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/policy"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/domain/role"
	"github.com/abhisheksingh01-ai/Nexware-CRM/internal/infra/memory"
)

// testEnv wires the command layer over the in-memory store.
type testEnv struct {
	store    *memory.Store
	recorder *Recorder
}

func newTestEnv() *testEnv {
	store := memory.NewStore()
	return &testEnv{
		store:    store,
		recorder: NewRecorder(store, nil),
	}
}

// seedAccount plants an account directly in the store, bypassing the
// create command, and returns it with a matching caller identity.
func (env *testEnv) seedAccount(t *testing.T, r role.Role, status account.Status, teamHeadID *uuid.UUID) (*account.Account, policy.Caller) {
	t.Helper()
	a, err := account.New(account.NewParams{
		Name:       "Seed " + string(r),
		Email:      uuid.NewString() + "@test.local",
		Role:       r,
		Status:     status,
		TeamHeadID: teamHeadID,
	}, time.Now().UTC())
	require.NoError(t, err)
	a.PasswordHash = "$argon2id$seeded"
	require.NoError(t, env.store.CreateAccount(context.Background(), a))
	return a, policy.Caller{ID: a.ID, Role: a.Role, Status: a.Status}
}

// lastEvent returns the most recent audit event, failing when none exist.
func (env *testEnv) lastEvent(t *testing.T) *audit.Event {
	t.Helper()
	events := env.store.Events()
	require.NotEmpty(t, events)
	return events[len(events)-1]
}

// hasEvent reports whether any recorded event carries the action.
func (env *testEnv) hasEvent(action string) bool {
	for _, e := range env.store.Events() {
		if e.Action == action {
			return true
		}
	}
	return false
}

// fakeHasher avoids argon2 cost in command tests.
type fakeHasher struct{}

func (fakeHasher) HashPassword(_ context.Context, password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) VerifyPassword(_ context.Context, password, encodedHash string) (bool, error) {
	return encodedHash == "hashed:"+password, nil
}

// fakeAssetStore records released asset ids.
type fakeAssetStore struct {
	released []string
}

func (f *fakeAssetStore) Release(_ context.Context, publicID string) error {
	f.released = append(f.released, publicID)
	return nil
}
