package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ANURA4G/event-ticketing-app/config"
	"github.com/ANURA4G/event-ticketing-app/internal/entities"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testFernetKey = "ZmVybmV0LWtleS1mb3ItZXZlbnQtdGlja2V0aW5nPT0="

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	return &config.Config{
		Store:    config.StoreConfig{Backend: "jsonfile", Dir: t.TempDir()},
		Security: config.SecurityConfig{FernetKey: testFernetKey},
	}
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}

func setupStore(t *testing.T) (*Store, *config.Config) {
	t.Helper()

	ctx := context.Background()
	cfg := testConfig(t)
	store := New(ctx, testLogger(t), cfg)
	require.NoError(t, store.OnStart(ctx))
	t.Cleanup(func() { _ = store.OnStop(ctx) })
	return store, cfg
}

func sampleTicket(id, code string) entities.Ticket {
	return entities.Ticket{
		TicketID:    id,
		TeamCode:    code,
		TeamName:    "Null Pointers",
		CollegeName: "M. Kumarasamy College of Engineering",
		LeaderEmail: "lead@example.com",
		TeamSize:    3,
		Slot:        "Slot 1",
		EventName:   "HACKFEST2K26",
		QRPayload:   "gAAAAABlOpaqueToken",
		CreatedAt:   time.Date(2026, 1, 10, 9, 30, 0, 0, time.UTC),
		CreatedBy:   "adminmkce",
	}
}

func TestStoreIntegration(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)

	member := entities.User{
		ID:       "HF26K7Q2ZP",
		Username: "hf26k7q2zp",
		Role:     entities.RoleMember,
		TeamName: "Null Pointers",
	}
	_, err := store.CreateUser(ctx, member)
	require.NoError(t, err)

	_, err = store.CreateTicket(ctx, sampleTicket("3F2A9B1C", "HF26K7Q2ZP"))
	require.NoError(t, err)

	got, err := store.GetTicket(ctx, "3F2A9B1C")
	require.NoError(t, err)
	require.Equal(t, "Null Pointers", got.TeamName)
	require.Equal(t, "gAAAAABlOpaqueToken", got.QRPayload)

	byCode, err := store.GetTicketByTeamCode(ctx, "HF26K7Q2ZP")
	require.NoError(t, err)
	require.Equal(t, "3F2A9B1C", byCode.TicketID)

	list, err := store.ListTickets(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Nil(t, list[0].CheckIn)

	rec, err := store.MarkAttendance(ctx, entities.AttendanceRecord{
		TicketID:  "3F2A9B1C",
		TeamCode:  "HF26K7Q2ZP",
		TeamName:  "Null Pointers",
		Status:    entities.AttendancePresent,
		ScannedAt: time.Now(),
		ScannedBy: "scanner1",
	})
	require.NoError(t, err)
	require.Equal(t, "scanner1", rec.ScannedBy)

	list, err = store.ListTickets(ctx)
	require.NoError(t, err)
	require.NotNil(t, list[0].CheckIn)
	require.Equal(t, entities.AttendancePresent, list[0].CheckIn.Status)

	_, err = store.MarkAttendance(ctx, entities.AttendanceRecord{
		TicketID: "3F2A9B1C",
		Status:   entities.AttendancePresent,
	})
	require.ErrorIs(t, err, entities.ErrTicketUsed)

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, entities.Stats{TotalTickets: 1, CheckedIn: 1, Pending: 0, TotalUsers: 1}, stats)

	require.NoError(t, store.DeleteTicket(ctx, "3F2A9B1C"))

	_, err = store.GetTicket(ctx, "3F2A9B1C")
	require.ErrorIs(t, err, entities.ErrTicketNotFound)
	_, err = store.GetUserByUsername(ctx, "hf26k7q2zp")
	require.ErrorIs(t, err, entities.ErrUserNotFound)
	gone, err := store.GetAttendance(ctx, "3F2A9B1C")
	require.NoError(t, err)
	require.Nil(t, gone)

	stats, err = store.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, entities.Stats{}, stats)
}

func TestStoreEncryptedAtRest(t *testing.T) {
	ctx := context.Background()
	store, cfg := setupStore(t)

	_, err := store.CreateTicket(ctx, sampleTicket("3F2A9B1C", "HF26K7Q2ZP"))
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(cfg.Store.Dir, ticketsFile))
	require.NoError(t, err)
	require.NotContains(t, string(raw), "Null Pointers")
	require.NotContains(t, string(raw), "3F2A9B1C")
	require.False(t, json.Valid(raw))
}

func TestStoreEmptyDirectory(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)

	tickets, err := store.ListTickets(ctx)
	require.NoError(t, err)
	require.Empty(t, tickets)

	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	require.Empty(t, users)

	records, err := store.ListAttendance(ctx)
	require.NoError(t, err)
	require.Empty(t, records)

	stats, err := store.Stats(ctx)
	require.NoError(t, err)
	require.Equal(t, entities.Stats{}, stats)
}

func TestStoreReload(t *testing.T) {
	ctx := context.Background()
	store, cfg := setupStore(t)

	_, err := store.CreateTicket(ctx, sampleTicket("3F2A9B1C", "HF26K7Q2ZP"))
	require.NoError(t, err)

	reopened := New(ctx, testLogger(t), cfg)
	require.NoError(t, reopened.OnStart(ctx))

	got, err := reopened.GetTicket(ctx, "3F2A9B1C")
	require.NoError(t, err)
	require.Equal(t, "HF26K7Q2ZP", got.TeamCode)
}

func TestStoreCorruptFileFailsStart(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Store.Dir, ticketsFile), []byte("not fernet"), 0o600))

	store := New(ctx, testLogger(t), cfg)
	require.Error(t, store.OnStart(ctx))
}

func TestStoreWrongKeyFailsStart(t *testing.T) {
	ctx := context.Background()
	store, cfg := setupStore(t)

	_, err := store.CreateTicket(ctx, sampleTicket("3F2A9B1C", "HF26K7Q2ZP"))
	require.NoError(t, err)

	cfg.Security.FernetKey = "AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA="
	reopened := New(ctx, testLogger(t), cfg)
	require.Error(t, reopened.OnStart(ctx))
}

func TestStoreBadKeyFailsStart(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	cfg.Security.FernetKey = "not-a-key"

	store := New(ctx, testLogger(t), cfg)
	require.Error(t, store.OnStart(ctx))
}

func TestStoreDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)

	_, err := store.CreateUser(ctx, entities.User{ID: "u1", Username: "scanner1", Role: entities.RoleScanner})
	require.NoError(t, err)
	_, err = store.CreateUser(ctx, entities.User{ID: "u2", Username: "scanner1", Role: entities.RoleScanner})
	require.ErrorIs(t, err, entities.ErrUserExists)
}

func TestStoreClearTicketsKeepsUsers(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)

	_, err := store.CreateUser(ctx, entities.User{ID: "HF26K7Q2ZP", Username: "hf26k7q2zp", Role: entities.RoleMember})
	require.NoError(t, err)
	_, err = store.CreateTicket(ctx, sampleTicket("3F2A9B1C", "HF26K7Q2ZP"))
	require.NoError(t, err)
	_, err = store.MarkAttendance(ctx, entities.AttendanceRecord{
		TicketID: "3F2A9B1C",
		Status:   entities.AttendancePresent,
	})
	require.NoError(t, err)

	require.NoError(t, store.ClearTickets(ctx))

	tickets, err := store.ListTickets(ctx)
	require.NoError(t, err)
	require.Empty(t, tickets)

	records, err := store.ListAttendance(ctx)
	require.NoError(t, err)
	require.Empty(t, records)

	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
}

func TestStoreDeleteUnknownTicket(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)

	err := store.DeleteTicket(ctx, "FFFFFFFF")
	require.ErrorIs(t, err, entities.ErrTicketNotFound)
}

func TestStoreMarkAttendanceUnknownTicket(t *testing.T) {
	ctx := context.Background()
	store, _ := setupStore(t)

	_, err := store.MarkAttendance(ctx, entities.AttendanceRecord{
		TicketID: "FFFFFFFF",
		Status:   entities.AttendancePresent,
	})
	require.ErrorIs(t, err, entities.ErrTicketNotFound)
}
