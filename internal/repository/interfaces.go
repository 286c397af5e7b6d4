// Package repository contains repository interfaces for persistence layers.
package repository

import (
	"context"

	"github.com/ANURA4G/event-ticketing-app/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// UserInterface exposes account operations.
type UserInterface interface {
	CreateUser(ctx context.Context, user entities.User) (*entities.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
}

// TicketInterface exposes ticket operations. DeleteTicket cascades: the
// ticket's member account and attendance record go with it. ClearTickets
// wipes tickets and attendance only; accounts are left alone.
type TicketInterface interface {
	CreateTicket(ctx context.Context, ticket entities.Ticket) (*entities.Ticket, error)
	GetTicket(ctx context.Context, ticketID string) (*entities.Ticket, error)
	GetTicketByTeamCode(ctx context.Context, teamCode string) (*entities.Ticket, error)
	ListTickets(ctx context.Context) ([]entities.TicketWithStatus, error)
	ListTicketsByTeamCode(ctx context.Context, teamCode string) ([]entities.Ticket, error)
	DeleteTicket(ctx context.Context, ticketID string) error
	ClearTickets(ctx context.Context) error
}

// AttendanceInterface exposes check-in operations. GetAttendance returns
// (nil, nil) when a ticket has no record yet; absence is the normal state.
type AttendanceInterface interface {
	MarkAttendance(ctx context.Context, record entities.AttendanceRecord) (*entities.AttendanceRecord, error)
	GetAttendance(ctx context.Context, ticketID string) (*entities.AttendanceRecord, error)
	ListAttendance(ctx context.Context) ([]entities.AttendanceRecord, error)
}

// StatsInterface exposes aggregated counters.
type StatsInterface interface {
	Stats(ctx context.Context) (entities.Stats, error)
}
