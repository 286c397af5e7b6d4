package usecase

import (
	"context"

	"github.com/ANURA4G/event-ticketing-app/internal/entities"
)

// AuthUsecaseInterface abstracts account operations for the delivery layer.
type AuthUsecaseInterface interface {
	Login(ctx context.Context, username, password string) (*entities.Session, error)
	CreateScanner(ctx context.Context, username, password, createdBy string) (*entities.User, error)
}

// TicketUsecaseInterface abstracts ticket lifecycle and artifact operations.
type TicketUsecaseInterface interface {
	IssueTicket(ctx context.Context, req entities.IssueRequest) (*entities.IssuedTicket, error)
	Ticket(ctx context.Context, ticketID string) (*entities.Ticket, error)
	TicketsOverview(ctx context.Context) ([]entities.TicketWithStatus, error)
	RemoveTicket(ctx context.Context, ticketID string) error
	ClearAllTeams(ctx context.Context) error
	MyTickets(ctx context.Context, teamCode string) ([]entities.Ticket, error)
	TicketQR(ctx context.Context, ticketID string) ([]byte, error)
	TicketPDF(ctx context.Context, ticketID string) ([]byte, error)
	MyTicketQR(ctx context.Context, teamCode, ticketID string) ([]byte, error)
	MyTicketPDF(ctx context.Context, teamCode, ticketID string) ([]byte, error)
}

// ScanUsecaseInterface abstracts gate verification operations.
type ScanUsecaseInterface interface {
	VerifyScan(ctx context.Context, qrData, scannedBy string) (entities.ScanResult, error)
	ManualCheckIn(ctx context.Context, code, scannedBy string) (entities.ScanResult, error)
	TicketStatus(ctx context.Context, ticketID string) (entities.ScanResult, error)
}

// StatsUsecaseInterface abstracts reporting operations.
type StatsUsecaseInterface interface {
	Overview(ctx context.Context) (entities.Stats, error)
	AttendanceLog(ctx context.Context) ([]entities.AttendanceRecord, entities.Stats, error)
	Members(ctx context.Context) ([]entities.User, error)
}
