package jsonfile

import (
	"context"

	"github.com/ANURA4G/event-ticketing-app/internal/entities"
)

// Stats counts tickets, check-ins and accounts across all documents.
func (s *Store) Stats(_ context.Context) (entities.Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		users      usersDoc
		tickets    ticketsDoc
		attendance attendanceDoc
	)
	if err := s.readDoc(usersFile, &users); err != nil {
		return entities.Stats{}, err
	}
	if err := s.readDoc(ticketsFile, &tickets); err != nil {
		return entities.Stats{}, err
	}
	if err := s.readDoc(attendanceFile, &attendance); err != nil {
		return entities.Stats{}, err
	}

	checkedIn := 0
	for _, r := range attendance.Records {
		if r.Status == string(entities.AttendancePresent) {
			checkedIn++
		}
	}

	return entities.Stats{
		TotalTickets: len(tickets.Tickets),
		CheckedIn:    checkedIn,
		Pending:      len(tickets.Tickets) - checkedIn,
		TotalUsers:   len(users.Users),
	}, nil
}
