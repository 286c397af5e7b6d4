// Package domain contains application services orchestrating domain logic by statistics.
package domain

import (
	"context"

	"github.com/ANURA4G/event-ticketing-app/internal/entities"
)

// Overview returns the dashboard counters.
func (u *Usecase) Overview(ctx context.Context) (entities.Stats, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()
	return u.repo.Stats(ctx)
}

// AttendanceLog returns every check-in record alongside the counters.
func (u *Usecase) AttendanceLog(ctx context.Context) ([]entities.AttendanceRecord, entities.Stats, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	records, err := u.repo.ListAttendance(ctx)
	if err != nil {
		return nil, entities.Stats{}, err
	}
	stats, err := u.repo.Stats(ctx)
	if err != nil {
		return nil, entities.Stats{}, err
	}
	return records, stats, nil
}

// Members lists the team accounts created by ticket issuance. Admin and
// scanner accounts are filtered out.
func (u *Usecase) Members(ctx context.Context) ([]entities.User, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	users, err := u.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	members := make([]entities.User, 0, len(users))
	for _, usr := range users {
		if usr.Role == entities.RoleMember {
			members = append(members, usr)
		}
	}
	return members, nil
}
