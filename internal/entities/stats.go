// Package entities contains core business entities.
package entities

// Stats aggregates dashboard counters. Pending is always
// TotalTickets - CheckedIn.
type Stats struct {
	TotalTickets int
	CheckedIn    int
	Pending      int
	TotalUsers   int
}
