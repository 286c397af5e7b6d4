package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ANURA4G/event-ticketing-app/config"
	"github.com/ANURA4G/event-ticketing-app/internal/entities"
	"github.com/ANURA4G/event-ticketing-app/internal/qr"
)

func testEvent() config.EventConfig {
	return config.EventConfig{
		Name:     "HACKFEST2K26",
		Tagline:  "36-Hour Hackathon",
		College:  "M. Kumarasamy College of Engineering, Karur",
		Sponsors: "IBM  •  Adroit Technologies",
		Schedule: "20 Feb 9:00 AM – 21 Feb 9:00 AM",
	}
}

func testTicket() entities.Ticket {
	return entities.Ticket{
		TicketID:    "3F2A9B1C",
		TeamCode:    "HF26K7Q2ZP",
		TeamName:    "Null Pointers",
		CollegeName: "M. Kumarasamy College of Engineering",
		LeaderEmail: "lead@example.com",
		TeamSize:    3,
		Slot:        "Slot 1",
		EventName:   "HACKFEST2K26",
		CreatedAt:   time.Date(2026, 1, 10, 9, 30, 0, 0, time.UTC),
	}
}

func TestEntryPass(t *testing.T) {
	png, err := qr.ImagePNG("gAAAAABlSampleTokenPayload")
	require.NoError(t, err)

	out, err := EntryPass(testTicket(), png, testEvent())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	require.Greater(t, len(out), 1000)
}

func TestEntryPassWithoutQR(t *testing.T) {
	out, err := EntryPass(testTicket(), nil, testEvent())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestEntryPassLongFields(t *testing.T) {
	tk := testTicket()
	tk.TeamName = "An Extremely Long Team Name That Goes On And On Well Past The Card"
	tk.CollegeName = "A College With A Very Long Official Institutional Name"
	tk.LeaderEmail = "a.very.long.address.that.keeps.going@subdomain.example-university.edu"

	out, err := EntryPass(tk, nil, testEvent())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestEllipsize(t *testing.T) {
	require.Equal(t, "short", ellipsize("short", 35))
	require.Equal(t, "aaaaa...", ellipsize("aaaaaaaa", 5))
	require.Equal(t, "héllo...", ellipsize("héllo wörld", 5))
}
