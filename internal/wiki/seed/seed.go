// Package seed populates the knowledge collection with starter content the
// first time the service runs against an empty database.
package seed

import (
	"context"
	"fmt"
	"time"

	"Boettcher_Wiki/internal/models"
	"Boettcher_Wiki/internal/wiki/store"

	"github.com/google/uuid"
)

// SampleEntries returns the starter content inserted on first startup.
func SampleEntries() []*models.KnowledgeEntry {
	return []*models.KnowledgeEntry{
		{
			Question: "How do I request a new laptop or replacement hardware?",
			Answer:   "Open a ticket in the IT service portal under 'Hardware'. Standard replacements are approved by your team lead; anything non-standard additionally needs IT operations sign-off.",
			Category: "IT",
			Tags:     []string{"hardware", "laptop", "ticket"},
		},
		{
			Question: "How many vacation days do I have and where do I request them?",
			Answer:   "The standard allowance is 30 days per year. Requests go through the HR self-service portal and are approved by your direct manager.",
			Category: "HR",
			Tags:     []string{"vacation", "leave", "self-service"},
		},
		{
			Question: "Where do I find the templates for customer offers?",
			Answer:   "All current offer and invoice templates live in the shared drive under Sales/Templates. Do not keep local copies, the templates are versioned centrally.",
			Category: "Sales",
			Tags:     []string{"templates", "offers", "shared drive"},
		},
		{
			Question: "What is the process for reporting a workplace accident?",
			Answer:   "Inform your supervisor immediately and fill in the accident report form within 24 hours. For anything requiring medical attention the company doctor must be notified as well.",
			Category: "Safety",
			Tags:     []string{"accident", "report", "safety"},
		},
		{
			Question: "How do I book a meeting room at the main office?",
			Answer:   "Meeting rooms are booked through the calendar system: invite the room as a participant. Rooms on the third floor include video conferencing equipment.",
			Category: "Office",
			Tags:     []string{"meeting room", "booking", "calendar"},
		},
	}
}

// Run inserts the sample entries if the knowledge collection is empty. The
// check is collection-count-equals-zero, so a partially seeded or manually
// populated collection is never touched again.
func Run(ctx context.Context, knowledge store.KnowledgeStore) (int, error) {
	count, err := knowledge.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count knowledge entries: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	entries := SampleEntries()
	for _, e := range entries {
		e.ID = uuid.NewString()
		e.CreatedAt = now
		e.UpdatedAt = now
		if err := knowledge.Create(ctx, e); err != nil {
			return 0, fmt.Errorf("insert sample entry: %w", err)
		}
	}
	return len(entries), nil
}
