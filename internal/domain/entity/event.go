package entity

import "slices"

type Event struct {
	ID           ID       `json:"id,omitempty"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Date         Date     `json:"date"`
	Location     string   `json:"location"`
	Image        string   `json:"image,omitempty"`
	Participants []string `json:"participants"`
	CreatedBy    string   `json:"createdBy,omitempty"`
	CreatedAt    Date     `json:"createdAt,omitempty"`
}

func (e Event) EntityID() ID { return e.ID }

// HasParticipant reports whether email is registered for the event.
func (e Event) HasParticipant(email string) bool {
	return email != "" && slices.Contains(e.Participants, email)
}

// WithParticipant returns the participant list with email appended once.
func WithParticipant(participants []string, email string) []string {
	out := make([]string, 0, len(participants)+1)
	seen := make(map[string]struct{}, len(participants)+1)
	for _, p := range participants {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	if _, ok := seen[email]; !ok {
		out = append(out, email)
	}
	return out
}

// WithoutParticipant returns the participant list with every occurrence of email removed.
func WithoutParticipant(participants []string, email string) []string {
	out := make([]string, 0, len(participants))
	for _, p := range participants {
		if p != email {
			out = append(out, p)
		}
	}
	return out
}
