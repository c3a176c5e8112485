package entity

// Discussion is a forum post. Role is a snapshot of the author's role when
// the post was created; Replies is reserved for threading and never
// incremented by the store.
type Discussion struct {
	ID          ID     `json:"id,omitempty"`
	Author      string `json:"author"`
	AuthorEmail string `json:"authorEmail"`
	Role        Role   `json:"role"`
	Content     string `json:"content"`
	Date        Date   `json:"date"`
	Replies     int    `json:"replies"`
}

func (d Discussion) EntityID() ID { return d.ID }

// DeletableBy reports whether a may remove the discussion: admins, or the author.
func (d Discussion) DeletableBy(a Account) bool {
	switch a.Role {
	case RoleAdmin:
		return true
	case RoleStartup, RoleInvestor, RoleVisitor:
		return a.Email != "" && d.AuthorEmail == a.Email
	}
	return false
}
