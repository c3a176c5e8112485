package entity

// Sector is one of the fixed startup sectors.
type Sector string

const (
	SectorAI        Sector = "Intelligence Artificielle"
	SectorFintech   Sector = "Fintech"
	SectorECommerce Sector = "E-commerce"
	SectorTourism   Sector = "Tourisme"
	SectorHealth    Sector = "Santé"
	SectorEducation Sector = "Education"
	SectorAll       Sector = "All" // filter sentinel, never stored on a startup
)

// Sectors returns the assignable sectors in display order.
func Sectors() []Sector {
	return []Sector{SectorAI, SectorFintech, SectorECommerce, SectorTourism, SectorHealth, SectorEducation}
}

// IsKnownSector reports whether s is an assignable sector.
func IsKnownSector(s Sector) bool {
	for _, v := range Sectors() {
		if v == s {
			return true
		}
	}
	return false
}

type Startup struct {
	ID          ID       `json:"id,omitempty"`
	Name        string   `json:"name"`
	Sector      Sector   `json:"sector"`
	Description string   `json:"description"`
	Logo        string   `json:"logo,omitempty"`
	Location    string   `json:"location,omitempty"`
	Employees   int      `json:"employees"`
	Tags        []string `json:"tags"`
	Image       string   `json:"image,omitempty"`
	CreatedAt   Date     `json:"createdAt,omitempty"`
	CreatedBy   string   `json:"createdBy,omitempty"`
	Featured    bool     `json:"featured,omitempty"`
}

func (s Startup) EntityID() ID { return s.ID }

// ManageableBy reports whether a may update or delete the startup:
// admins always, startup accounts only for startups they created.
func (s Startup) ManageableBy(a Account) bool {
	switch a.Role {
	case RoleAdmin:
		return true
	case RoleStartup:
		return a.Email != "" && s.CreatedBy == a.Email
	case RoleInvestor, RoleVisitor:
		return false
	}
	return false
}
