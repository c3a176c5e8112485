package rest

import "github.com/oksasatya/digitalhub/internal/domain/entity"

const (
	StartupsPath    = "/startups"
	EventsPath      = "/events"
	DiscussionsPath = "/discussions"
	UsersPath       = "/users"
)

// Gateway groups the four resource collections served by one backend.
type Gateway struct {
	Startups    *Collection[entity.Startup]
	Events      *EventCollection
	Discussions *Collection[entity.Discussion]
	Accounts    *AccountCollection
}

func NewGateway(c *Client) *Gateway {
	return &Gateway{
		Startups:    NewCollection[entity.Startup](c, StartupsPath),
		Events:      NewEventCollection(c),
		Discussions: NewCollection[entity.Discussion](c, DiscussionsPath),
		Accounts:    NewAccountCollection(c),
	}
}
