// Package repositories holds one in-memory repository per entity type.
// Collections are empty at process start and discarded at exit.
package repositories

// Repositories is the container for all entity repositories
type Repositories struct {
	Users     *UserRepository
	Alumni    *AlumniRepository
	Events    *EventRepository
	Jobs      *JobRepository
	Donations *DonationRepository
	Posts     *PostRepository
	Messages  *MessageRepository
}

// NewRepositories creates all repositories
func NewRepositories() *Repositories {
	return &Repositories{
		Users:     NewUserRepository(),
		Alumni:    NewAlumniRepository(),
		Events:    NewEventRepository(),
		Jobs:      NewJobRepository(),
		Donations: NewDonationRepository(),
		Posts:     NewPostRepository(),
		Messages:  NewMessageRepository(),
	}
}

// Counts reports the number of records per collection, keyed by the
// collection name used in the health payload.
func (r *Repositories) Counts() map[string]int {
	return map[string]int{
		"users":     r.Users.Count(),
		"alumni":    r.Alumni.Count(),
		"events":    r.Events.Count(),
		"jobs":      r.Jobs.Count(),
		"donations": r.Donations.Count(),
		"posts":     r.Posts.Count(),
		"messages":  r.Messages.Count(),
	}
}
