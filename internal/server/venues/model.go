package venues

type Venue struct {
	ID       int
	Name     string
	Location string
	Capacity int
	OwnerID  int
}
