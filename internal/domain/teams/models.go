package teams

// Team represents one row of the team directory.
// Kept in its own package to keep domain models modular and reusable
// across loaders and fixtures.
type Team struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
