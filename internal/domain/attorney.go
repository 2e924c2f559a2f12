package domain

// Attorney is a static catalog entry from the matching roster. The roster is
// immutable at runtime; selection only copies a reference into the user's
// navigation state.
type Attorney struct {
	ID         int     `json:"id" yaml:"id"`
	Name       string  `json:"name" yaml:"name"`
	Firm       string  `json:"firm" yaml:"firm"`
	Rating     float64 `json:"rating" yaml:"rating"`
	Reviews    int     `json:"reviews" yaml:"reviews"`
	Experience string  `json:"experience" yaml:"experience"`
	Specialty  string  `json:"specialty" yaml:"specialty"`
	Image      string  `json:"image" yaml:"image"`
	Fee        string  `json:"fee" yaml:"fee"`
	Location   string  `json:"location" yaml:"location"`
}

// FirstName returns the attorney's given name for chat greetings.
func (a *Attorney) FirstName() string {
	for i := 0; i < len(a.Name); i++ {
		if a.Name[i] == ' ' {
			return a.Name[:i]
		}
	}
	return a.Name
}
