package intro

// DefaultSlides tells the story before the first street.
func DefaultSlides() []Slide {
	return []Slide{
		{
			Title: "CLEAN CITY",
			Lines: []string{"The streets are covered in litter."},
		},
		{
			Title: "Pick it up",
			Lines: []string{
				"Walk over trash to collect it.",
				"Move with the arrow keys or WASD.",
			},
		},
		{
			Title: "Load the truck",
			Lines: []string{
				"The garbage truck crosses the street once.",
				"Hand over what you carry at its back or sides.",
			},
		},
		{
			Title: "Mind the front",
			Lines: []string{
				"Step in front of the truck and you are done.",
				"Clear the street before the truck leaves.",
			},
		},
	}
}
