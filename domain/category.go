package domain

import "fmt"

// Category is one of the provider's news sections.
type Category struct {
	Name string
	ID   int
}

// Categories known to the provider, in the order they are archived.
var categories = []Category{
	{Name: "local", ID: 81},
	{Name: "sports", ID: 83},
	{Name: "foreign", ID: 84},
	{Name: "business", ID: 85},
}

// Categories returns all known provider categories.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryByName looks up a category by its name.
// Returns ErrUnknownCategory if the name is not registered.
func CategoryByName(name string) (Category, error) {
	for _, c := range categories {
		if c.Name == name {
			return c, nil
		}
	}
	return Category{}, fmt.Errorf("%w: %s", ErrUnknownCategory, name)
}

// CategoryName returns the name for a category ID, or "unknown" when the ID
// is not registered.
func CategoryName(id int) string {
	for _, c := range categories {
		if c.ID == id {
			return c.Name
		}
	}
	return "unknown"
}
