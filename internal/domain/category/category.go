// Package category defines the closed set of service categories and the
// term table used to recognise them in free text.
package category

import "strings"

// Category is a service type key, e.g. "pet care".
type Category string

// Service category constants.
const (
	// All disables category filtering.
	All           Category = "all"
	PetCare       Category = "pet care"
	Tutoring      Category = "tutoring"
	Handyman      Category = "handyman"
	HouseCleaning Category = "house cleaning"
	Moving        Category = "moving"
	Childcare     Category = "childcare"
	EventPlanning Category = "event planning"
)

// priority is the classification order: the first matching category wins.
var priority = []Category{
	PetCare,
	Tutoring,
	Handyman,
	HouseCleaning,
	Moving,
	Childcare,
	EventPlanning,
}

var terms = map[Category][]string{
	PetCare: {
		"pet", "dog", "cat", "animal", "puppy", "kitten",
		"dog walking", "pet sitting", "boarding", "grooming",
	},
	Tutoring: {
		"tutor", "tutoring", "math", "science", "english", "homework",
		"lesson", "teacher", "education", "test prep",
	},
	Handyman: {
		"handyman", "repair", "fix", "plumbing", "electrical", "carpentry",
		"painting", "assembly", "furniture assembly", "mounting", "install",
	},
	HouseCleaning: {
		"clean", "cleaning", "maid", "housekeeping", "house cleaning",
		"deep clean", "janitorial", "laundry",
	},
	Moving: {
		"move", "moving", "mover", "packing", "relocation", "hauling", "truck",
	},
	Childcare: {
		"child", "childcare", "babysitter", "babysitting", "nanny", "kids",
		"daycare", "infant",
	},
	EventPlanning: {
		"event", "party", "wedding", "planner", "planning", "catering",
		"dj", "decor", "birthday",
	},
}

// Ordered returns the categories in classification priority order.
// The returned slice is a copy.
func Ordered() []Category {
	out := make([]Category, len(priority))
	copy(out, priority)
	return out
}

// Terms returns the lower-case term list for c. Nil for All or unknown keys.
func (c Category) Terms() []string {
	return terms[c]
}

// IsValid reports whether c is one of the concrete service categories.
func (c Category) IsValid() bool {
	_, ok := terms[c]
	return ok
}

// String returns the category key.
func (c Category) String() string { return string(c) }

// Parse normalises a raw service type. Empty, "all" and unknown keys
// return All and false: they impose no constraint.
func Parse(raw string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if c.IsValid() {
		return c, true
	}
	return All, false
}
