package models

// Expense and budget categories form a fixed, closed set.
const (
	CategoryFood          = "Food"
	CategoryTransport     = "Transport"
	CategoryEntertainment = "Entertainment"
	CategoryUtilities     = "Utilities"
	CategoryHealthcare    = "Healthcare"
	CategoryOther         = "Other"
)

// AllCategories returns all valid category constants.
func AllCategories() []string {
	return []string{
		CategoryFood,
		CategoryTransport,
		CategoryEntertainment,
		CategoryUtilities,
		CategoryHealthcare,
		CategoryOther,
	}
}

// IsValidCategory checks if a category string is a member of the fixed set.
func IsValidCategory(category string) bool {
	for _, valid := range AllCategories() {
		if category == valid {
			return true
		}
	}
	return false
}
