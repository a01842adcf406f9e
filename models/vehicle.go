package models

// Category is one of the fixed fleet categories served by the catalog.
type Category string

// The catalog only ever returns these four categories.
const (
	CategoryHatchback Category = "Hatchback"
	CategorySedan     Category = "Sedan"
	CategorySUV       Category = "SUV"
	CategoryLuxury    Category = "Luxury"
)

// CategoryAll is the sentinel selector meaning "do not filter by category".
// It is a UI concept, never a value the catalog returns.
const CategoryAll = "All"

// Categories lists the fixed category values in display order.
func Categories() []Category {
	return []Category{CategoryHatchback, CategorySedan, CategorySUV, CategoryLuxury}
}

// Vehicle holds the structure for a single fleet record as returned by the
// upstream catalog API. The catalog owns these records entirely; this site
// only reads them and never mutates or stores one.
type Vehicle struct {
	ID                int64    `json:"id"`
	Name              string   `json:"name"`
	Slug              string   `json:"slug"`
	Category          Category `json:"category"`
	Description       string   `json:"description"`
	PricePerDay       float64  `json:"price_per_day"`
	Seats             int      `json:"seats"`
	FuelType          string   `json:"fuel_type"`
	Transmission      string   `json:"transmission"`
	Rating            float64  `json:"rating"`
	AirConditioning   bool     `json:"air_conditioning"`
	InsuranceIncluded bool     `json:"insurance_included"`
	LuggageCapacity   int      `json:"luggage_capacity"`
	Image             string   `json:"image"`
}
