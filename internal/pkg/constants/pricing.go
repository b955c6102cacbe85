package constants

// Quote limits
const (
	// MaxProductQuantity is the largest unit count accepted for one product line
	MaxProductQuantity = 100000
	// MaxProductsPerQuote is the largest number of product lines in one quote
	MaxProductsPerQuote = 200
	// MaxVehiclesPerQuote caps how many vehicles a single allocation may use
	MaxVehiclesPerQuote = 500
)
