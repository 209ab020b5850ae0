package v1

import "fmt"

// DefaultBaseURL is the default address of the API server
const DefaultBaseURL = "http://localhost:8080"

// apiPrefix is the path prefix shared by every v1 endpoint
const apiPrefix = "/api/v1"

// HealthCheckURL returns the health check endpoint
func HealthCheckURL() string {
	return "/health"
}

// CreateSessionURL returns the endpoint for starting a quote session
func CreateSessionURL() string {
	return apiPrefix + "/sessions"
}

// GetSessionURL returns the endpoint for a session status lookup
func GetSessionURL(sessionID string) string {
	return fmt.Sprintf("%s/sessions/%s", apiPrefix, sessionID)
}

// SubmitAnswersURL returns the endpoint for answer submission
func SubmitAnswersURL(sessionID string) string {
	return fmt.Sprintf("%s/sessions/%s/answers", apiPrefix, sessionID)
}

// RetractAnswerURL returns the endpoint for removing one answered field
func RetractAnswerURL(sessionID, field string) string {
	return fmt.Sprintf("%s/sessions/%s/answers/%s", apiPrefix, sessionID, field)
}

// AttachPhotoURL returns the endpoint for photo analysis
func AttachPhotoURL(sessionID string) string {
	return fmt.Sprintf("%s/sessions/%s/photo", apiPrefix, sessionID)
}

// CalculateURL returns the endpoint for the calculate stage
func CalculateURL(sessionID string) string {
	return fmt.Sprintf("%s/sessions/%s/calculate", apiPrefix, sessionID)
}

// EstimateURL returns the endpoint for the estimate stage
func EstimateURL(sessionID string) string {
	return fmt.Sprintf("%s/sessions/%s/estimate", apiPrefix, sessionID)
}

// PriceURL returns the endpoint for the price stage
func PriceURL(sessionID string) string {
	return fmt.Sprintf("%s/sessions/%s/price", apiPrefix, sessionID)
}

// ListQuotesURL returns the endpoint for listing quotes
func ListQuotesURL() string {
	return apiPrefix + "/quotes"
}

// GetQuoteURL returns the endpoint for a quote lookup
func GetQuoteURL(quoteID uint) string {
	return fmt.Sprintf("%s/quotes/%d", apiPrefix, quoteID)
}

// QuotePDFURL returns the endpoint for the rendered quote document
func QuotePDFURL(quoteID uint) string {
	return fmt.Sprintf("%s/quotes/%d/pdf", apiPrefix, quoteID)
}

// QuoteMarkupURL returns the endpoint for a markup change
func QuoteMarkupURL(quoteID uint) string {
	return fmt.Sprintf("%s/quotes/%d/markup", apiPrefix, quoteID)
}

// QuoteStatusURL returns the endpoint for a quote status change
func QuoteStatusURL(quoteID uint) string {
	return fmt.Sprintf("%s/quotes/%d/status", apiPrefix, quoteID)
}

// QuoteActualsURL returns the endpoint for recording real job hours
func QuoteActualsURL(quoteID uint) string {
	return fmt.Sprintf("%s/quotes/%d/actuals", apiPrefix, quoteID)
}
