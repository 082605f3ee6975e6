package server

// xlsxMIMEType is the standard spreadsheet open-XML content type.
const xlsxMIMEType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// ExtractResponse carries one extraction outcome. Found is false when the
// photo yielded no coordinates; that is a 200, not an error.
type ExtractResponse struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Found     bool   `json:"found"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}
