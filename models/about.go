package models

import "encoding/json"

// AboutDocument keeps the about page sections as raw JSON, the API passes
// them through without interpreting them.
type AboutDocument struct {
	College          json.RawMessage `json:"college"`
	Vision           string          `json:"vision"`
	Mission          string          `json:"mission"`
	Stats            json.RawMessage `json:"stats"`
	Statistics       json.RawMessage `json:"statistics,omitempty"`
	Timeline         json.RawMessage `json:"timeline,omitempty"`
	AnnualEvents     json.RawMessage `json:"annualEvents,omitempty"`
	OrganizingBodies json.RawMessage `json:"organizingBodies,omitempty"`
}
