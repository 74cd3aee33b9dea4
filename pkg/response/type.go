package response

import (
	"encoding/json"
	"time"
)

// StatusResp is the body for webhook outcomes and simple acknowledgements.
type StatusResp struct {
	Status string `json:"status"`
}

// ErrResp is the body for every non-2xx response.
type ErrResp struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Path    string `json:"path,omitempty"`
}

// Timestamp is a time that marshals as TimestampFormat in UTC.
type Timestamp time.Time

// MarshalJSON implements json.Marshaler for Timestamp.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(t).UTC().Format(TimestampFormat))
}
