package nearagent

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Config holds chain agent client configuration
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// CallResult is the outcome of a successful contract call.
type CallResult struct {
	TxHash string
	Result json.RawMessage
}

type methodRequest struct {
	MethodName string `json:"methodName"`
	Args       any    `json:"args"`
}

// callResponse accepts both the flat {txHash} shape and a NEAR
// FinalExecutionOutcome ({transaction:{hash}, status:{...}}).
type callResponse struct {
	TxHash      string `json:"txHash"`
	Transaction *struct {
		Hash string `json:"hash"`
	} `json:"transaction"`
	Status  json.RawMessage `json:"status"`
	Result  json.RawMessage `json:"result"`
	Error   string          `json:"error"`
	Success *bool           `json:"success"`
}

func (r *callResponse) hash() string {
	if r.TxHash != "" {
		return r.TxHash
	}
	if r.Transaction != nil {
		return r.Transaction.Hash
	}
	return ""
}

// failure returns the execution failure carried in a 2xx response, if any.
func (r *callResponse) failure() string {
	if r.Error != "" {
		return r.Error
	}
	if r.Success != nil && !*r.Success {
		return "call reported success=false"
	}
	if len(r.Status) > 0 {
		var st struct {
			Failure json.RawMessage `json:"Failure"`
		}
		if json.Unmarshal(r.Status, &st) == nil && len(st.Failure) > 0 && string(st.Failure) != "null" {
			return "execution failure: " + string(st.Failure)
		}
	}
	return ""
}

type viewResponse struct {
	Result json.RawMessage `json:"result"`
}

type accountResponse struct {
	AccountID string `json:"accountId"`
}

type agentImpl struct {
	baseURL    string
	httpClient *http.Client
}
