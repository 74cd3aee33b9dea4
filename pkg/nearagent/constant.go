package nearagent

import "time"

const (
	// DefaultBaseURL is the local shade agent API
	DefaultBaseURL = "http://localhost:3140"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	viewPath    = "/api/agent/view"
	callPath    = "/api/agent/call"
	accountPath = "/api/agent/account"
)

// Contract methods.
const (
	MethodGetBounty     = "get_bounty"
	MethodReleaseBounty = "release_bounty"
	MethodRegisterRepo  = "register_repo"
)
