package genai

import "time"

const (
	// DefaultModel is the default generation model.
	DefaultModel = "cohere.command-r-plus"

	// DefaultBaseURL is the default inference endpoint.
	DefaultBaseURL = "https://inference.generativeai.us-ashburn-1.oci.oraclecloud.com/v1"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second
)
