package response_models

// AmadeusTokenResponse is the client-credentials grant answer.
type AmadeusTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Offer payloads themselves are passed through to the caller verbatim;
// proxy endpoints return the provider body without reshaping.
