package types

// Envelope is the uniform response body of every /api/v1 endpoint.
// Success: {"data": <payload>, "error": null}
// Failure: {"data": null, "error": {"code": "...", "message": "..."}}
type Envelope struct {
	Data  any       `json:"data"`
	Error *APIError `json:"error"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Deleted is the payload of every DELETE endpoint.
type Deleted struct {
	Deleted bool `json:"deleted"`
}
