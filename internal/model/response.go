package model

type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// PostList is the placeholder payload for the post endpoints. The posts
// feature is not implemented yet; the endpoints return an empty slice.
type PostList struct {
	Message string `json:"message"`
	Posts   []any  `json:"posts"`
}
