package models

type CreateProjectRequest struct {
	Title       string `json:"title" example:"Guitar lesson 3"`
	Description string `json:"description,omitempty"`
	VideoLink   string `json:"videoLink" example:"https://www.youtube.com/watch?v=dQw4w9WgXcQ"`
}

// UpdateProjectRequest is a partial update. Omitted fields are left as they are.
type UpdateProjectRequest struct {
	Title       Optional[string] `json:"title" swaggertype:"string"`
	Description Optional[string] `json:"description" swaggertype:"string"`
	VideoLink   Optional[string] `json:"videoLink" swaggertype:"string"`
	IsPublic    Optional[bool]   `json:"isPublic" swaggertype:"boolean"`
}

type CreateAnnotationRequest struct {
	ProjectID string `json:"projectId"`
	// Timestamp is a pointer so that a missing value can be told apart from 0.
	Timestamp   *int   `json:"timestamp" example:"30"`
	Content     string `json:"content" example:"intro"`
	Title       string `json:"title,omitempty"`
	ContentType string `json:"contentType,omitempty" example:"text"`
	Order       int    `json:"order,omitempty"`
}

// UpdateAnnotationRequest is a partial update. Sending null for title clears
// it; sending null for contentType or order restores the default.
type UpdateAnnotationRequest struct {
	Content     Optional[string] `json:"content" swaggertype:"string"`
	Title       Optional[string] `json:"title" swaggertype:"string"`
	Timestamp   Optional[int]    `json:"timestamp" swaggertype:"integer"`
	ContentType Optional[string] `json:"contentType" swaggertype:"string"`
	Order       Optional[int]    `json:"order" swaggertype:"integer"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
