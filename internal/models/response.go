package models

import "time"

type ProjectResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"ownerId"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	VideoLink   string    `json:"videoLink"`
	VideoID     string    `json:"videoId"`
	Thumbnail   *string   `json:"thumbnail"`
	Duration    int       `json:"duration"`
	IsPublic    bool      `json:"isPublic"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ProjectListResponse struct {
	Count    int               `json:"count"`
	Projects []ProjectResponse `json:"projects"`
}

type EmbedResponse struct {
	VideoID   string  `json:"videoId"`
	Thumbnail *string `json:"thumbnail"`
}

type AnnotationResponse struct {
	ID          string         `json:"id"`
	ProjectID   string         `json:"projectId"`
	OwnerID     string         `json:"ownerId"`
	Timestamp   int            `json:"timestamp"`
	ContentType string         `json:"contentType"`
	Content     string         `json:"content"`
	Title       string         `json:"title,omitempty"`
	Order       int            `json:"order"`
	Embed       *EmbedResponse `json:"embed,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

type AnnotationListResponse struct {
	Count       int                  `json:"count"`
	Annotations []AnnotationResponse `json:"annotations"`
}

type TimelineEntryResponse struct {
	AnnotationID string `json:"annotationId"`
	Timestamp    int    `json:"timestamp"`
	Clock        string `json:"clock"`
	Label        string `json:"label"`
	Active       bool   `json:"active"`
}

type TimelineResponse struct {
	CurrentTime int                     `json:"currentTime"`
	Visible     []AnnotationResponse    `json:"visible"`
	Overview    []TimelineEntryResponse `json:"overview"`
}

type ImageUploadResponse struct {
	StoragePath string `json:"storagePath"`
	URL         string `json:"url"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Storage  string `json:"storage"`
}
