package handlers

import (
	"youact-backend/internal/models"
	"youact-backend/internal/timeline"
	"youact-backend/internal/youtube"
)

func projectResponse(p *models.Project) models.ProjectResponse {
	response := models.ProjectResponse{
		ID:        p.ID.String(),
		OwnerID:   p.OwnerID.String(),
		Title:     p.Title,
		VideoLink: p.VideoLink,
		VideoID:   p.VideoID,
		Duration:  p.Duration,
		IsPublic:  p.IsPublic,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Description.Valid {
		response.Description = p.Description.String
	}
	if p.Thumbnail.Valid {
		thumbnail := p.Thumbnail.String
		response.Thumbnail = &thumbnail
	}
	return response
}

func annotationResponse(a *models.Annotation) models.AnnotationResponse {
	response := models.AnnotationResponse{
		ID:          a.ID.String(),
		ProjectID:   a.ProjectID.String(),
		OwnerID:     a.OwnerID.String(),
		Timestamp:   a.Timestamp,
		ContentType: string(a.ContentType),
		Content:     a.Content,
		Order:       a.Order,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if a.Title.Valid {
		response.Title = a.Title.String
	}
	if a.ContentType == models.ContentEmbed {
		ref := youtube.Resolve(a.Content)
		embed := &models.EmbedResponse{VideoID: ref.VideoID}
		if ref.HasVideo() {
			embed.Thumbnail = &ref.Thumbnail
		}
		response.Embed = embed
	}
	return response
}

func annotationResponses(annotations []models.Annotation) []models.AnnotationResponse {
	responses := make([]models.AnnotationResponse, len(annotations))
	for i := range annotations {
		responses[i] = annotationResponse(&annotations[i])
	}
	return responses
}

func timelineResponse(view timeline.View) models.TimelineResponse {
	overview := make([]models.TimelineEntryResponse, len(view.Overview))
	for i, e := range view.Overview {
		overview[i] = models.TimelineEntryResponse{
			AnnotationID: e.AnnotationID.String(),
			Timestamp:    e.Timestamp,
			Clock:        e.Clock,
			Label:        e.Label,
			Active:       e.Active,
		}
	}
	return models.TimelineResponse{
		CurrentTime: view.CurrentTime,
		Visible:     annotationResponses(view.Visible),
		Overview:    overview,
	}
}
