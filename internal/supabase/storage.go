package supabase

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/google/uuid"
	storage "github.com/supabase-community/storage-go"
)

// listPageSize bounds how many objects one purge call lists.
const listPageSize = 1000

// StorageClient stores annotation images in a Supabase Storage bucket.
type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, serviceKey, bucket string) (*StorageClient, error) {
	if supabaseURL == "" || serviceKey == "" {
		return nil, fmt.Errorf("supabase url and service key are required")
	}
	baseURL := strings.TrimSuffix(supabaseURL, "/")
	client := storage.NewClient(baseURL+"/storage/v1", serviceKey, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// ProjectPrefix is the folder holding every image of one project.
func ProjectPrefix(userID, projectID uuid.UUID) string {
	return fmt.Sprintf("users/%s/projects/%s/", userID.String(), projectID.String())
}

func (s *StorageClient) UploadFile(userID, projectID uuid.UUID, filename string, data []byte, contentType string) (string, string, error) {
	storagePath := ProjectPrefix(userID, projectID) + filename

	upsert := false
	_, err := s.client.UploadFile(s.bucket, storagePath, bytes.NewReader(data), storage.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload file: %w", err)
	}

	return storagePath, s.GetPublicURL(storagePath), nil
}

func (s *StorageClient) GetPublicURL(storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, s.bucket, storagePath)
}

// DeleteProjectFiles removes every object under the project's prefix.
func (s *StorageClient) DeleteProjectFiles(userID, projectID uuid.UUID) error {
	prefix := ProjectPrefix(userID, projectID)

	files, err := s.client.ListFiles(s.bucket, prefix, storage.FileSearchOptions{
		Limit: listPageSize,
	})
	if err != nil {
		return fmt.Errorf("failed to list files: %w", err)
	}
	if len(files) == 0 {
		return nil
	}

	paths := make([]string, len(files))
	for i, file := range files {
		paths[i] = prefix + file.Name
	}
	if _, err := s.client.RemoveFile(s.bucket, paths); err != nil {
		return fmt.Errorf("failed to delete files: %w", err)
	}
	return nil
}
