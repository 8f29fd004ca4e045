package utils

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

func NewGCSClient(ctx context.Context) (*storage.Client, string, error) {
	bucket := os.Getenv("GCS_BUCKET")
	credentialsPath := os.Getenv("CREDENTIALS_FILE_LOCATION")
	wd, err := os.Getwd()
	if err != nil {
		return nil, "", err
	}
	client, err := storage.NewClient(ctx, option.WithAuthCredentialsFile(option.ServiceAccount, filepath.Join(wd, credentialsPath)))
	if err != nil {
		return nil, "", err
	}
	return client, bucket, nil
}

// UploadGalleryImage stores the file under gallery/<slug>/ with a unique
// object name and returns the public URL plus the object name for later
// deletion.
func UploadGalleryImage(
	ctx context.Context,
	gcs *storage.Client,
	bucketName string,
	slug string,
	contentType string,
	fileHeader *multipart.FileHeader,
) (string, string, error) {

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext == "" {
		ext = ".bin"
	}
	objectName := fmt.Sprintf("gallery/%s/%d-%s%s", slug, time.Now().UTC().Unix(), uuid.New().String(), ext)

	f, err := fileHeader.Open()
	if err != nil {
		return "", "", fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	w := gcs.Bucket(bucketName).Object(objectName).NewWriter(ctx)
	w.ContentType = contentType
	w.CacheControl = "no-cache"

	if _, err := io.Copy(w, f); err != nil {
		_ = w.Close()
		return "", "", fmt.Errorf("upload copy: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", "", fmt.Errorf("upload close: %w", err)
	}

	publicURL := fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucketName, objectName)
	return publicURL, objectName, nil
}

func DeleteGCSObject(ctx context.Context, client *storage.Client, bucket string, objectName string) error {
	if objectName == "" {
		return nil
	}
	if err := client.Bucket(bucket).Object(objectName).Delete(ctx); err != nil {
		return fmt.Errorf("delete %s: %w", objectName, err)
	}
	return nil
}
