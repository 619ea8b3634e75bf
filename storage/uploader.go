// Package storage uploads deliverable binaries to Google Cloud Storage and
// reports the metadata the portal stores alongside the database row.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	gcs "cloud.google.com/go/storage"
	"github.com/atelierhq/design-portal/config"
	"github.com/google/uuid"
)

type ClientUploader struct {
	cl         *gcs.Client
	projectID  string
	bucketName string
	uploadPath string
}

// UploadResult is the object-store view of a stored deliverable.
type UploadResult struct {
	SecureURL string
	PublicID  string
	Format    string
	Bytes     int64
	Width     int
	Height    int
}

// NewClientUploader builds a GCS-backed uploader from GSC_PROJECT_ID and
// GSC_BUCKET_NAME. Credentials resolve through the usual
// GOOGLE_APPLICATION_CREDENTIALS chain.
func NewClientUploader(ctx context.Context) (*ClientUploader, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("storage client: %w", err)
	}

	return &ClientUploader{
		cl:         client,
		projectID:  config.Config("GSC_PROJECT_ID"),
		bucketName: config.Config("GSC_BUCKET_NAME"),
		uploadPath: "deliverables/",
	}, nil
}

// Upload stores the file and returns the public URL plus binary metadata.
// Failures surface as a single opaque error; there is no partial success.
func (c *ClientUploader) Upload(file io.Reader, originalFilename string) (*UploadResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*50)
	defer cancel()

	buf, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}

	format, width, height, err := ProbeImage(buf)
	if err != nil {
		return nil, err
	}

	publicID := uuid.NewString()
	objectPath := c.uploadPath + publicID + "_" + originalFilename

	wc := c.cl.Bucket(c.bucketName).Object(objectPath).NewWriter(ctx)
	if _, err := io.Copy(wc, bytes.NewReader(buf)); err != nil {
		return nil, fmt.Errorf("io.Copy: %v", err)
	}
	if err := wc.Close(); err != nil {
		return nil, fmt.Errorf("Writer.Close: %v", err)
	}

	url := fmt.Sprintf("https://storage.googleapis.com/%s/%s", c.bucketName, objectPath)
	return &UploadResult{
		SecureURL: url,
		PublicID:  publicID,
		Format:    format,
		Bytes:     int64(len(buf)),
		Width:     width,
		Height:    height,
	}, nil
}
