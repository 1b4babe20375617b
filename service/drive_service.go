package service

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// DriveCatalogSource reads the dye catalog document from a Google Drive file.
// It lets a deployment pin its own copy of dyes.json instead of depending on
// the public front-end.
type DriveCatalogSource struct {
	client *drive.Service
	fileID string
}

// NewDriveCatalogSource creates a new DriveCatalogSource
// credentialsPath should be the path to the Service Account JSON file.
// Extra client options are applied after the credentials.
func NewDriveCatalogSource(ctx context.Context, credentialsPath string, fileID string, opts ...option.ClientOption) (*DriveCatalogSource, error) {
	clientOpts := []option.ClientOption{option.WithScopes(drive.DriveReadonlyScope)}
	if credentialsPath != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(credentialsPath))
	}
	clientOpts = append(clientOpts, opts...)

	driveService, err := drive.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveCatalogSource{
		client: driveService,
		fileID: fileID,
	}, nil
}

// Ensure DriveCatalogSource implements CatalogSourceInterface
var _ CatalogSourceInterface = (*DriveCatalogSource)(nil)

// Name identifies the source in logs
func (ds *DriveCatalogSource) Name() string {
	return "drive:" + ds.fileID
}

// FetchCatalog downloads the catalog file content
func (ds *DriveCatalogSource) FetchCatalog(ctx context.Context) ([]byte, error) {
	resp, err := ds.client.Files.Get(ds.fileID).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download drive file %s: %w", ds.fileID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read drive file %s: %w", ds.fileID, err)
	}
	return data, nil
}
