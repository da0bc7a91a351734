package utils

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// Attachment storage for asset documents (invoices, delivery notes, images),
// backed by a Google Drive service account. The core only ever sees the
// returned file IDs.

var (
	driveService *drive.Service
	driveOnce    sync.Once
)

// InitDriveStorage initializes the Drive client from service-account
// credentials, either a file path or inline JSON.
func InitDriveStorage() error {
	var initErr error
	driveOnce.Do(func() {
		ctx := context.Background()

		credentialsJSON := os.Getenv("GOOGLE_DRIVE_CREDENTIALS_JSON")
		if credentialsPath := os.Getenv("GOOGLE_DRIVE_CREDENTIALS_PATH"); credentialsPath != "" {
			credsBytes, readErr := os.ReadFile(credentialsPath)
			if readErr != nil {
				initErr = fmt.Errorf("reading drive credentials file: %w", readErr)
				return
			}
			credentialsJSON = string(credsBytes)
		}
		if credentialsJSON == "" {
			initErr = fmt.Errorf("GOOGLE_DRIVE_CREDENTIALS_PATH or GOOGLE_DRIVE_CREDENTIALS_JSON must be set")
			return
		}

		creds, err := google.CredentialsFromJSON(ctx, []byte(credentialsJSON), drive.DriveFileScope)
		if err != nil {
			initErr = fmt.Errorf("loading drive credentials: %w", err)
			return
		}

		driveService, err = drive.NewService(ctx, option.WithCredentials(creds))
		if err != nil {
			initErr = fmt.Errorf("creating drive service: %w", err)
			return
		}

		log.Info("[DRIVE] attachment storage initialized")
	})
	return initErr
}

func getDriveService() (*drive.Service, error) {
	if driveService == nil {
		if err := InitDriveStorage(); err != nil {
			return nil, err
		}
	}
	return driveService, nil
}

// UploadAttachment stores one document and returns its Drive file ID. The
// target folder comes from GOOGLE_DRIVE_FOLDER_ID when set.
func UploadAttachment(filename string, mimeType string, r io.Reader) (string, error) {
	service, err := getDriveService()
	if err != nil {
		return "", err
	}

	meta := &drive.File{Name: filename, MimeType: mimeType}
	if folder := os.Getenv("GOOGLE_DRIVE_FOLDER_ID"); folder != "" {
		meta.Parents = []string{folder}
	}

	file, err := service.Files.Create(meta).Media(r).Do()
	if err != nil {
		return "", fmt.Errorf("uploading attachment %s: %w", filename, err)
	}

	log.Infof("[DRIVE] uploaded %s as %s", filename, file.Id)
	return file.Id, nil
}

// DownloadAttachment streams back a stored document with its original name.
func DownloadAttachment(fileID string) (io.ReadCloser, string, error) {
	service, err := getDriveService()
	if err != nil {
		return nil, "", err
	}

	file, err := service.Files.Get(fileID).Fields("id", "name", "mimeType").Do()
	if err != nil {
		return nil, "", fmt.Errorf("fetching attachment metadata: %w", err)
	}

	resp, err := service.Files.Get(fileID).Download()
	if err != nil {
		return nil, "", fmt.Errorf("downloading attachment %s: %w", fileID, err)
	}
	return resp.Body, file.Name, nil
}
