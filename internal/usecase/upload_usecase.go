package usecase

//go:generate mockgen -source=upload_usecase.go -destination=../adapter/http/handlers/mocks/upload_usecase_mock.go -package=mocks

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"akc_operations/internal/domain/entities"
	"akc_operations/internal/logging"
	"akc_operations/internal/usecase/interfaces"

	"github.com/gabriel-vasile/mimetype"
)

var dataURLPattern = regexp.MustCompile(`^data:(.*?);base64,`)

const defaultUploadFileType = "MATREC"

// UploadInput is a file sent as a data URL (data:<mime>;base64,<payload>).
// FileType prefixes the stored name and defaults to MATREC.
type UploadInput struct {
	DataURL  string
	FolderID string
	FileType string
}

type UploadSettings struct {
	MaxFileSize      int64
	AllowedMIMETypes []string
}

type IUploadUseCase interface {
	UploadReceiptFile(ctx context.Context, in UploadInput) (entities.StoredFile, error)
}

type UploadUseCase struct {
	files    interfaces.IFileStore
	activity IActivityLogger
	settings UploadSettings
	now      func() time.Time
}

var _ IUploadUseCase = (*UploadUseCase)(nil)

func NewUploadUseCase(files interfaces.IFileStore, activity IActivityLogger, settings UploadSettings) *UploadUseCase {
	return &UploadUseCase{
		files:    files,
		activity: activity,
		settings: settings,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// UploadReceiptFile validates the declared type against the allow-list and
// the sniffed content, enforces the size limit and stores the file.
func (u *UploadUseCase) UploadReceiptFile(ctx context.Context, in UploadInput) (entities.StoredFile, error) {
	folderID := strings.TrimSpace(in.FolderID)
	if in.DataURL == "" || folderID == "" {
		return entities.StoredFile{}, invalid("Missing base64 data or folder ID")
	}

	match := dataURLPattern.FindStringSubmatch(in.DataURL)
	if match == nil {
		return entities.StoredFile{}, invalid("Invalid base64 data format")
	}
	declared := strings.ToLower(strings.TrimSpace(match[1]))
	if !u.allowed(declared) {
		return entities.StoredFile{}, fmt.Errorf("%w: %s", ErrUnsupportedFileType, declared)
	}

	payload := in.DataURL[len(match[0]):]
	if int64(base64.StdEncoding.DecodedLen(len(payload))) > u.settings.MaxFileSize+2 {
		return entities.StoredFile{}, fmt.Errorf("%w (%d bytes)", ErrFileTooLarge, u.settings.MaxFileSize)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return entities.StoredFile{}, invalid("Failed to decode base64 data")
	}
	if int64(len(data)) > u.settings.MaxFileSize {
		return entities.StoredFile{}, fmt.Errorf("%w (%d bytes)", ErrFileTooLarge, u.settings.MaxFileSize)
	}

	detected := mimetype.Detect(data)
	if !detected.Is(declared) {
		return entities.StoredFile{}, fmt.Errorf("%w: declared %s, content is %s", ErrUnsupportedFileType, declared, detected.String())
	}

	fileType := strings.TrimSpace(in.FileType)
	if fileType == "" {
		fileType = defaultUploadFileType
	}
	name := fileType + "-" + strconv.FormatInt(u.now().UnixMilli(), 10) + detected.Extension()

	stored, err := u.files.Store(ctx, interfaces.FileUpload{
		FolderID: folderID,
		Name:     name,
		MIMEType: declared,
		Data:     data,
	})
	if errors.Is(err, interfaces.ErrFolderNotFound) {
		return entities.StoredFile{}, invalid("Invalid folder ID: %s", folderID)
	}
	if err != nil {
		return entities.StoredFile{}, external(serviceFiles, err)
	}

	u.activity.Record(ctx, ActivityEvent{
		Action:      entities.ActionFileUploaded,
		ModuleType:  entities.EntityFile,
		ReferenceID: stored.FileID,
		Details: map[string]any{
			"fileName": stored.Name,
			"mimeType": stored.MIMEType,
			"size":     stored.Size,
			"folderId": folderID,
			"fileUrl":  stored.URL,
		},
	})
	logging.Component(ctx, "upload", "usecase").Info().
		Str("file_id", stored.FileID).
		Int64("size", stored.Size).
		Msg("file uploaded")
	return stored, nil
}

func (u *UploadUseCase) allowed(mime string) bool {
	for _, m := range u.settings.AllowedMIMETypes {
		if strings.EqualFold(strings.TrimSpace(m), mime) {
			return true
		}
	}
	return false
}
