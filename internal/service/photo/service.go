package photo

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/timetrackhq/timetrack-backend-go/internal/domain/employee"
	"github.com/timetrackhq/timetrack-backend-go/internal/pkg/storage"
)

// PhotoService stores employee profile photos and keeps the roster's
// image path in sync with the storage backend.
type PhotoService interface {
	// UploadEmployeePhoto stores the file and returns its public URL. A
	// previous photo, if any, is removed.
	UploadEmployeePhoto(ctx context.Context, employeeID int64, file io.Reader, filename string) (string, error)
}

type PhotoServiceImpl struct {
	employee.EmployeeRepository
	storage storage.FileStorage
}

func NewPhotoService(repo employee.EmployeeRepository, fileStorage storage.FileStorage) PhotoService {
	return &PhotoServiceImpl{
		EmployeeRepository: repo,
		storage:            fileStorage,
	}
}

var allowedPhotoExts = []string{".jpg", ".jpeg", ".png"}

// UploadEmployeePhoto implements PhotoService.
func (s *PhotoServiceImpl) UploadEmployeePhoto(ctx context.Context, employeeID int64, file io.Reader, filename string) (string, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	valid := false
	for _, allowed := range allowedPhotoExts {
		if ext == allowed {
			valid = true
			break
		}
	}
	if !valid {
		return "", employee.ErrUnsupportedImageType
	}

	path := fmt.Sprintf("photos/%d/%s%s", employeeID, uuid.NewString(), ext)
	stored, err := s.storage.Upload(ctx, file, path)
	if err != nil {
		return "", fmt.Errorf("failed to store photo: %w", err)
	}

	if err := s.EmployeeRepository.SetImagePath(ctx, employeeID, stored); err != nil {
		return "", err
	}

	// The old photo is orphaned once the path is rewritten.
	if emp.ImagePath != nil && *emp.ImagePath != stored {
		_ = s.storage.Delete(ctx, *emp.ImagePath)
	}

	return s.storage.URL(stored), nil
}
