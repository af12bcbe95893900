package objectstore

//go:generate go run go.uber.org/mock/mockgen -source=./objectstore.go -destination=./mocks/objectstore_mock.go -package=mocks

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"hotelier/config"
	"hotelier/infras/otel"

	"github.com/google/uuid"
)

// ObjectStore keeps uploaded files and hands back the public reference
// under which they are served.
type ObjectStore interface {
	// Save stores the uploaded file under a generated name and returns its
	// public reference.
	Save(ctx context.Context, fieldName string, header *multipart.FileHeader) (string, error)
	// Delete removes the object behind a reference returned by Save.
	// Removing an object that is already gone is not an error.
	Delete(ctx context.Context, ref string) error
}

// New builds the store selected by STORAGE_DRIVER.
func New(cfg *config.Config, otl otel.Otel) (ObjectStore, error) {
	switch cfg.Storage.Driver {
	case config.StorageDriverLocal:
		return NewLocal(cfg.Storage.Local.Directory, cfg.Storage.Local.PublicPath, otl), nil
	case config.StorageDriverS3:
		return NewS3(cfg, otl)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// GenerateName returns "<field>-<unix millis>-<random>.<ext>", keeping the
// extension of the original file name.
func GenerateName(fieldName, originalName string, now time.Time) string {
	return fmt.Sprintf("%s-%d-%d%s", fieldName, now.UnixMilli(), uuid.New().ID(), filepath.Ext(originalName))
}
