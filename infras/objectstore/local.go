package objectstore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"hotelier/infras/otel"
	"hotelier/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	otelAttrFileName  = "file_name"
	otelAttrDirectory = "directory"
	otelAttrBucket    = "bucket"

	dirPermission = 0o755
)

var ErrInvalidReference = errors.New("reference does not belong to this store")

type localImpl struct {
	directory  string
	publicPath string
	otel       otel.Otel
}

// NewLocal stores files under directory and references them as
// publicPath/<name>.
func NewLocal(directory, publicPath string, otl otel.Otel) ObjectStore {
	return &localImpl{
		directory:  directory,
		publicPath: "/" + strings.Trim(publicPath, "/"),
		otel:       otl,
	}
}

func (l *localImpl) Save(ctx context.Context, fieldName string, header *multipart.FileHeader) (ref string, err error) {
	_, scope := l.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".local.Save")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	name := GenerateName(fieldName, header.Filename, time.Now())

	scope.SetAttributes(map[string]any{
		otelAttrFileName:  name,
		otelAttrDirectory: l.directory,
	})

	if err = os.MkdirAll(l.directory, dirPermission); err != nil {
		return constant.Empty, fmt.Errorf("failed to create upload directory: %w", err)
	}

	src, err := header.Open()
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.OpenFile(filepath.Join(l.directory, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to create file: %w", err)
	}

	if _, err = io.Copy(dst, src); err != nil {
		dst.Close()
		_ = os.Remove(dst.Name())

		return constant.Empty, fmt.Errorf("failed to write file: %w", err)
	}

	if err = dst.Close(); err != nil {
		_ = os.Remove(dst.Name())

		return constant.Empty, fmt.Errorf("failed to write file: %w", err)
	}

	return path.Join(l.publicPath, name), nil
}

func (l *localImpl) Delete(ctx context.Context, ref string) (err error) {
	_, scope := l.otel.NewScope(ctx, constant.OtelStorageScopeName, constant.OtelStorageScopeName+".local.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	name, ok := strings.CutPrefix(ref, l.publicPath+"/")
	if !ok || name == constant.Empty || name == "." || name == ".." || strings.Contains(name, "/") {
		return fmt.Errorf("%w: %s", ErrInvalidReference, ref)
	}

	scope.SetAttribute(otelAttrFileName, name)

	err = os.Remove(filepath.Join(l.directory, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Error().Err(err).Str("ref", ref).Msg("failed to delete file")

		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}
