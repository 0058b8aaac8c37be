package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/robokitlab/catalog-api/pkg/storage"
)

// MediaService pushes editor uploads into the blob store and hands back
// the public URL the child rows store as their storage path.
type MediaService interface {
	Upload(ctx context.Context, r io.Reader, fileName string) (string, error)
	Delete(ctx context.Context, fileURL string) error
}

type mediaService struct {
	fileStorage storage.FileStorage
	baseFolder  string
}

func NewMediaService(fileStorage storage.FileStorage, baseFolder string) MediaService {
	return &mediaService{
		fileStorage: fileStorage,
		baseFolder:  baseFolder,
	}
}

func (s *mediaService) Upload(ctx context.Context, r io.Reader, fileName string) (string, error) {
	folder, err := folderFor(fileName)
	if err != nil {
		return "", err
	}
	if s.baseFolder != "" {
		folder = s.baseFolder + "/" + folder
	}
	return s.fileStorage.UploadFile(ctx, r, folder, fileName)
}

func (s *mediaService) Delete(ctx context.Context, fileURL string) error {
	return s.fileStorage.DeleteFile(ctx, fileURL)
}

// folderFor buckets uploads by what the catalog stores: page images,
// PDF downloads, and 3D model binaries.
func folderFor(fileName string) (string, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return "images", nil
	case ".pdf":
		return "pdfs", nil
	case ".glb", ".gltf", ".obj", ".stl":
		return "models", nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(fileName))
	}
}
