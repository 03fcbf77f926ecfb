package uploads

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Storage writes uploaded project assets under
// {baseDir}/{projectID}.{slug}/{images|videos|docs}/{filename} and hands
// back the relative URL the frontend stores on the project record.
type Storage struct {
	baseDir string
}

func NewStorage(baseDir string) *Storage {
	return &Storage{baseDir: baseDir}
}

// subdirFor maps the upload category to its folder. Unknown categories are
// an error surfaced as a 500 at the request boundary.
func subdirFor(fileType string) (string, error) {
	switch fileType {
	case "image", "gallery":
		return "images", nil
	case "video":
		return "videos", nil
	case "doc", "documentation":
		return "docs", nil
	default:
		return "", fmt.Errorf("invalid file type: %q", fileType)
	}
}

// Save stores one file and returns its URL path, e.g.
// /uploads/3.stocktrack-inventory/images/cover.png.
func (s *Storage) Save(projectID, slug, fileType, filename string, r io.Reader) (string, error) {
	subdir, err := subdirFor(fileType)
	if err != nil {
		return "", err
	}

	// Strip any client-supplied directory components.
	filename = filepath.Base(filename)
	if filename == "." || filename == string(filepath.Separator) {
		return "", fmt.Errorf("invalid filename")
	}

	projectDir := fmt.Sprintf("%s.%s", projectID, slug)
	dir := filepath.Join(s.baseDir, projectDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("failed to write upload: %w", err)
	}

	return "/uploads/" + projectDir + "/" + subdir + "/" + filename, nil
}
