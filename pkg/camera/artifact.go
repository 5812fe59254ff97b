package camera

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Artifact is the ephemeral captured frame for one pipeline run.
type Artifact struct {
	// ID uniquely identifies the capture.
	ID string

	path string
}

// NewArtifact writes JPEG data to a uniquely named temp file.
func NewArtifact(data []byte) (*Artifact, error) {
	id := uuid.NewString()
	path := filepath.Join(os.TempDir(), fmt.Sprintf("lenslate-%s.jpg", id))

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return nil, fmt.Errorf("write artifact: %w", err)
	}

	return &Artifact{ID: id, path: path}, nil
}

// Path returns the artifact's file path.
func (a *Artifact) Path() string {
	return a.path
}

// Remove deletes the artifact file. Removing an already-removed artifact
// is not an error.
func (a *Artifact) Remove() error {
	err := os.Remove(a.path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}
