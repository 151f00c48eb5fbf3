package handlers

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// saveUpload stores one multipart file under <UploadDir>/<subdir> with a
// unique uuid-based name and returns the generated filename. Pass an
// empty subdir to store directly in the uploads root.
func (h *Handlers) saveUpload(c *gin.Context, file *multipart.FileHeader, subdir string) (string, error) {
	dir := h.Cfg.UploadDir
	if subdir != "" {
		dir = filepath.Join(dir, subdir)
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	// uuid + original extension: identical uploads are stored twice
	// under different names, references stay collision-free.
	ext := filepath.Ext(file.Filename)
	newFilename := fmt.Sprintf("%s%s", uuid.New().String(), ext)

	if err := c.SaveUploadedFile(file, filepath.Join(dir, newFilename)); err != nil {
		return "", err
	}
	return newFilename, nil
}
