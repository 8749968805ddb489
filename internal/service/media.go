package service

import "io"

// MediaStorage persists uploaded media blobs outside the database.
type MediaStorage interface {
	Save(fileData io.Reader, subDir, filename string) (string, error)
	Read(filePath string) (io.ReadCloser, error)
	Delete(filePath string) error
}
