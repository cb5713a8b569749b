// Package filemgr stores uploaded images under static/uploads and
// produces the thumbnails the storefront grids render.
package filemgr

import (
	"errors"
	"fmt"
	"image"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"vastra/utils"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	// imaging registers jpeg/png/gif/bmp/tiff; webp decode needs this.
	_ "golang.org/x/image/webp"
)

type Kind string

const (
	KindProduct Kind = "product"
	KindSlide   Kind = "slide"
	KindTryon   Kind = "tryon"
)

const (
	maxUploadBytes = 10 << 20
	thumbWidth     = 400
)

var (
	ErrInvalidExtension = errors.New("invalid file extension")
	ErrInvalidMIME      = errors.New("invalid MIME type")
	ErrFileTooLarge     = errors.New("file size exceeds limit")
)

var allowedExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

func uploadDir(kind Kind) string {
	return filepath.Join("static", "uploads", string(kind))
}

func extensionAllowed(ext string) bool {
	for _, a := range allowedExtensions {
		if ext == a {
			return true
		}
	}
	return false
}

// sniffMIME reads the first 512 bytes and rewinds the file.
func sniffMIME(file multipart.File) (string, error) {
	head := make([]byte, 512)
	n, err := file.Read(head)
	if err != nil && n == 0 {
		return "", err
	}
	if _, err := file.Seek(0, 0); err != nil {
		return "", err
	}
	return http.DetectContentType(head[:n]), nil
}

// SaveImage validates and persists one image from a parsed multipart
// form. Returns the public URL path of the stored file. A jpeg
// thumbnail is written next to it under thumb/.
func SaveImage(form *multipart.Form, field string, kind Kind) (string, error) {
	headers := form.File[field]
	if len(headers) == 0 {
		return "", nil
	}
	return saveOne(headers[0], kind)
}

// SaveImages persists every file in the field, returning URL paths in
// upload order.
func SaveImages(form *multipart.Form, field string, kind Kind) ([]string, error) {
	var saved []string
	for _, header := range form.File[field] {
		url, err := saveOne(header, kind)
		if err != nil {
			return saved, err
		}
		saved = append(saved, url)
	}
	return saved, nil
}

func saveOne(header *multipart.FileHeader, kind Kind) (string, error) {
	if header.Size > maxUploadBytes {
		return "", ErrFileTooLarge
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !extensionAllowed(ext) {
		return "", ErrInvalidExtension
	}

	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	mimeType, err := sniffMIME(file)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return "", ErrInvalidMIME
	}

	img, _, err := image.Decode(file)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	dir := uploadDir(kind)
	if err := utils.EnsureDir(dir); err != nil {
		return "", err
	}
	name := uuid.New().String() + storageExt(ext)
	dst := filepath.Join(dir, name)

	if err := imaging.Save(img, dst, imaging.JPEGQuality(90)); err != nil {
		return "", err
	}

	if err := writeThumb(img, dir, name); err != nil {
		// The full-size image stays usable without its thumbnail.
		log.Printf("thumbnail for %s failed: %v", name, err)
	}

	return "/" + filepath.ToSlash(dst), nil
}

// storageExt maps the upload extension to one imaging can encode.
// webp is decode-only, so those uploads are stored re-encoded as jpeg.
func storageExt(ext string) string {
	if _, err := imaging.FormatFromExtension(ext); err != nil {
		return ".jpg"
	}
	return ext
}

func writeThumb(img image.Image, dir, name string) error {
	thumbDir := filepath.Join(dir, "thumb")
	if err := utils.EnsureDir(thumbDir); err != nil {
		return err
	}
	thumb := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos)
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return imaging.Save(thumb, filepath.Join(thumbDir, base+".jpg"), imaging.JPEGQuality(80))
}

// Remove deletes a previously saved upload given its URL path. Missing
// files are not an error.
func Remove(urlPath string) error {
	rel := strings.TrimPrefix(urlPath, "/")
	if !strings.HasPrefix(rel, "static/uploads/") {
		return fmt.Errorf("refusing to remove %q", urlPath)
	}
	if err := os.Remove(rel); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
