package utils

import (
	"errors"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/text/unicode/norm"
)

func IsDuplicateKey(err error) bool {
	// Preferred: typed error
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 || e.Code == 11001 {
				return true
			}
		}
	}

	var bwe mongo.BulkWriteException
	if errors.As(err, &bwe) {
		for _, e := range bwe.WriteErrors {
			if e.Code == 11000 || e.Code == 11001 {
				return true
			}
		}
	}

	// Fallback
	return strings.Contains(err.Error(), "E11000 duplicate key error")
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

func GenerateSlug(name string) string {
	// Normalize accents
	t := norm.NFD.String(name)
	var b strings.Builder
	for _, r := range t {
		if unicode.Is(unicode.Mn, r) {
			continue // remove accent marks
		}
		b.WriteRune(r)
	}

	s := strings.ToLower(b.String())
	s = slugRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

func ParseIntDefault(v string, def int) int {
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func GetDefaultQueryLimits() (int, int) {
	maxLimit, err := strconv.Atoi(os.Getenv("READ_QUERY_MAX_LIMIT"))
	if err != nil {
		maxLimit = 100
	}
	defaultLimit, err := strconv.Atoi(os.Getenv("DEFAULT_READ_QUERY_LIMIT"))
	if err != nil {
		defaultLimit = 20
	}
	return maxLimit, defaultLimit
}

type FileValidator struct {
	allowedExt  map[string]bool
	allowedMime map[string]bool
	maxSize     int64
}

// NewImageValidator builds a validator from ALLOWED_FILE_EXTENSIONS,
// ALLOWED_FILE_MIME_TYPES and MAX_UPLOAD_SIZE_MB, with image defaults when
// the env vars are unset.
func NewImageValidator() *FileValidator {
	allowedExt := make(map[string]bool)
	for _, ext := range strings.Split(os.Getenv("ALLOWED_FILE_EXTENSIONS"), ",") {
		if ext = strings.TrimSpace(strings.ToLower(ext)); ext != "" {
			allowedExt[ext] = true
		}
	}
	if len(allowedExt) == 0 {
		allowedExt = map[string]bool{".jpg": true, ".jpeg": true, ".png": true, ".webp": true}
	}

	allowedMime := make(map[string]bool)
	for _, m := range strings.Split(os.Getenv("ALLOWED_FILE_MIME_TYPES"), ",") {
		if m = strings.TrimSpace(strings.ToLower(m)); m != "" {
			allowedMime[m] = true
		}
	}
	if len(allowedMime) == 0 {
		allowedMime = map[string]bool{"image/jpeg": true, "image/png": true, "image/webp": true}
	}

	sizeMB := 5
	if v := os.Getenv("MAX_UPLOAD_SIZE_MB"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			sizeMB = parsed
		}
	}

	return &FileValidator{
		allowedExt:  allowedExt,
		allowedMime: allowedMime,
		maxSize:     int64(sizeMB) << 20,
	}
}

// ValidateFile checks size, extension and sniffed content type, returning
// the detected MIME type on success.
func (v *FileValidator) ValidateFile(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > v.maxSize {
		return "", errors.New("file too large (max " + strconv.FormatInt(v.maxSize>>20, 10) + " MB)")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !v.allowedExt[ext] {
		return "", errors.New("invalid file extension")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	buffer := make([]byte, 512)
	if _, err = file.Read(buffer); err != nil {
		return "", errors.New("failed to read file header")
	}
	if _, err = file.Seek(0, 0); err != nil {
		return "", errors.New("failed to reset file reader")
	}

	detectedMime := strings.ToLower(http.DetectContentType(buffer))
	if i := strings.Index(detectedMime, ";"); i >= 0 {
		detectedMime = detectedMime[:i]
	}
	if !v.allowedMime[detectedMime] {
		return "", errors.New("invalid file type")
	}

	return detectedMime, nil
}
