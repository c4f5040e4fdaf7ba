package service

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/aboderinsamuel/cgpaCalculator-for-University/internal/codec"
	appErrors "github.com/aboderinsamuel/cgpaCalculator-for-University/pkg/errors"
)

// SnapshotMediaType is the only media type the load path accepts; anything
// else is rejected before a parse is attempted.
const SnapshotMediaType = "application/json"

type snapshotStorage interface {
	Save(filename string, data []byte) (string, error)
	Read(filename string) ([]byte, error)
}

// SnapshotService round-trips the session through the save-file document.
// A load replaces the whole session atomically or leaves it untouched.
type SnapshotService struct {
	session *SessionService
	codec   *codec.SnapshotCodec
	storage snapshotStorage
	logger  *zap.Logger
	now     func() time.Time
}

// NewSnapshotService constructs a SnapshotService.
func NewSnapshotService(session *SessionService, storage snapshotStorage, logger *zap.Logger) *SnapshotService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SnapshotService{
		session: session,
		codec:   codec.New(),
		storage: storage,
		logger:  logger,
		now:     time.Now,
	}
}

// Save writes the current course list and scale to a dated snapshot file and
// returns its name.
func (s *SnapshotService) Save() (string, error) {
	data, err := s.codec.Encode(s.session.Courses(), s.session.Scale(), s.now())
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("cgpa_courses_%s.json", s.now().Format("2006-01-02"))
	name, err := s.storage.Save(filename, data)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, "failed to save courses")
	}
	s.logger.Info("snapshot saved", zap.String("file", name))
	return name, nil
}

// Load reads a snapshot file, gated on its declared media type, and replaces
// the session on success.
func (s *SnapshotService) Load(filename string) error {
	declared := mime.TypeByExtension(filepath.Ext(filename))
	if !acceptableMediaType(declared) {
		return appErrors.Clone(appErrors.ErrUnsupportedMediaType, "")
	}
	data, err := s.storage.Read(filename)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrNotFound.Code, "could not read saved file")
	}
	return s.LoadDocument(data, declared)
}

// LoadDocument applies an already-read document with its declared media type.
func (s *SnapshotService) LoadDocument(data []byte, mediaType string) error {
	if !acceptableMediaType(mediaType) {
		return appErrors.Clone(appErrors.ErrUnsupportedMediaType, "")
	}
	result, err := s.codec.Decode(data)
	if err != nil {
		s.logger.Warn("snapshot rejected", zap.String("reason", appErrors.FromError(err).Code))
		return err
	}
	s.session.Replace(result.Courses, result.Scale)
	return nil
}

func acceptableMediaType(declared string) bool {
	if declared == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(declared)
	if err != nil {
		return false
	}
	return strings.EqualFold(mediaType, SnapshotMediaType)
}
