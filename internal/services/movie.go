package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/abertanha/movie-diary/internal/logger"
	"github.com/abertanha/movie-diary/internal/models"
)

// ErrMovieNotFound is returned when an entry does not exist for the user.
var ErrMovieNotFound = errors.New("movie not found")

// MovieReader defines read operations on the collection.
type MovieReader interface {
	GetByID(ctx context.Context, id, userID uuid.UUID) (*models.MovieDB, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.MovieDB, error)
	SearchByTitle(ctx context.Context, userID uuid.UUID, titulo string) ([]models.MovieDB, error)
}

// MovieWriter defines write operations on the collection.
type MovieWriter interface {
	Save(ctx context.Context, userID uuid.UUID, in models.MovieInput) (*models.MovieDB, error)
	Update(ctx context.Context, id, userID uuid.UUID, in models.MovieInput) (int64, error)
	Delete(ctx context.Context, id, userID uuid.UUID) (int64, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// MovieService handles collection CRUD and event publishing.
type MovieService struct {
	readRepo    MovieReader
	writeRepo   MovieWriter
	kafkaWriter KafkaWriter // nil when Kafka is not configured
}

// NewMovieService creates a new MovieService.
func NewMovieService(readRepo MovieReader, writeRepo MovieWriter, kafkaWriter KafkaWriter) *MovieService {
	return &MovieService{
		readRepo:    readRepo,
		writeRepo:   writeRepo,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a collection event to Kafka, best-effort.
func (s *MovieService) publishEvent(ctx context.Context, userID, movieID uuid.UUID, action string) {
	if s.kafkaWriter == nil {
		return
	}

	event := models.CollectionEvent{
		EventID:   uuid.NewString(),
		UserID:    userID.String(),
		MovieID:   movieID.String(),
		Action:    action,
		Timestamp: time.Now().Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal collection event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish collection event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("collection event published", "event_id", event.EventID, "action", action)
	}
}

// Create adds an entry to the user's collection.
func (s *MovieService) Create(ctx context.Context, userID uuid.UUID, in models.MovieInput) (*models.MovieDB, error) {
	movie, err := s.writeRepo.Save(ctx, userID, in)
	if err != nil {
		logger.Log.Errorw("failed to create movie", "user_id", userID, "error", err)
		return nil, err
	}

	s.publishEvent(ctx, userID, movie.ID, "created")

	return movie, nil
}

// Get returns one entry of the user's collection.
func (s *MovieService) Get(ctx context.Context, id, userID uuid.UUID) (*models.MovieDB, error) {
	movie, err := s.readRepo.GetByID(ctx, id, userID)
	if err != nil {
		logger.Log.Errorw("failed to get movie", "id", id, "error", err)
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}
	return movie, nil
}

// List returns all entries of the user's collection. A non-empty titulo
// narrows the result to case-insensitive title substring matches.
func (s *MovieService) List(ctx context.Context, userID uuid.UUID, titulo string) ([]models.MovieDB, error) {
	if titulo != "" {
		return s.readRepo.SearchByTitle(ctx, userID, titulo)
	}
	return s.readRepo.ListByUser(ctx, userID)
}

// Update overwrites all fields of an entry and returns the stored result.
func (s *MovieService) Update(ctx context.Context, id, userID uuid.UUID, in models.MovieInput) (*models.MovieDB, error) {
	rows, err := s.writeRepo.Update(ctx, id, userID, in)
	if err != nil {
		logger.Log.Errorw("failed to update movie", "id", id, "error", err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrMovieNotFound
	}

	movie, err := s.readRepo.GetByID(ctx, id, userID)
	if err != nil {
		logger.Log.Errorw("failed to re-read movie after update", "id", id, "error", err)
		return nil, err
	}
	if movie == nil {
		return nil, ErrMovieNotFound
	}

	s.publishEvent(ctx, userID, id, "updated")

	return movie, nil
}

// Delete removes an entry. Deleting an unknown id fails with not-found, and
// so does deleting the same id twice.
func (s *MovieService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	rows, err := s.writeRepo.Delete(ctx, id, userID)
	if err != nil {
		logger.Log.Errorw("failed to delete movie", "id", id, "error", err)
		return err
	}
	if rows == 0 {
		return ErrMovieNotFound
	}

	s.publishEvent(ctx, userID, id, "deleted")

	return nil
}
