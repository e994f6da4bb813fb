package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/abertanha/movie-diary/internal/models"
	"github.com/abertanha/movie-diary/internal/services"
)

func TestMovieService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	movieID := uuid.New()
	input := models.MovieInput{Titulo: "Matrix", NotaUsuario: 4.5}

	t.Run("successful create publishes event", func(t *testing.T) {
		mockReader := services.NewMockMovieReader(ctrl)
		mockWriter := services.NewMockMovieWriter(ctrl)
		mockKafka := services.NewMockKafkaWriter(ctrl)

		svc := services.NewMovieService(mockReader, mockWriter, mockKafka)

		mockWriter.EXPECT().
			Save(gomock.Any(), userID, input).
			Return(&models.MovieDB{ID: movieID, Titulo: "Matrix", UserID: userID}, nil)
		mockKafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			Return(nil)

		movie, err := svc.Create(context.Background(), userID, input)
		assert.NoError(t, err)
		assert.Equal(t, movieID, movie.ID)
		assert.Equal(t, "Matrix", movie.Titulo)
	})

	t.Run("kafka failure does not fail the create", func(t *testing.T) {
		mockReader := services.NewMockMovieReader(ctrl)
		mockWriter := services.NewMockMovieWriter(ctrl)
		mockKafka := services.NewMockKafkaWriter(ctrl)

		svc := services.NewMovieService(mockReader, mockWriter, mockKafka)

		mockWriter.EXPECT().
			Save(gomock.Any(), userID, input).
			Return(&models.MovieDB{ID: movieID, Titulo: "Matrix", UserID: userID}, nil)
		mockKafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			Return(errors.New("broker down"))

		movie, err := svc.Create(context.Background(), userID, input)
		assert.NoError(t, err)
		assert.NotNil(t, movie)
	})

	t.Run("writer error", func(t *testing.T) {
		mockReader := services.NewMockMovieReader(ctrl)
		mockWriter := services.NewMockMovieWriter(ctrl)

		svc := services.NewMovieService(mockReader, mockWriter, nil)

		mockWriter.EXPECT().
			Save(gomock.Any(), userID, input).
			Return(nil, errors.New("db error"))

		movie, err := svc.Create(context.Background(), userID, input)
		assert.Error(t, err)
		assert.Nil(t, movie)
	})
}

func TestMovieService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	movieID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockReader := services.NewMockMovieReader(ctrl)
		mockWriter := services.NewMockMovieWriter(ctrl)

		svc := services.NewMovieService(mockReader, mockWriter, nil)

		mockReader.EXPECT().
			GetByID(gomock.Any(), movieID, userID).
			Return(&models.MovieDB{ID: movieID, UserID: userID}, nil)

		movie, err := svc.Get(context.Background(), movieID, userID)
		assert.NoError(t, err)
		assert.Equal(t, movieID, movie.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mockReader := services.NewMockMovieReader(ctrl)
		mockWriter := services.NewMockMovieWriter(ctrl)

		svc := services.NewMovieService(mockReader, mockWriter, nil)

		mockReader.EXPECT().
			GetByID(gomock.Any(), movieID, userID).
			Return(nil, nil)

		movie, err := svc.Get(context.Background(), movieID, userID)
		assert.ErrorIs(t, err, services.ErrMovieNotFound)
		assert.Nil(t, movie)
	})
}

func TestMovieService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	all := []models.MovieDB{{Titulo: "Matrix"}, {Titulo: "Blade Runner"}}
	matched := []models.MovieDB{{Titulo: "Matrix"}}

	t.Run("without filter lists everything", func(t *testing.T) {
		mockReader := services.NewMockMovieReader(ctrl)
		mockWriter := services.NewMockMovieWriter(ctrl)

		svc := services.NewMovieService(mockReader, mockWriter, nil)

		mockReader.EXPECT().
			ListByUser(gomock.Any(), userID).
			Return(all, nil)

		movies, err := svc.List(context.Background(), userID, "")
		assert.NoError(t, err)
		assert.Len(t, movies, 2)
	})

	t.Run("with filter searches by title", func(t *testing.T) {
		mockReader := services.NewMockMovieReader(ctrl)
		mockWriter := services.NewMockMovieWriter(ctrl)

		svc := services.NewMovieService(mockReader, mockWriter, nil)

		mockReader.EXPECT().
			SearchByTitle(gomock.Any(), userID, "matr").
			Return(matched, nil)

		movies, err := svc.List(context.Background(), userID, "matr")
		assert.NoError(t, err)
		assert.Len(t, movies, 1)
		assert.Equal(t, "Matrix", movies[0].Titulo)
	})
}

func TestMovieService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	movieID := uuid.New()
	input := models.MovieInput{Titulo: "Matrix Reloaded", NotaUsuario: 3}

	t.Run("successful update re-reads the row", func(t *testing.T) {
		mockReader := services.NewMockMovieReader(ctrl)
		mockWriter := services.NewMockMovieWriter(ctrl)
		mockKafka := services.NewMockKafkaWriter(ctrl)

		svc := services.NewMovieService(mockReader, mockWriter, mockKafka)

		mockWriter.EXPECT().
			Update(gomock.Any(), movieID, userID, input).
			Return(int64(1), nil)
		mockReader.EXPECT().
			GetByID(gomock.Any(), movieID, userID).
			Return(&models.MovieDB{ID: movieID, Titulo: "Matrix Reloaded", UserID: userID}, nil)
		mockKafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			Return(nil)

		movie, err := svc.Update(context.Background(), movieID, userID, input)
		assert.NoError(t, err)
		assert.Equal(t, "Matrix Reloaded", movie.Titulo)
	})

	t.Run("unknown id", func(t *testing.T) {
		mockReader := services.NewMockMovieReader(ctrl)
		mockWriter := services.NewMockMovieWriter(ctrl)

		svc := services.NewMovieService(mockReader, mockWriter, nil)

		mockWriter.EXPECT().
			Update(gomock.Any(), movieID, userID, input).
			Return(int64(0), nil)

		movie, err := svc.Update(context.Background(), movieID, userID, input)
		assert.ErrorIs(t, err, services.ErrMovieNotFound)
		assert.Nil(t, movie)
	})
}

func TestMovieService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	movieID := uuid.New()

	t.Run("successful delete publishes event", func(t *testing.T) {
		mockReader := services.NewMockMovieReader(ctrl)
		mockWriter := services.NewMockMovieWriter(ctrl)
		mockKafka := services.NewMockKafkaWriter(ctrl)

		svc := services.NewMovieService(mockReader, mockWriter, mockKafka)

		mockWriter.EXPECT().
			Delete(gomock.Any(), movieID, userID).
			Return(int64(1), nil)
		mockKafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.Delete(context.Background(), movieID, userID)
		assert.NoError(t, err)
	})

	t.Run("deleting the same id twice fails with not-found", func(t *testing.T) {
		mockReader := services.NewMockMovieReader(ctrl)
		mockWriter := services.NewMockMovieWriter(ctrl)

		svc := services.NewMovieService(mockReader, mockWriter, nil)

		gomock.InOrder(
			mockWriter.EXPECT().
				Delete(gomock.Any(), movieID, userID).
				Return(int64(1), nil),
			mockWriter.EXPECT().
				Delete(gomock.Any(), movieID, userID).
				Return(int64(0), nil),
		)

		assert.NoError(t, svc.Delete(context.Background(), movieID, userID))
		assert.ErrorIs(t, svc.Delete(context.Background(), movieID, userID), services.ErrMovieNotFound)
	})

	t.Run("writer error", func(t *testing.T) {
		mockReader := services.NewMockMovieReader(ctrl)
		mockWriter := services.NewMockMovieWriter(ctrl)

		svc := services.NewMovieService(mockReader, mockWriter, nil)

		mockWriter.EXPECT().
			Delete(gomock.Any(), movieID, userID).
			Return(int64(0), errors.New("db error"))

		assert.Error(t, svc.Delete(context.Background(), movieID, userID))
	})
}
