package repositories

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abertanha/movie-diary/internal/models"
)

var movieTestColumns = []string{
	"id", "titulo", "diretor", "ano", "genero", "duracao", "elenco",
	"classificacao", "sinopse", "notaUsuario", "posterUrl", "backdropUrl",
	"dataAdicao", "user_id",
}

func movieRow(id, userID uuid.UUID, titulo string) []driver.Value {
	return []driver.Value{
		id, titulo, "Lana Wachowski", 1999, "Ficção científica", 136,
		"Keanu Reeves", "Livre/Outra", "Um hacker descobre a verdade.",
		4.5, nil, nil, time.Now(), userID,
	}
}

func testMovieInput() models.MovieInput {
	return models.MovieInput{
		Titulo:        "Matrix",
		Diretor:       "Lana Wachowski",
		Ano:           1999,
		Genero:        "Ficção científica",
		Duracao:       136,
		Elenco:        "Keanu Reeves",
		Classificacao: "Livre/Outra",
		Sinopse:       "Um hacker descobre a verdade.",
		NotaUsuario:   4.5,
	}
}

func TestMovieReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMovieReadRepository(db)
	ctx := context.Background()

	movieID := uuid.New()
	userID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`FROM filmes WHERE id = \$1 AND user_id = \$2`).
			WithArgs(movieID, userID).
			WillReturnRows(sqlmock.NewRows(movieTestColumns).
				AddRow(movieRow(movieID, userID, "Matrix")...))

		movie, err := repo.GetByID(ctx, movieID, userID)
		assert.NoError(t, err)
		require.NotNil(t, movie)
		assert.Equal(t, movieID, movie.ID)
		assert.Equal(t, "Matrix", movie.Titulo)
		assert.Equal(t, userID, movie.UserID)
	})

	t.Run("entry of another user is invisible", func(t *testing.T) {
		mock.ExpectQuery(`FROM filmes WHERE id = \$1 AND user_id = \$2`).
			WithArgs(movieID, userID).
			WillReturnRows(sqlmock.NewRows(movieTestColumns))

		movie, err := repo.GetByID(ctx, movieID, userID)
		assert.NoError(t, err)
		assert.Nil(t, movie)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieReadRepository_ListByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMovieReadRepository(db)
	ctx := context.Background()

	userID := uuid.New()

	t.Run("returns entries newest first", func(t *testing.T) {
		mock.ExpectQuery(`FROM filmes WHERE user_id = \$1 ORDER BY "dataAdicao" DESC`).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows(movieTestColumns).
				AddRow(movieRow(uuid.New(), userID, "Matrix")...).
				AddRow(movieRow(uuid.New(), userID, "Blade Runner")...))

		movies, err := repo.ListByUser(ctx, userID)
		assert.NoError(t, err)
		assert.Len(t, movies, 2)
	})

	t.Run("empty collection yields empty slice", func(t *testing.T) {
		mock.ExpectQuery(`FROM filmes WHERE user_id = \$1`).
			WithArgs(userID).
			WillReturnRows(sqlmock.NewRows(movieTestColumns))

		movies, err := repo.ListByUser(ctx, userID)
		assert.NoError(t, err)
		assert.NotNil(t, movies)
		assert.Empty(t, movies)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieReadRepository_SearchByTitle(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMovieReadRepository(db)
	ctx := context.Background()

	userID := uuid.New()

	mock.ExpectQuery(`FROM filmes WHERE user_id = \$1 AND titulo ILIKE \$2`).
		WithArgs(userID, "%matr%").
		WillReturnRows(sqlmock.NewRows(movieTestColumns).
			AddRow(movieRow(uuid.New(), userID, "Matrix")...))

	movies, err := repo.SearchByTitle(ctx, userID, "matr")
	assert.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Matrix", movies[0].Titulo)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMovieWriteRepository(db)
	ctx := context.Background()

	movieID := uuid.New()
	userID := uuid.New()

	input := testMovieInput()

	mock.ExpectQuery(`INSERT INTO filmes`).
		WithArgs(
			input.Titulo, input.Diretor, input.Ano, input.Genero, input.Duracao,
			input.Elenco, input.Classificacao, input.Sinopse, input.NotaUsuario,
			input.PosterURL, input.BackdropURL, userID,
		).
		WillReturnRows(sqlmock.NewRows(movieTestColumns).
			AddRow(movieRow(movieID, userID, input.Titulo)...))

	movie, err := repo.Save(ctx, userID, input)
	assert.NoError(t, err)
	require.NotNil(t, movie)
	assert.Equal(t, movieID, movie.ID)
	assert.Equal(t, "Matrix", movie.Titulo)
	assert.False(t, movie.DataAdicao.IsZero())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieWriteRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMovieWriteRepository(db)
	ctx := context.Background()

	movieID := uuid.New()
	userID := uuid.New()
	input := testMovieInput()

	t.Run("existing row", func(t *testing.T) {
		mock.ExpectExec(`UPDATE filmes`).
			WithArgs(
				input.Titulo, input.Diretor, input.Ano, input.Genero, input.Duracao,
				input.Elenco, input.Classificacao, input.Sinopse, input.NotaUsuario,
				input.PosterURL, input.BackdropURL, movieID, userID,
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		rows, err := repo.Update(ctx, movieID, userID, input)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), rows)
	})

	t.Run("unknown row reports zero rows affected", func(t *testing.T) {
		mock.ExpectExec(`UPDATE filmes`).
			WithArgs(
				input.Titulo, input.Diretor, input.Ano, input.Genero, input.Duracao,
				input.Elenco, input.Classificacao, input.Sinopse, input.NotaUsuario,
				input.PosterURL, input.BackdropURL, movieID, userID,
			).
			WillReturnResult(sqlmock.NewResult(0, 0))

		rows, err := repo.Update(ctx, movieID, userID, input)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), rows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieWriteRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewMovieWriteRepository(db)
	ctx := context.Background()

	movieID := uuid.New()
	userID := uuid.New()

	t.Run("existing row", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM filmes WHERE id = \$1 AND user_id = \$2`).
			WithArgs(movieID, userID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		rows, err := repo.Delete(ctx, movieID, userID)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), rows)
	})

	t.Run("unknown row reports zero rows affected", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM filmes`).
			WithArgs(movieID, userID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		rows, err := repo.Delete(ctx, movieID, userID)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), rows)
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM filmes`).
			WithArgs(movieID, userID).
			WillReturnError(errors.New("connection refused"))

		_, err := repo.Delete(ctx, movieID, userID)
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
