package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/abertanha/movie-diary/internal/logger"
	"github.com/abertanha/movie-diary/internal/models"
)

const movieColumns = `
	id, titulo, diretor, ano, genero, duracao, elenco, classificacao,
	sinopse, "notaUsuario", "posterUrl", "backdropUrl", "dataAdicao", user_id
`

type MovieReadRepository struct {
	db *sqlx.DB
}

func NewMovieReadRepository(db *sqlx.DB) *MovieReadRepository {
	return &MovieReadRepository{db: db}
}

// GetByID returns the entry with the given id owned by userID, or nil when
// absent. Entries of other users are invisible, not forbidden.
func (r *MovieReadRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.MovieDB, error) {
	query := `SELECT ` + movieColumns + ` FROM filmes WHERE id = $1 AND user_id = $2`

	var movie models.MovieDB
	err := r.db.GetContext(ctx, &movie, query, id, userID)

	logger.Log.Infow("movie lookup",
		"query", strings.Join(strings.Fields(query), " "),
		"id", id,
		"user_id", userID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &movie, nil
}

// ListByUser returns all entries of a user, newest first.
func (r *MovieReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.MovieDB, error) {
	query := `SELECT ` + movieColumns + ` FROM filmes WHERE user_id = $1 ORDER BY "dataAdicao" DESC`

	movies := []models.MovieDB{}
	err := r.db.SelectContext(ctx, &movies, query, userID)

	logger.Log.Infow("movie list",
		"query", strings.Join(strings.Fields(query), " "),
		"user_id", userID,
		"count", len(movies),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return movies, nil
}

// SearchByTitle returns the user's entries whose title contains the given
// text, case-insensitively.
func (r *MovieReadRepository) SearchByTitle(ctx context.Context, userID uuid.UUID, titulo string) ([]models.MovieDB, error) {
	query := `SELECT ` + movieColumns + ` FROM filmes WHERE user_id = $1 AND titulo ILIKE $2`

	movies := []models.MovieDB{}
	err := r.db.SelectContext(ctx, &movies, query, userID, "%"+titulo+"%")

	logger.Log.Infow("movie title search",
		"query", strings.Join(strings.Fields(query), " "),
		"user_id", userID,
		"titulo", titulo,
		"count", len(movies),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return movies, nil
}

type MovieWriteRepository struct {
	db *sqlx.DB
}

func NewMovieWriteRepository(db *sqlx.DB) *MovieWriteRepository {
	return &MovieWriteRepository{db: db}
}

// Save inserts a new entry and returns the stored record with the
// server-assigned id and timestamp.
func (r *MovieWriteRepository) Save(ctx context.Context, userID uuid.UUID, in models.MovieInput) (*models.MovieDB, error) {
	query := `
		INSERT INTO filmes (
			titulo, diretor, ano, genero, duracao, elenco, classificacao,
			sinopse, "notaUsuario", "posterUrl", "backdropUrl", user_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + movieColumns

	var movie models.MovieDB
	err := r.db.GetContext(ctx, &movie, query,
		in.Titulo, in.Diretor, in.Ano, in.Genero, in.Duracao, in.Elenco,
		in.Classificacao, in.Sinopse, in.NotaUsuario, in.PosterURL, in.BackdropURL,
		userID,
	)

	logger.Log.Infow("movie insert",
		"query", strings.Join(strings.Fields(query), " "),
		"user_id", userID,
		"titulo", in.Titulo,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &movie, nil
}

// Update overwrites all client-supplied fields of an entry. Returns the
// number of rows affected; 0 means the entry does not exist for this user.
func (r *MovieWriteRepository) Update(ctx context.Context, id, userID uuid.UUID, in models.MovieInput) (int64, error) {
	query := `
		UPDATE filmes
		SET titulo = $1, diretor = $2, ano = $3, genero = $4, duracao = $5,
		    elenco = $6, classificacao = $7, sinopse = $8, "notaUsuario" = $9,
		    "posterUrl" = $10, "backdropUrl" = $11
		WHERE id = $12 AND user_id = $13
	`

	res, err := r.db.ExecContext(ctx, query,
		in.Titulo, in.Diretor, in.Ano, in.Genero, in.Duracao, in.Elenco,
		in.Classificacao, in.Sinopse, in.NotaUsuario, in.PosterURL, in.BackdropURL,
		id, userID,
	)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("movie update",
		"query", strings.Join(strings.Fields(query), " "),
		"id", id,
		"user_id", userID,
		"rows", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}

// Delete removes an entry. Returns the number of rows affected; 0 means the
// entry does not exist for this user.
func (r *MovieWriteRepository) Delete(ctx context.Context, id, userID uuid.UUID) (int64, error) {
	const query = `DELETE FROM filmes WHERE id = $1 AND user_id = $2`

	res, err := r.db.ExecContext(ctx, query, id, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("movie delete",
		"query", query,
		"id", id,
		"user_id", userID,
		"rows", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
