package models

import (
	"time"

	"github.com/google/uuid"
)

// MovieDB represents a collection entry in the database.
//
// Column and JSON names keep the Portuguese field names of the persisted
// schema (titulo, diretor, ...), which the frontend consumes directly.
type MovieDB struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Titulo        string    `json:"titulo" db:"titulo"`
	Diretor       string    `json:"diretor" db:"diretor"`
	Ano           int       `json:"ano" db:"ano"`
	Genero        string    `json:"genero" db:"genero"`
	Duracao       int       `json:"duracao" db:"duracao"`
	Elenco        string    `json:"elenco" db:"elenco"`
	Classificacao string    `json:"classificacao" db:"classificacao"`
	Sinopse       string    `json:"sinopse" db:"sinopse"`
	NotaUsuario   float64   `json:"notaUsuario" db:"notaUsuario"`
	PosterURL     *string   `json:"posterUrl" db:"posterUrl"`
	BackdropURL   *string   `json:"backdropUrl" db:"backdropUrl"`
	DataAdicao    time.Time `json:"dataAdicao" db:"dataAdicao"`
	UserID        uuid.UUID `json:"-" db:"user_id"`
}

// MovieInput carries the client-supplied fields of a collection entry,
// shared by create and update.
type MovieInput struct {
	Titulo        string  `json:"titulo" validate:"required"`
	Diretor       string  `json:"diretor"`
	Ano           int     `json:"ano"`
	Genero        string  `json:"genero"`
	Duracao       int     `json:"duracao"`
	Elenco        string  `json:"elenco"`
	Classificacao string  `json:"classificacao"`
	Sinopse       string  `json:"sinopse"`
	NotaUsuario   float64 `json:"notaUsuario" validate:"gte=0,lte=5"`
	PosterURL     *string `json:"posterUrl" validate:"omitempty,url"`
	BackdropURL   *string `json:"backdropUrl" validate:"omitempty,url"`
}
