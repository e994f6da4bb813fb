package models

// Suggestion is one display-ready entry aggregated from the metadata API.
// It is ephemeral: built per request, never persisted.
//
// Ano is a string because absent release dates collapse to "N/A"; Duracao is
// preformatted as "<n> minutos". Nil pointers mark absent upstream data.
type Suggestion struct {
	Titulo        string  `json:"titulo"`
	Diretor       *string `json:"diretor"`
	Ano           string  `json:"ano"`
	Genero        *string `json:"genero"`
	Duracao       *string `json:"duracao"`
	Elenco        *string `json:"elenco"`
	Sinopse       *string `json:"sinopse"`
	Classificacao string  `json:"classificacao"`
	Popularidade  float64 `json:"popularidade"`
	PosterURL     *string `json:"posterUrl"`
	BackdropURL   *string `json:"backdropUrl"`
}

// SuggestionEnvelope mirrors the response shape the frontend expects:
// {"data":{"results":[...]}}.
type SuggestionEnvelope struct {
	Data SuggestionResults `json:"data"`
}

// SuggestionResults wraps the ranked suggestion list.
type SuggestionResults struct {
	Results []Suggestion `json:"results"`
}
