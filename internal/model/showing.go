package model

// Showing represents the single scheduled screening the storefront sells
// tickets for.  Only one showing exists per process; it is built once at
// startup and never mutated afterwards.
//
// Fields:
//
//	Pelicula – movie title shown on the cartelera.
//	Hora     – start time exactly as displayed to visitors (e.g. "18:00").
//	Sala     – name of the room where the screening takes place.
type Showing struct {
	Pelicula string `json:"pelicula"`
	Hora     string `json:"hora"`
	Sala     string `json:"sala"`
}
