package store

import "github.com/juanpgarcia/cine-estructurales/internal/model"

// DefaultShowing is the single screening on the cartelera.
func DefaultShowing() model.Showing {
	return model.Showing{Pelicula: "Avengers", Hora: "18:00", Sala: "Sala IMAX"}
}

// DefaultMenu builds the fixed combo menu from the leaf catalog.  Each combo
// applies a bundle discount (a negative adjustment) over the sum of its
// items; Combo Familiar nests Combo Pareja to bundle the bundle.
func DefaultMenu() []model.MenuItem {
	individual := model.NewCombo("Combo Individual", -2.0,
		model.NewItem("Crispetas Medianas", 6.0),
		model.NewItem("Gaseosa 16oz", 8.0),
	)
	pareja := model.NewCombo("Combo Pareja", -4.0,
		model.NewItem("Crispetas Grandes", 9.0),
		model.NewItem("Gaseosa 16oz", 8.0),
		model.NewItem("Gaseosa 16oz", 8.0),
		model.NewItem("Chocolatina Jet", 3.0),
	)
	familiar := model.NewCombo("Combo Familiar", -6.0,
		model.NewCombo("Combo Pareja", -4.0,
			model.NewItem("Crispetas Grandes", 9.0),
			model.NewItem("Gaseosa 16oz", 8.0),
			model.NewItem("Gaseosa 16oz", 8.0),
			model.NewItem("Chocolatina Jet", 3.0),
		),
		model.NewItem("Crispetas Grandes", 9.0),
		model.NewItem("Gaseosa 16oz", 8.0),
		model.NewItem("Gaseosa 16oz", 8.0),
		model.NewItem("Chocolatina Jet", 3.0),
		model.NewItem("Nachos con Queso", 7.0),
	)
	return []model.MenuItem{individual, pareja, familiar}
}
