package training

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts all training endpoints onto the given router
// under the /trainings prefix.
func RegisterRoutes(r chi.Router) {
	r.Route("/trainings", func(r chi.Router) {
		r.Get("/types", ListTypes)
		r.Post("/summary", Summary)
		r.Post("/batch", Batch)
	})
}
