package server

import "net/http"

type venueListItem struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	City    string  `json:"city"`
	Address *string `json:"address"`
}

// ListVenues returns venues ordered by name, optionally filtered by city.
// The response is always an array, even when nothing matches.
func (s *Server) ListVenues(w http.ResponseWriter, r *http.Request) {
	venues, err := s.venues.GetVenues(r.Context(), r.URL.Query().Get("city"))
	if err != nil {
		s.writeError(w, err)

		return
	}

	items := make([]venueListItem, 0, len(venues))
	for _, venue := range venues {
		items = append(items, venueListItem{ID: venue.ID, Name: venue.Name, City: venue.City, Address: venue.Address})
	}

	writeJSON(w, http.StatusOK, items)
}
