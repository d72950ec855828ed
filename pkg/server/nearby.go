package server

import (
	"math"
	"net/http"
	"sort"
	"time"
)

const (
	maxDealsPerVenue = 3

	sortStandard = "standard"
	sortCheapest = "cheapest"
)

type dealView struct {
	Beer      string    `json:"beer"`
	Style     string    `json:"style"`
	Price     float64   `json:"price"`
	Rating    float64   `json:"rating"`
	Verified  bool      `json:"verified"`
	UpdatedAt time.Time `json:"updatedAt"`
	PhotoURL  *string   `json:"photo_url"`
}

type venueView struct {
	ID      string     `json:"id"`
	Name    string     `json:"name"`
	City    string     `json:"city"`
	Address *string    `json:"address"`
	OpenNow bool       `json:"open_now"`
	Deals   []dealView `json:"deals"`
}

// Nearby lists venues with their most recent deals, at most three per venue.
// Without an explicit sort mode the cheapest venues come first.
func (s *Server) Nearby(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")

	sortMode := r.URL.Query().Get("sort")
	if sortMode == "" {
		sortMode = sortCheapest
	}

	venues, err := s.venues.GetVenues(r.Context(), city)
	if err != nil {
		s.writeError(w, err)

		return
	}

	deals, err := s.prices.GetRecentDeals(r.Context(), city, maxDealsPerVenue)
	if err != nil {
		s.writeError(w, err)

		return
	}

	dealsByVenue := make(map[string][]dealView, len(venues))

	for _, deal := range deals {
		dealsByVenue[deal.VenueID] = append(dealsByVenue[deal.VenueID], dealView{
			Beer:      deal.Beer,
			Style:     deal.Style,
			Price:     deal.Price,
			Rating:    deal.Rating,
			Verified:  deal.Verified,
			UpdatedAt: deal.UpdatedAt,
			PhotoURL:  deal.PhotoURL,
		})
	}

	results := make([]venueView, 0, len(venues))

	for _, venue := range venues {
		venueDeals := dealsByVenue[venue.ID]
		if venueDeals == nil {
			venueDeals = []dealView{}
		}

		results = append(results, venueView{
			ID:      venue.ID,
			Name:    venue.Name,
			City:    venue.City,
			Address: venue.Address,
			OpenNow: venue.OpenNow,
			Deals:   venueDeals,
		})
	}

	if sortMode == sortCheapest {
		sort.SliceStable(results, func(i, j int) bool {
			return minDealPrice(results[i].Deals) < minDealPrice(results[j].Deals)
		})
	}

	writeJSON(w, http.StatusOK, results)
}

// minDealPrice treats a venue without deals as infinitely expensive so it
// sorts last.
func minDealPrice(deals []dealView) float64 {
	minPrice := math.Inf(1)

	for _, deal := range deals {
		if deal.Price < minPrice {
			minPrice = deal.Price
		}
	}

	return minPrice
}
