// Package server exposes the HTTP surface: price logging, venue listing and
// the nearby deals view.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"olradar.se/Olradar/configs"
	"olradar.se/Olradar/pkg/model"
)

// Every logged price is denominated in SEK; the store keeps a currency column
// for a conversion feature that never landed.
const currencyCode = "SEK"

var ErrValidation = errors.New("invalid request")

type venueRepository interface {
	AddVenue(ctx context.Context, venue model.Venue) (*model.Venue, error)
	GetVenues(ctx context.Context, city string) ([]*model.Venue, error)
}

type beerRepository interface {
	UpsertBeer(ctx context.Context, beer model.Beer) (*model.Beer, error)
}

type priceRepository interface {
	AddPrice(ctx context.Context, price model.Price) (*model.Price, error)
	GetRecentDeals(ctx context.Context, city string, limit int) ([]*model.Deal, error)
}

type photoStore interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) error
	PublicURL(path string) string
}

type Server struct {
	venues venueRepository
	beers  beerRepository
	prices priceRepository
	photos photoStore
	logger *zap.Logger
	config *configs.Config
}

func New(venues venueRepository, beers beerRepository, prices priceRepository, photos photoStore, logger *zap.Logger, config *configs.Config) *Server {
	return &Server{venues: venues, beers: beers, prices: prices, photos: photos, logger: logger, config: config}
}

// Routes wires the handlers onto a fresh router.
func (s *Server) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(s.requestLogger)

	router.Post("/log", s.LogPrice)
	router.Get("/venues", s.ListVenues)
	router.Get("/nearby", s.Nearby)

	return router
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError maps the error taxonomy onto status codes: validation failures
// are 400, everything else is a store failure reported as 500 with the
// underlying message.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, ErrValidation) {
		status = http.StatusBadRequest
	} else {
		s.logger.Error("request failed", zap.Error(err))
	}

	writeJSON(w, status, errorResponse{Error: err.Error()})
}
