package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.openly.dev/pointy"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"olradar.se/Olradar/pkg/model"
	"olradar.se/Olradar/pkg/slug"
)

const (
	maxUploadBytes = 10 << 20

	priceIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	priceIDSuffix   = 5
)

type logResponse struct {
	OK       bool    `json:"ok"`
	ID       string  `json:"id"`
	PhotoURL *string `json:"photo_url"`
}

type logForm struct {
	VenueID   string
	VenueName string
	City      string
	Address   string
	Beer      string
	Style     string
	Price     float64
	Rating    float64
	Verified  bool
}

// LogPrice records one price observation: resolve the venue, upsert the beer,
// attach the photo if one was sent, then write the immutable price row. The
// steps are deliberately not transactional: a leftover venue or beer from a
// failed run is idempotent to recreate.
func (s *Server) LogPrice(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.writeError(w, fmt.Errorf("%w: %s", ErrValidation, err))

		return
	}

	form := parseLogForm(r)

	if err := form.validate(); err != nil {
		s.writeError(w, err)

		return
	}

	ctx := r.Context()

	venueID, err := s.resolveVenue(ctx, form)
	if err != nil {
		s.writeError(w, err)

		return
	}

	beer, err := s.beers.UpsertBeer(ctx, model.Beer{ID: slug.BeerID(form.Beer), Name: form.Beer, Style: form.Style})
	if err != nil {
		s.writeError(w, err)

		return
	}

	photoURL := s.attachPhoto(ctx, r, venueID, form.Beer)

	price := model.Price{
		ID:            newPriceID(),
		VenueID:       venueID,
		BeerID:        beer.ID,
		PriceOriginal: form.Price,
		Currency:      currencyCode,
		PriceSEK:      form.Price,
		Rating:        form.Rating,
		Verified:      form.Verified,
		PhotoURL:      photoURL,
	}

	saved, err := s.prices.AddPrice(ctx, price)
	if err != nil {
		s.writeError(w, err)

		return
	}

	s.logger.Info("logged price",
		zap.String("price_id", saved.ID),
		zap.String("venue_id", venueID),
		zap.String("beer_id", beer.ID),
		zap.Float64("price", form.Price))

	writeJSON(w, http.StatusOK, logResponse{OK: true, ID: saved.ID, PhotoURL: photoURL})
}

func parseLogForm(r *http.Request) logForm {
	price, _ := strconv.ParseFloat(r.FormValue("price"), 64)
	rating, _ := strconv.ParseFloat(r.FormValue("rating"), 64)

	return logForm{
		VenueID:   strings.TrimSpace(r.FormValue("venueId")),
		VenueName: strings.TrimSpace(r.FormValue("venueName")),
		City:      strings.TrimSpace(r.FormValue("city")),
		Address:   strings.TrimSpace(r.FormValue("address")),
		Beer:      strings.TrimSpace(r.FormValue("beer")),
		Style:     strings.TrimSpace(r.FormValue("style")),
		Price:     price,
		Rating:    rating,
		Verified:  r.FormValue("verified") == "1",
	}
}

func (f *logForm) validate() error {
	var errs error

	if f.VenueID == "" && (f.VenueName == "" || f.City == "") {
		multierr.AppendInto(&errs, fmt.Errorf("%w: venueId or venueName and city is required", ErrValidation))
	}

	if f.Beer == "" {
		multierr.AppendInto(&errs, fmt.Errorf("%w: beer is required", ErrValidation))
	}

	if f.Price <= 0 {
		multierr.AppendInto(&errs, fmt.Errorf("%w: price must be positive", ErrValidation))
	}

	return errs
}

// resolveVenue uses an explicit venue id as-is, without checking it exists.
// A venue named for the first time gets a slug-derived id and a fresh row;
// a duplicate key on that insert surfaces as a store failure.
func (s *Server) resolveVenue(ctx context.Context, form logForm) (string, error) {
	if form.VenueID != "" {
		return form.VenueID, nil
	}

	venue := model.Venue{
		ID:      slug.VenueID(form.VenueName),
		Name:    form.VenueName,
		City:    form.City,
		Country: s.config.Venues.DefaultCountry,
		OpenNow: true,
	}

	if form.Address != "" {
		venue.Address = pointy.String(form.Address)
	}

	created, err := s.venues.AddVenue(ctx, venue)
	if err != nil {
		return "", err
	}

	s.logger.Info("created venue", zap.String("venue_id", created.ID), zap.String("city", created.City))

	return created.ID, nil
}

// attachPhoto is best effort: a missing or zero-byte file means no photo, and
// an upload failure is logged and swallowed so the price still gets recorded.
func (s *Server) attachPhoto(ctx context.Context, r *http.Request, venueID string, beerName string) *string {
	file, header, err := r.FormFile("photo")
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) {
			s.logger.Warn("could not read photo from form", zap.Error(err))
		}

		return nil
	}
	defer file.Close() //nolint:errcheck // read-only temp file

	data, err := io.ReadAll(file)
	if err != nil {
		s.logger.Warn("could not read photo upload", zap.Error(err))

		return nil
	}

	if len(data) == 0 {
		return nil
	}

	contentType := header.Header.Get("Content-Type")
	path := fmt.Sprintf("%s/%d-%s.%s", venueID, time.Now().UnixMilli(), slug.Make(beerName), extensionFor(contentType))

	if err := s.photos.Upload(ctx, path, data, contentType); err != nil {
		s.logger.Warn("photo upload failed, logging price without photo", zap.String("path", path), zap.Error(err))

		return nil
	}

	return pointy.String(s.photos.PublicURL(path))
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	default:
		return "jpg"
	}
}

func newPriceID() string {
	suffix := gonanoid.MustGenerate(priceIDAlphabet, priceIDSuffix)

	return "price-" + strconv.FormatInt(time.Now().UnixMilli(), 36) + suffix
}
