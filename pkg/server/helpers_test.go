package server_test

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"

	"olradar.se/Olradar/pkg/model"
)

type fakeVenueRepo struct {
	venues []*model.Venue
	added  []model.Venue
	addErr error
	getErr error
}

func (f *fakeVenueRepo) AddVenue(_ context.Context, venue model.Venue) (*model.Venue, error) {
	if f.addErr != nil {
		return nil, f.addErr
	}

	f.added = append(f.added, venue)

	return &venue, nil
}

func (f *fakeVenueRepo) GetVenues(_ context.Context, _ string) ([]*model.Venue, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}

	return f.venues, nil
}

type fakeBeerRepo struct {
	upserted []model.Beer
	err      error
}

func (f *fakeBeerRepo) UpsertBeer(_ context.Context, beer model.Beer) (*model.Beer, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.upserted = append(f.upserted, beer)

	return &beer, nil
}

type fakePriceRepo struct {
	added     []model.Price
	deals     []*model.Deal
	lastCity  string
	lastLimit int
	addErr    error
	getErr    error
}

func (f *fakePriceRepo) AddPrice(_ context.Context, price model.Price) (*model.Price, error) {
	if f.addErr != nil {
		return nil, f.addErr
	}

	f.added = append(f.added, price)

	return &price, nil
}

func (f *fakePriceRepo) GetRecentDeals(_ context.Context, city string, limit int) ([]*model.Deal, error) {
	f.lastCity = city
	f.lastLimit = limit

	if f.getErr != nil {
		return nil, f.getErr
	}

	return f.deals, nil
}

type upload struct {
	path        string
	contentType string
	size        int
}

type fakePhotoStore struct {
	uploads []upload
	err     error
}

func (f *fakePhotoStore) Upload(_ context.Context, path string, data []byte, contentType string) error {
	if f.err != nil {
		return f.err
	}

	f.uploads = append(f.uploads, upload{path: path, contentType: contentType, size: len(data)})

	return nil
}

func (f *fakePhotoStore) PublicURL(path string) string {
	return "https://cdn.test/photos/" + path
}

func multipartBody(fields map[string]string, photoName string, photo []byte, photoType string) (*bytes.Buffer, string) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	for key, value := range fields {
		_ = writer.WriteField(key, value)
	}

	if photoName != "" {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="photo"; filename=%q`, photoName))
		header.Set("Content-Type", photoType)

		part, _ := writer.CreatePart(header)
		_, _ = part.Write(photo)
	}

	_ = writer.Close()

	return buf, writer.FormDataContentType()
}
