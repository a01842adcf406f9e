package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swiftwheels/swiftwheels-web/models"
)

func testFleet() []models.Vehicle {
	return []models.Vehicle{
		{ID: 1, Name: "Toyota Corolla", Slug: "toyota-corolla", Category: models.CategorySedan, PricePerDay: 45},
		{ID: 2, Name: "Honda CR-V", Slug: "honda-cr-v", Category: models.CategorySUV, PricePerDay: 70},
	}
}

func TestCatalogService_Fleet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/fleet/", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(testFleet())
	}))
	defer srv.Close()

	svc := NewCatalogService(NewClient(srv.URL))
	fleet, err := svc.Fleet(context.Background())
	assert.NoError(t, err)
	assert.Len(t, fleet, 2)
	assert.Equal(t, "toyota-corolla", fleet[0].Slug)
}

func TestCatalogService_FleetEmptyListIsNotNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	svc := NewCatalogService(NewClient(srv.URL))
	fleet, err := svc.Fleet(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, fleet)
	assert.Len(t, fleet, 0)
}

func TestCatalogService_FleetServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	svc := NewCatalogService(NewClient(srv.URL))
	_, err := svc.Fleet(context.Background())
	assert.Error(t, err)
	statusErr, ok := err.(*StatusError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, statusErr.Status)
}

func TestCatalogService_FleetBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	svc := NewCatalogService(NewClient(srv.URL))
	_, err := svc.Fleet(context.Background())
	assert.Error(t, err)
}

func TestCatalogService_VehicleBySlug(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/fleet/honda-cr-v/", r.URL.Path)
		_ = json.NewEncoder(w).Encode(testFleet()[1])
	}))
	defer srv.Close()

	svc := NewCatalogService(NewClient(srv.URL))
	v, err := svc.VehicleBySlug(context.Background(), "honda-cr-v")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), v.ID)
	assert.Equal(t, models.CategorySUV, v.Category)
}

func TestCatalogService_VehicleBySlugNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	svc := NewCatalogService(NewClient(srv.URL))
	_, err := svc.VehicleBySlug(context.Background(), "no-such-car")
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}
