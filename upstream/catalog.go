package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/swiftwheels/swiftwheels-web/models"
)

// ErrVehicleNotFound is returned when the catalog has no vehicle for a slug.
var ErrVehicleNotFound = errors.New("vehicle not found")

// CatalogService reads the fleet from the rental API. There is no retry, no
// pagination and no caching: every page visit fetches from scratch.
type CatalogService interface {
	Fleet(ctx context.Context) ([]models.Vehicle, error)
	VehicleBySlug(ctx context.Context, slug string) (*models.Vehicle, error)
}

type catalogService struct {
	client *Client
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(client *Client) CatalogService {
	return &catalogService{client: client}
}

func (s *catalogService) Fleet(ctx context.Context) ([]models.Vehicle, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.client.base+"/api/v1/fleet/", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build fleet request: %w", err)
	}
	resp, err := s.client.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fleet request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Status: resp.StatusCode}
	}

	var fleet []models.Vehicle
	if err := json.NewDecoder(resp.Body).Decode(&fleet); err != nil {
		return nil, fmt.Errorf("failed to decode fleet response: %w", err)
	}
	// Because the templates require that the vehicle list exists, if
	// len == 0 then we will just return an empty data object
	if len(fleet) == 0 {
		fleet = []models.Vehicle{}
	}
	zap.S().Debugw("fetched fleet", "count", len(fleet))
	return fleet, nil
}

func (s *catalogService) VehicleBySlug(ctx context.Context, slug string) (*models.Vehicle, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/api/v1/fleet/%s/", s.client.base, url.PathEscape(slug)), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build vehicle request: %w", err)
	}
	resp, err := s.client.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vehicle request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrVehicleNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Status: resp.StatusCode}
	}

	var vehicle models.Vehicle
	if err := json.NewDecoder(resp.Body).Decode(&vehicle); err != nil {
		return nil, fmt.Errorf("failed to decode vehicle response: %w", err)
	}
	return &vehicle, nil
}
