// Package geo resolves road distances between postcodes using OpenStreetMap
// Nominatim for geocoding and OSRM for routing, with a great-circle fallback.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/paulmach/orb"
	"golang.org/x/time/rate"

	"esg-index-backend/config"
)

const (
	// EarthRadiusKm is the mean Earth radius used in the great-circle
	// fallback. Kept at 6371 so fallback distances match the documented
	// estimation method exactly.
	EarthRadiusKm = 6371.0

	// DetourFactor scales the great-circle distance to approximate a
	// road route.
	DetourFactor = 1.3

	// FallbackDistanceKm is the terminal fallback when no distance can be
	// produced at all. Distance resolution must never block data entry.
	FallbackDistanceKm = 15.0
)

// Resolver resolves postcode pairs to road distances in km.
type Resolver struct {
	cfg     *config.GeoConfig
	client  *http.Client
	limiter *rate.Limiter
	cache   *cache.Cache
}

// NewResolver creates a resolver from the geo configuration.
func NewResolver(cfg *config.GeoConfig) *Resolver {
	return &Resolver{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), 1),
		// Geocoded postcodes rarely move; cache successes for a day.
		cache: cache.New(24*time.Hour, time.Hour),
	}
}

// Distance returns the road distance in km between two postcodes.
//
// The fallback chain never surfaces an error:
//  1. geocode both postcodes and ask OSRM for a driving route;
//  2. on routing failure, great-circle distance between the geocoded
//     points times DetourFactor;
//  3. on geocoding failure, substitute the configured default coordinates
//     for whichever side is missing and apply the great-circle estimate;
//  4. if no positive finite distance comes out of any tier, return
//     FallbackDistanceKm.
func (r *Resolver) Distance(ctx context.Context, fromPostcode, toPostcode string) float64 {
	origin, originOK := r.geocode(ctx, fromPostcode)
	dest, destOK := r.geocode(ctx, toPostcode)

	if originOK && destOK {
		if km, err := r.route(ctx, origin, dest); err == nil {
			return km
		} else {
			log.Printf("routing %s -> %s failed, using great-circle estimate: %v", fromPostcode, toPostcode, err)
		}
	} else {
		if !originOK {
			origin = orb.Point{r.cfg.DefaultOriginLon, r.cfg.DefaultOriginLat}
		}
		if !destOK {
			dest = orb.Point{r.cfg.DefaultDestLon, r.cfg.DefaultDestLat}
		}
	}

	if km := Haversine(origin, dest) * DetourFactor; km > 0 && !math.IsNaN(km) && !math.IsInf(km, 0) {
		return km
	}
	return FallbackDistanceKm
}

// nominatimResult is one entry of a Nominatim search response.
type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// geocode resolves a postcode to a coordinate. Failures are reported via
// the bool return; they are expected, not exceptional.
func (r *Resolver) geocode(ctx context.Context, postcode string) (orb.Point, bool) {
	if postcode == "" {
		return orb.Point{}, false
	}
	if cached, found := r.cache.Get(postcode); found {
		return cached.(orb.Point), true
	}

	// Honor the upstream usage policy before every outbound request.
	if err := r.limiter.Wait(ctx); err != nil {
		return orb.Point{}, false
	}

	q := url.Values{}
	q.Set("postalcode", postcode)
	q.Set("country", r.cfg.Country)
	q.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.cfg.NominatimURL+"?"+q.Encode(), nil)
	if err != nil {
		return orb.Point{}, false
	}
	req.Header.Set("User-Agent", r.cfg.UserAgent)

	resp, err := r.client.Do(req)
	if err != nil {
		log.Printf("geocoding %q failed: %v", postcode, err)
		return orb.Point{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return orb.Point{}, false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return orb.Point{}, false
	}

	var results []nominatimResult
	if err := json.Unmarshal(body, &results); err != nil || len(results) == 0 {
		return orb.Point{}, false
	}

	lat, errLat := strconv.ParseFloat(results[0].Lat, 64)
	lon, errLon := strconv.ParseFloat(results[0].Lon, 64)
	if errLat != nil || errLon != nil {
		return orb.Point{}, false
	}

	pt := orb.Point{lon, lat}
	r.cache.SetDefault(postcode, pt)
	return pt, true
}

// osrmResponse is the subset of the OSRM route response we consume.
type osrmResponse struct {
	Routes []struct {
		Distance float64 `json:"distance"` // meters
	} `json:"routes"`
}

// route asks OSRM for a driving route and returns its distance in km.
func (r *Resolver) route(ctx context.Context, origin, dest orb.Point) (float64, error) {
	endpoint := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=false",
		r.cfg.OSRMURL, origin.Lon(), origin.Lat(), dest.Lon(), dest.Lat())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("received non-200 status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read response body: %w", err)
	}

	var route osrmResponse
	if err := json.Unmarshal(body, &route); err != nil {
		return 0, fmt.Errorf("failed to unmarshal route response: %w", err)
	}
	if len(route.Routes) == 0 {
		return 0, fmt.Errorf("route response contained no routes")
	}

	return route.Routes[0].Distance / 1000.0, nil
}

// Haversine returns the great-circle distance in km between two points.
func Haversine(a, b orb.Point) float64 {
	lat1 := a.Lat() * math.Pi / 180
	lat2 := b.Lat() * math.Pi / 180
	dLat := (b.Lat() - a.Lat()) * math.Pi / 180
	dLon := (b.Lon() - a.Lon()) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}
