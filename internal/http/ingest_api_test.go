package http_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"dealradar/internal/domain"
)

func TestScrapeDealsJayanagar(t *testing.T) {
	fetch := &stubFetcher{listings: map[string][]domain.RawListing{
		"Zudio Jayanagar":        {{"title": "Flat 40% Off", "discount": "40%"}},
		"Levi's Store Jayanagar": {{"title": "Denim", "original_price": "$100", "sale_price": "$60"}},
		"H&M Jayanagar":          {{"title": "Too small", "discount": "5%"}},
	}}
	app := newTestApp(t, fetch)

	req := httptest.NewRequest("POST",
		"/api/scrape-deals?location=Jayanagar+2nd+Block,+Bengaluru&lat=12.9399&lng=77.5826&category=retail", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status %d", resp.StatusCode)
	}

	var body struct {
		Message       string `json:"message"`
		AcceptedCount int    `json:"accepted_count"`
		SourceCount   int    `json:"source_count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(body.Message, "stores") {
		t.Fatalf("message = %q", body.Message)
	}
	if body.SourceCount != 3 {
		t.Fatalf("source_count = %d, want the 3 resolved retail stores", body.SourceCount)
	}
	// The 5%-off listing is under the ingestion floor.
	if body.AcceptedCount != 2 {
		t.Fatalf("accepted_count = %d, want 2", body.AcceptedCount)
	}

	// Ingested deals are immediately queryable.
	deals := getDeals(t, app, "?lat=12.9399&lng=77.5826&radius=5.0")
	if len(deals) != 2 {
		t.Fatalf("queryable deals = %d, want 2", len(deals))
	}
}

func TestScrapeDealsRequiresLocation(t *testing.T) {
	app := newTestApp(t, &stubFetcher{})

	resp, err := app.Test(httptest.NewRequest("POST", "/api/scrape-deals?category=retail", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status %d, want 400", resp.StatusCode)
	}
}

func TestScrapeDealsSurvivesFetchFailures(t *testing.T) {
	fetch := &stubFetcher{
		listings: map[string][]domain.RawListing{
			"Pizza Paradise": {{"title": "BOGO Pizza", "discount": "50%"}},
		},
		fail: map[string]error{
			"Gourmet Grill": errors.New("502 from upstream"),
		},
	}
	app := newTestApp(t, fetch)

	req := httptest.NewRequest("POST",
		"/api/scrape-deals?location=San+Francisco,+CA&category=restaurant", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status %d; one bad store must not fail the run", resp.StatusCode)
	}

	var body struct {
		AcceptedCount int `json:"accepted_count"`
		SourceCount   int `json:"source_count"`
		Failures      []struct {
			Business string `json:"business"`
		} `json:"failures"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.SourceCount != 2 || body.AcceptedCount != 1 {
		t.Fatalf("body = %+v", body)
	}
	if len(body.Failures) != 1 || body.Failures[0].Business != "Gourmet Grill" {
		t.Fatalf("failures = %+v", body.Failures)
	}
}
