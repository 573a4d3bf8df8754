package http_test

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type dealJSON struct {
	ID                 string  `json:"id"`
	Title              string  `json:"title"`
	DiscountPercentage float64 `json:"discount_percentage"`
	BusinessName       string  `json:"business_name"`
	Category           string  `json:"category"`
	Location           struct {
		Lat     float64 `json:"lat"`
		Lng     float64 `json:"lng"`
		Address string  `json:"address"`
	} `json:"location"`
	CreatedAt string   `json:"created_at"`
	Distance  *float64 `json:"distance"`
}

func loadSamples(t *testing.T, app *fiber.App) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("POST", "/api/sample-deals", nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("sample load status %d", resp.StatusCode)
	}
	var body struct {
		Message string `json:"message"`
		Count   int    `json:"count"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(body.Message, "Generated") {
		t.Fatalf("message = %q", body.Message)
	}
	return body.Count
}

func getDeals(t *testing.T, app *fiber.App, query string) []dealJSON {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", "/api/deals"+query, nil))
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("deals status %d for %q", resp.StatusCode, query)
	}
	var deals []dealJSON
	if err := json.NewDecoder(resp.Body).Decode(&deals); err != nil {
		t.Fatal(err)
	}
	return deals
}

func TestWelcome(t *testing.T) {
	app := newTestApp(t, &stubFetcher{})
	resp, err := app.Test(httptest.NewRequest("GET", "/api/", nil))
	if err != nil {
		t.Fatal(err)
	}
	var body map[string]string
	_ = json.NewDecoder(resp.Body).Decode(&body)
	if body["message"] != "Welcome to the Real-Time Local Deal Finder API" {
		t.Fatalf("welcome = %q", body["message"])
	}
}

func TestSampleLoadTwiceSameCount(t *testing.T) {
	app := newTestApp(t, &stubFetcher{})
	n1 := loadSamples(t, app)
	n2 := loadSamples(t, app)
	if n1 != n2 || n1 == 0 {
		t.Fatalf("counts: %d then %d", n1, n2)
	}
	if got := getDeals(t, app, ""); len(got) != n2 {
		t.Fatalf("collection has %d deals after reload of %d", len(got), n2)
	}
}

func TestDealsNearJayanagar(t *testing.T) {
	app := newTestApp(t, &stubFetcher{})
	loadSamples(t, app)

	deals := getDeals(t, app, "?lat=12.9399&lng=77.5826&radius=5.0&min_discount=15.0")
	if len(deals) == 0 {
		t.Fatal("no deals near Jayanagar")
	}
	prev := -1.0
	for _, d := range deals {
		if !strings.Contains(d.Location.Address, "Bengaluru") {
			t.Fatalf("non-Bengaluru deal leaked: %s", d.Location.Address)
		}
		if d.Distance == nil || *d.Distance > 5.0 {
			t.Fatalf("distance out of radius: %v", d.Distance)
		}
		if *d.Distance < prev {
			t.Fatalf("not distance-sorted: %v after %v", *d.Distance, prev)
		}
		prev = *d.Distance
	}
}

func TestDealsSanFranciscoRestaurants(t *testing.T) {
	app := newTestApp(t, &stubFetcher{})
	loadSamples(t, app)

	deals := getDeals(t, app, "?lat=37.7749&lng=-122.4194&category=restaurant&min_discount=15.0")
	if len(deals) == 0 {
		t.Fatal("no SF restaurant deals")
	}
	for _, d := range deals {
		if d.Category != "restaurant" {
			t.Fatalf("category leak: %s", d.Category)
		}
		if !strings.Contains(d.Location.Address, "San Francisco") {
			t.Fatalf("city leak: %s", d.Location.Address)
		}
		if d.DiscountPercentage < 15.0 {
			t.Fatalf("discount below floor: %v", d.DiscountPercentage)
		}
	}
}

func TestDealsWithoutCoordsOmitsDistance(t *testing.T) {
	app := newTestApp(t, &stubFetcher{})
	loadSamples(t, app)

	deals := getDeals(t, app, "?min_discount=30")
	if len(deals) == 0 {
		t.Fatal("no deals at 30%+")
	}
	for _, d := range deals {
		if d.Distance != nil {
			t.Fatalf("distance attached without coords: %v", *d.Distance)
		}
		if d.DiscountPercentage < 30 {
			t.Fatalf("min_discount not applied: %v", d.DiscountPercentage)
		}
	}
}

func TestDealsValidation(t *testing.T) {
	app := newTestApp(t, &stubFetcher{})

	for _, q := range []string{
		"?lat=north&lng=77.58",
		"?lat=12.93&lng=east",
		"?radius=-2",
		"?min_discount=lots",
		"?category=DROP%20TABLE",
	} {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/deals"+q, nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("query %q: status %d, want 400", q, resp.StatusCode)
		}
	}
}
