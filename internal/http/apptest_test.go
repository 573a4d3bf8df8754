package http_test

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"dealradar/internal/directory"
	"dealradar/internal/domain"
	"dealradar/internal/http/handlers"
	applog "dealradar/internal/log"
	"dealradar/internal/repos"
	"dealradar/internal/services"
)

// stubFetcher lets API tests script the external fetch service.
type stubFetcher struct {
	listings map[string][]domain.RawListing
	fail     map[string]error
}

func (s *stubFetcher) Fetch(_ context.Context, b domain.Business) ([]domain.RawListing, error) {
	if err, ok := s.fail[b.Name]; ok {
		return nil, err
	}
	return s.listings[b.Name], nil
}

// newTestApp wires the API routes the way main does, against an in-memory
// database and a scripted fetcher.
func newTestApp(t *testing.T, fetch *stubFetcher) *fiber.App {
	t.Helper()

	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = db.Close() })

	dealRepo := repos.NewDealRepo(db)
	dealSvc := services.NewDealService(dealRepo)
	ingestSvc := services.NewIngestService(directory.Default(), fetch, dealRepo)
	sampleSvc := services.NewSampleService(dealRepo)

	dealH := &handlers.DealHandler{Deals: dealSvc}
	ingestH := &handlers.IngestHandler{Ingest: ingestSvc}
	sampleH := &handlers.SampleHandler{Sample: sampleSvc}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "something went wrong, please retry",
			})
		},
	})
	app.Use(requestid.New())

	api := app.Group("/api")
	api.Get("/", dealH.Welcome)
	api.Get("/deals", dealH.List)
	api.Post("/scrape-deals", ingestH.Trigger)
	api.Post("/sample-deals", sampleH.Load)

	return app
}
