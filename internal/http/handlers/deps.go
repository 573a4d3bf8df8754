package handlers

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"dealradar/internal/config"
	"dealradar/internal/directory"
	"dealradar/internal/repos"
	"dealradar/internal/scrape"
	"dealradar/internal/services"
)

type Deps struct {
	HomeHandler   *HomeHandler
	DealHandler   *DealHandler
	IngestHandler *IngestHandler
	SampleHandler *SampleHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config) *Deps {
	dealRepo := repos.NewDealRepo(db)

	fetcher := scrape.NewFirecrawl(cfg.FirecrawlKey,
		scrape.WithBaseURL(cfg.FirecrawlURL),
		scrape.WithHTTPClient(&http.Client{Timeout: cfg.FetchTimeout}),
	)

	dealSvc := services.NewDealService(dealRepo)
	ingestSvc := services.NewIngestService(directory.Default(), fetcher, dealRepo)
	sampleSvc := services.NewSampleService(dealRepo)

	return &Deps{
		HomeHandler:   &HomeHandler{Deals: dealSvc},
		DealHandler:   &DealHandler{Deals: dealSvc},
		IngestHandler: &IngestHandler{Ingest: ingestSvc},
		SampleHandler: &SampleHandler{Sample: sampleSvc},
	}
}
