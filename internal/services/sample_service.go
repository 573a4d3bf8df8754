package services

import (
	"time"

	"github.com/google/uuid"

	"dealradar/internal/domain"
	"dealradar/internal/repos"
)

// SampleService replaces the whole deal collection with a fixed inventory
// spanning the two shipped city scopes. Meant for demos and tests; loading
// twice yields the same content (IDs aside).
type SampleService struct {
	Deals *repos.DealRepo
}

func NewSampleService(deals *repos.DealRepo) *SampleService {
	return &SampleService{Deals: deals}
}

// Load wipes the collection and inserts the sample inventory, returning the
// number of deals inserted.
func (s *SampleService) Load() (int, error) {
	if err := s.Deals.DeleteAll(); err != nil {
		return 0, err
	}

	samples := SampleDeals()
	for _, d := range samples {
		if err := s.Deals.Insert(d); err != nil {
			return 0, err
		}
	}
	return len(samples), nil
}

func price(v float64) *float64 { return &v }

func expires(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

// SampleDeals builds the fixed demo inventory: San Francisco and Bengaluru
// deals matching the shipped store directory. IDs and creation times are
// fresh per call; everything else is constant.
func SampleDeals() []domain.Deal {
	now := time.Now().UTC()
	deals := []domain.Deal{
		{
			Title:              "50% Off All Clothing",
			Description:        "Get 50% off all clothing items in store. Limited time offer!",
			DiscountPercentage: 50.0,
			OriginalPrice:      price(100.0),
			SalePrice:          price(50.0),
			BusinessName:       "Fashion Outlet",
			Category:           "retail",
			Location:           domain.Location{Lat: 37.7749, Lng: -122.4194, Address: "123 Market St, San Francisco, CA"},
			ExpirationDate:     expires(2025, time.May, 1),
			ImageURL:           "https://images.unsplash.com/photo-1567401893414-76b7b1e5a7a5?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=60",
			URL:                "https://example-retail.com/deals/clothing-sale",
		},
		{
			Title:              "Buy One Get One Free Pizza",
			Description:        "Order any large pizza and get a second one free. Valid for dine-in only.",
			DiscountPercentage: 50.0,
			OriginalPrice:      price(25.0),
			SalePrice:          price(12.5),
			BusinessName:       "Pizza Paradise",
			Category:           "restaurant",
			Location:           domain.Location{Lat: 37.7739, Lng: -122.4312, Address: "456 Mission St, San Francisco, CA"},
			ExpirationDate:     expires(2025, time.April, 15),
			ImageURL:           "https://images.unsplash.com/photo-1513104890138-7c749659a591?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=60",
			URL:                "https://example-restaurant.com/deals/bogo-pizza",
		},
		{
			Title:              "30% Off All Electronics",
			Description:        "Save 30% on all electronics. Includes TVs, computers, and smartphones.",
			DiscountPercentage: 30.0,
			OriginalPrice:      price(1000.0),
			SalePrice:          price(700.0),
			BusinessName:       "Tech World",
			Category:           "retail",
			Location:           domain.Location{Lat: 37.7833, Lng: -122.4167, Address: "789 Powell St, San Francisco, CA"},
			ExpirationDate:     expires(2025, time.April, 30),
			ImageURL:           "https://images.unsplash.com/photo-1498049794561-7780e7231661?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=60",
			URL:                "https://example-retail.com/deals/electronics-sale",
		},
		{
			Title:              "20% Off Entire Menu",
			Description:        "Enjoy 20% off your entire order. Valid Monday through Thursday.",
			DiscountPercentage: 20.0,
			OriginalPrice:      price(50.0),
			SalePrice:          price(40.0),
			BusinessName:       "Gourmet Grill",
			Category:           "restaurant",
			Location:           domain.Location{Lat: 37.7694, Lng: -122.4862, Address: "101 California St, San Francisco, CA"},
			ExpirationDate:     expires(2025, time.May, 15),
			ImageURL:           "https://images.unsplash.com/photo-1504674900247-0877df9cc836?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=60",
			URL:                "https://example-restaurant.com/deals/menu-discount",
		},
		{
			Title:              "Buy 2 Get 1 Free Books",
			Description:        "Purchase any two books and get a third book of equal or lesser value for free.",
			DiscountPercentage: 33.33,
			OriginalPrice:      price(60.0),
			SalePrice:          price(40.0),
			BusinessName:       "Book Haven",
			Category:           "retail",
			Location:           domain.Location{Lat: 37.7699, Lng: -122.4660, Address: "222 Valencia St, San Francisco, CA"},
			ExpirationDate:     expires(2025, time.June, 1),
			ImageURL:           "https://images.unsplash.com/photo-1507842217343-583bb7270b66?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=60",
			URL:                "https://example-retail.com/deals/book-promotion",
		},
		{
			Title:              "Flat 40% Off Summer Collection",
			Description:        "Season-end prices on the entire summer range.",
			DiscountPercentage: 40.0,
			OriginalPrice:      price(1500.0),
			SalePrice:          price(900.0),
			BusinessName:       "Zudio Jayanagar",
			Category:           "retail",
			Location:           domain.Location{Lat: 12.9402, Lng: 77.5823, Address: "9th Main Rd, Jayanagar 2nd Block, Bengaluru"},
			ExpirationDate:     expires(2025, time.May, 10),
			ImageURL:           "https://images.unsplash.com/photo-1441986300917-64674bd600d8?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=60",
			URL:                "https://www.zudio.com/store/jayanagar",
		},
		{
			Title:              "30% Off Classic Denim",
			Description:        "All classic-fit jeans at 30% off this month.",
			DiscountPercentage: 30.0,
			OriginalPrice:      price(4000.0),
			SalePrice:          price(2800.0),
			BusinessName:       "Levi's Store Jayanagar",
			Category:           "retail",
			Location:           domain.Location{Lat: 12.9287, Lng: 77.5832, Address: "11th Main Rd, Jayanagar 4th Block, Bengaluru"},
			ExpirationDate:     expires(2025, time.May, 20),
			ImageURL:           "https://images.unsplash.com/photo-1542272604-787c3835535d?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=60",
			URL:                "https://www.levi.in/store/jayanagar",
		},
		{
			Title:              "Mid-Season Sale: 50% Off",
			Description:        "Half price on selected lines across the store.",
			DiscountPercentage: 50.0,
			OriginalPrice:      price(2000.0),
			SalePrice:          price(1000.0),
			BusinessName:       "H&M Jayanagar",
			Category:           "retail",
			Location:           domain.Location{Lat: 12.9254, Lng: 77.5851, Address: "30th Cross Rd, Jayanagar 4th Block, Bengaluru"},
			ExpirationDate:     expires(2025, time.June, 1),
			ImageURL:           "https://images.unsplash.com/photo-1483985988355-763728e1935b?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=60",
			URL:                "https://www2.hm.com/store/jayanagar",
		},
		{
			Title:              "35% Off Footwear & Accessories",
			Description:        "Storewide footwear and accessories markdown.",
			DiscountPercentage: 35.0,
			OriginalPrice:      price(2600.0),
			SalePrice:          price(1690.0),
			BusinessName:       "Lifestyle Brigade Road",
			Category:           "retail",
			Location:           domain.Location{Lat: 12.9716, Lng: 77.6078, Address: "Brigade Rd, Shanthala Nagar, Bengaluru"},
			ExpirationDate:     expires(2025, time.May, 25),
			ImageURL:           "https://images.unsplash.com/photo-1560343090-f0409e92791a?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=60",
			URL:                "https://www.lifestylestores.com/store/brigade-road",
		},
		{
			Title:              "20% Off Running Shoes",
			Description:        "Members save 20% on the new running range.",
			DiscountPercentage: 20.0,
			OriginalPrice:      price(5000.0),
			SalePrice:          price(4000.0),
			BusinessName:       "Adidas Store Brigade Road",
			Category:           "retail",
			Location:           domain.Location{Lat: 12.9725, Lng: 77.6070, Address: "Brigade Rd, Ashok Nagar, Bengaluru"},
			ExpirationDate:     expires(2025, time.June, 15),
			ImageURL:           "https://images.unsplash.com/photo-1542291026-7eec264c27ff?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=60",
			URL:                "https://www.adidas.co.in/store/brigade-road",
		},
		{
			Title:              "25% Off Weekday Lunch",
			Description:        "Lunch menu at 25% off, Monday to Friday.",
			DiscountPercentage: 25.0,
			OriginalPrice:      price(800.0),
			SalePrice:          price(600.0),
			BusinessName:       "Truffles Brigade Road",
			Category:           "restaurant",
			Location:           domain.Location{Lat: 12.9711, Lng: 77.6012, Address: "St. Marks Rd, off Brigade Rd, Bengaluru"},
			ExpirationDate:     expires(2025, time.May, 30),
			ImageURL:           "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=60",
			URL:                "https://www.trufflesindia.com/brigade-road",
		},
	}

	for i := range deals {
		deals[i].ID = uuid.NewString()
		deals[i].CreatedAt = now
	}
	return deals
}
