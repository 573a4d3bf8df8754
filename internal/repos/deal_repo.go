package repos

import (
	"time"

	"github.com/jmoiron/sqlx"

	"dealradar/internal/domain"
)

// FindCap is the hard ceiling on deals fetched per query. Not a paging
// cursor; callers never see more than this many rows.
const FindCap = 100

type DealRepo struct{ db *sqlx.DB }

func NewDealRepo(db *sqlx.DB) *DealRepo { return &DealRepo{db: db} }

// DealFilter is the storage-level predicate for Find.
type DealFilter struct {
	MinDiscount float64
	Category    string // empty means any
}

type dealRow struct {
	ID                 string   `db:"id"`
	Title              string   `db:"title"`
	Description        string   `db:"description"`
	DiscountPercentage float64  `db:"discount_percentage"`
	OriginalPrice      *float64 `db:"original_price"`
	SalePrice          *float64 `db:"sale_price"`
	BusinessName       string   `db:"business_name"`
	Category           string   `db:"category"`
	Lat                float64  `db:"lat"`
	Lng                float64  `db:"lng"`
	Address            string   `db:"address"`
	ExpirationDate     *string  `db:"expiration_date"`
	ImageURL           string   `db:"image_url"`
	URL                string   `db:"url"`
	CreatedAt          string   `db:"created_at"`
}

func toRow(d domain.Deal) dealRow {
	r := dealRow{
		ID:                 d.ID,
		Title:              d.Title,
		Description:        d.Description,
		DiscountPercentage: d.DiscountPercentage,
		OriginalPrice:      d.OriginalPrice,
		SalePrice:          d.SalePrice,
		BusinessName:       d.BusinessName,
		Category:           d.Category,
		Lat:                d.Location.Lat,
		Lng:                d.Location.Lng,
		Address:            d.Location.Address,
		ImageURL:           d.ImageURL,
		URL:                d.URL,
		CreatedAt:          d.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if d.ExpirationDate != nil {
		s := d.ExpirationDate.UTC().Format(time.RFC3339Nano)
		r.ExpirationDate = &s
	}
	return r
}

func (r dealRow) toDeal() domain.Deal {
	d := domain.Deal{
		ID:                 r.ID,
		Title:              r.Title,
		Description:        r.Description,
		DiscountPercentage: r.DiscountPercentage,
		OriginalPrice:      r.OriginalPrice,
		SalePrice:          r.SalePrice,
		BusinessName:       r.BusinessName,
		Category:           r.Category,
		Location: domain.Location{
			Lat:     r.Lat,
			Lng:     r.Lng,
			Address: r.Address,
		},
		ImageURL: r.ImageURL,
		URL:      r.URL,
	}
	d.CreatedAt, _ = time.Parse(time.RFC3339Nano, r.CreatedAt)
	if r.ExpirationDate != nil {
		if t, err := time.Parse(time.RFC3339Nano, *r.ExpirationDate); err == nil {
			d.ExpirationDate = &t
		}
	}
	return d
}

// Insert stores one deal. Single statement, so each deal is written
// all-or-nothing.
func (r *DealRepo) Insert(d domain.Deal) error {
	_, err := r.db.NamedExec(`
  INSERT INTO deals(
    id, title, description, discount_percentage, original_price, sale_price,
    business_name, category, lat, lng, address, expiration_date, image_url, url, created_at
  ) VALUES (
    :id, :title, :description, :discount_percentage, :original_price, :sale_price,
    :business_name, :category, :lat, :lng, :address, :expiration_date, :image_url, :url, :created_at
  )`, toRow(d))
	return err
}

// Find returns deals matching the filter in insertion order, capped at
// FindCap rows.
func (r *DealRepo) Find(f DealFilter) ([]domain.Deal, error) {
	where := `discount_percentage >= ?`
	args := []any{f.MinDiscount}
	if f.Category != "" {
		where += ` AND category = ?`
		args = append(args, f.Category)
	}
	args = append(args, FindCap)

	var rows []dealRow
	err := r.db.Select(&rows, `
  SELECT
    id, title, description, discount_percentage, original_price, sale_price,
    business_name, category, lat, lng, address, expiration_date, image_url, url, created_at
  FROM deals
  WHERE `+where+`
  ORDER BY rowid
  LIMIT ?`, args...)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Deal, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDeal())
	}
	return out, nil
}

// DeleteAll wipes the collection. Used by the sample loader's full replace.
func (r *DealRepo) DeleteAll() error {
	_, err := r.db.Exec(`DELETE FROM deals`)
	return err
}

// DeleteByAddress removes every deal whose address contains the given text,
// case-insensitively. This is the ingest scope-wipe.
func (r *DealRepo) DeleteByAddress(substr string) error {
	_, err := r.db.Exec(
		`DELETE FROM deals WHERE LOWER(address) LIKE '%' || LOWER(?) || '%'`, substr)
	return err
}

// DeleteByBusiness removes a single store's deals ahead of re-inserting its
// fresh listings.
func (r *DealRepo) DeleteByBusiness(name string) error {
	_, err := r.db.Exec(`DELETE FROM deals WHERE business_name = ?`, name)
	return err
}

// Count reports the collection size.
func (r *DealRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM deals`)
	return n, err
}
