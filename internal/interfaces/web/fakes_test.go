package web_test

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hounsa/agrisuivi/internal/domain/entity"
	"github.com/hounsa/agrisuivi/internal/domain/repository"
)

// Fakes en mémoire des ports de persistance, pour tester les handlers
// avec les vrais cas d'usage mais sans base de données.

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo { return &fakeUserRepo{users: map[string]*entity.User{}} }

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.products[id], nil
}

func (r *fakeProductRepo) List(context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	delete(r.products, id)
	return nil
}

type fakeZoneRepo struct {
	zones map[string]*entity.Zone
}

func newFakeZoneRepo() *fakeZoneRepo { return &fakeZoneRepo{zones: map[string]*entity.Zone{}} }

func (r *fakeZoneRepo) Create(_ context.Context, z *entity.Zone) error {
	r.zones[z.ID] = z
	return nil
}

func (r *fakeZoneRepo) GetByID(_ context.Context, id string) (*entity.Zone, error) {
	return r.zones[id], nil
}

func (r *fakeZoneRepo) List(context.Context) ([]*entity.Zone, error) {
	out := make([]*entity.Zone, 0, len(r.zones))
	for _, z := range r.zones {
		out = append(out, z)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeZoneRepo) Update(_ context.Context, z *entity.Zone) error {
	r.zones[z.ID] = z
	return nil
}

func (r *fakeZoneRepo) Delete(_ context.Context, id string) error {
	delete(r.zones, id)
	return nil
}

type fakeStockRepo struct {
	stocks   map[string]*entity.Stock
	products *fakeProductRepo
	zones    *fakeZoneRepo
}

func newFakeStockRepo(products *fakeProductRepo, zones *fakeZoneRepo) *fakeStockRepo {
	return &fakeStockRepo{stocks: map[string]*entity.Stock{}, products: products, zones: zones}
}

func (r *fakeStockRepo) withRefs(s *entity.Stock) *repository.StockWithRefs {
	out := &repository.StockWithRefs{Stock: *s}
	if p := r.products.products[s.ProductID]; p != nil {
		out.ProductName = p.Name
		out.ProductUnit = p.Unit
	}
	if z := r.zones.zones[s.ZoneID]; z != nil {
		out.ZoneName = z.Name
	}
	return out
}

func (r *fakeStockRepo) Create(_ context.Context, s *entity.Stock) error {
	r.stocks[s.ID] = s
	return nil
}

func (r *fakeStockRepo) GetByID(_ context.Context, id string) (*entity.Stock, error) {
	return r.stocks[id], nil
}

func (r *fakeStockRepo) list(filter func(*entity.Stock) bool) []*repository.StockWithRefs {
	var out []*repository.StockWithRefs
	for _, s := range r.stocks {
		if filter == nil || filter(s) {
			out = append(out, r.withRefs(s))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func (r *fakeStockRepo) List(context.Context) ([]*repository.StockWithRefs, error) {
	return r.list(nil), nil
}

func (r *fakeStockRepo) ListByProduct(_ context.Context, productID string) ([]*repository.StockWithRefs, error) {
	return r.list(func(s *entity.Stock) bool { return s.ProductID == productID }), nil
}

func (r *fakeStockRepo) ListByZone(_ context.Context, zoneID string) ([]*repository.StockWithRefs, error) {
	return r.list(func(s *entity.Stock) bool { return s.ZoneID == zoneID }), nil
}

func (r *fakeStockRepo) Update(_ context.Context, s *entity.Stock) error {
	r.stocks[s.ID] = s
	return nil
}

func (r *fakeStockRepo) Delete(_ context.Context, id string) error {
	delete(r.stocks, id)
	return nil
}

type fakePriceRepo struct {
	prices   map[string]*entity.Price
	products *fakeProductRepo
	zones    *fakeZoneRepo
}

func newFakePriceRepo(products *fakeProductRepo, zones *fakeZoneRepo) *fakePriceRepo {
	return &fakePriceRepo{prices: map[string]*entity.Price{}, products: products, zones: zones}
}

func (r *fakePriceRepo) withRefs(p *entity.Price) *repository.PriceWithRefs {
	out := &repository.PriceWithRefs{Price: *p}
	if prod := r.products.products[p.ProductID]; prod != nil {
		out.ProductName = prod.Name
		out.ProductUnit = prod.Unit
	}
	if z := r.zones.zones[p.ZoneID]; z != nil {
		out.ZoneName = z.Name
	}
	return out
}

func (r *fakePriceRepo) Create(_ context.Context, p *entity.Price) error {
	r.prices[p.ID] = p
	return nil
}

func (r *fakePriceRepo) GetByID(_ context.Context, id string) (*entity.Price, error) {
	return r.prices[id], nil
}

func (r *fakePriceRepo) list(filter func(*entity.Price) bool) []*repository.PriceWithRefs {
	var out []*repository.PriceWithRefs
	for _, p := range r.prices {
		if filter == nil || filter(p) {
			out = append(out, r.withRefs(p))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

func (r *fakePriceRepo) List(context.Context) ([]*repository.PriceWithRefs, error) {
	return r.list(nil), nil
}

func (r *fakePriceRepo) ListByProduct(_ context.Context, productID string) ([]*repository.PriceWithRefs, error) {
	return r.list(func(p *entity.Price) bool { return p.ProductID == productID }), nil
}

func (r *fakePriceRepo) ListByZone(_ context.Context, zoneID string) ([]*repository.PriceWithRefs, error) {
	return r.list(func(p *entity.Price) bool { return p.ZoneID == zoneID }), nil
}

func (r *fakePriceRepo) LatestPerProduct(context.Context) ([]*repository.PriceWithRefs, error) {
	latest := map[string]*entity.Price{}
	for _, p := range r.prices {
		if cur, ok := latest[p.ProductID]; !ok || p.Date.After(cur.Date) {
			latest[p.ProductID] = p
		}
	}
	var out []*repository.PriceWithRefs
	for _, p := range latest {
		out = append(out, r.withRefs(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductName < out[j].ProductName })
	return out, nil
}

func (r *fakePriceRepo) Update(_ context.Context, p *entity.Price) error {
	r.prices[p.ID] = p
	return nil
}

func (r *fakePriceRepo) Delete(_ context.Context, id string) error {
	delete(r.prices, id)
	return nil
}

// fakeDashboardRepo agrégats calculés sur les fakes ci-dessus.
type fakeDashboardRepo struct {
	products *fakeProductRepo
	zones    *fakeZoneRepo
	stocks   *fakeStockRepo
	prices   *fakePriceRepo
}

func (r *fakeDashboardRepo) CountAll(context.Context) (repository.EntityCounts, error) {
	return repository.EntityCounts{
		Products: len(r.products.products),
		Zones:    len(r.zones.zones),
		Stocks:   len(r.stocks.stocks),
		Prices:   len(r.prices.prices),
	}, nil
}

func (r *fakeDashboardRepo) CountProductsByCategory(context.Context) ([]repository.CategoryCount, error) {
	byCat := map[string]int{}
	for _, p := range r.products.products {
		byCat[p.Category]++
	}
	var out []repository.CategoryCount
	for cat, n := range byCat {
		out = append(out, repository.CategoryCount{Category: cat, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}

func (r *fakeDashboardRepo) AveragePriceByDay(_ context.Context, since time.Time) ([]repository.PricePoint, error) {
	type acc struct {
		sum decimal.Decimal
		n   int64
	}
	byDay := map[time.Time]*acc{}
	for _, p := range r.prices.prices {
		if p.Date.Before(since) {
			continue
		}
		day := p.Date.Truncate(24 * time.Hour)
		a, ok := byDay[day]
		if !ok {
			a = &acc{}
			byDay[day] = a
		}
		a.sum = a.sum.Add(p.Amount)
		a.n++
	}
	var out []repository.PricePoint
	for day, a := range byDay {
		out = append(out, repository.PricePoint{Day: day, Average: a.sum.Div(decimal.NewFromInt(a.n))})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out, nil
}

func (r *fakeDashboardRepo) TopStocks(_ context.Context, limit int) ([]repository.StockLevel, error) {
	var out []repository.StockLevel
	for _, s := range r.stocks.stocks {
		refs := r.stocks.withRefs(s)
		out = append(out, repository.StockLevel{ProductName: refs.ProductName, Quantity: s.Quantity})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Quantity.GreaterThan(out[j].Quantity) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeDashboardRepo) LowStocks(_ context.Context, threshold decimal.Decimal, limit int) ([]repository.LowStockAlert, error) {
	var out []repository.LowStockAlert
	for _, s := range r.stocks.stocks {
		if s.Quantity.LessThan(threshold) {
			refs := r.stocks.withRefs(s)
			out = append(out, repository.LowStockAlert{
				ProductName: refs.ProductName,
				ZoneName:    refs.ZoneName,
				Quantity:    s.Quantity,
				Unit:        refs.ProductUnit,
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Quantity.LessThan(out[j].Quantity) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeDashboardRepo) LatestStocks(ctx context.Context, limit int) ([]*repository.StockWithRefs, error) {
	out, _ := r.stocks.List(ctx)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeDashboardRepo) LatestPrices(ctx context.Context, limit int) ([]*repository.PriceWithRefs, error) {
	out, _ := r.prices.List(ctx)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
