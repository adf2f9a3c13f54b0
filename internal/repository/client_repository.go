package repository

import (
	"context"

	"gorm.io/gorm"

	"freight-service/internal/model"
)

type ClientRepository struct {
	crud[model.Client]
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{crud: newCrud[model.Client](db, "clients", "name")}
}

func (r *ClientRepository) Dropdown(ctx context.Context) ([]model.DropDownRow, error) {
	return r.dropdown(ctx, `
		SELECT id, SUBSTRING(name FROM 1 FOR 25) AS value
		FROM clients
		ORDER BY name`)
}

type ProductRepository struct {
	crud[model.Product]
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{crud: newCrud[model.Product](db, "products", "name")}
}

// ListCompressed returns one page of products matching every present filter.
func (r *ProductRepository) ListCompressed(ctx context.Context, filter ProductFilter, limit int) ([]model.ProductCompressed, int64, error) {
	query := r.db.WithContext(ctx).Table("products p").
		Joins("INNER JOIN clients c ON c.id = p.client_id")

	if filter.Name != nil {
		query = query.Where("UPPER(p.name) LIKE ?", *filter.Name)
	}
	if filter.ClientID != nil {
		query = query.Where("p.client_id = ?", *filter.ClientID)
	}

	return paginate[model.ProductCompressed](query,
		"p.id, p.name, SUBSTRING(c.name FROM 1 FOR 15) AS client_name",
		"p.name, c.name", filter.Page, limit)
}

func (r *ProductRepository) Dropdown(ctx context.Context, clientID string) ([]model.DropDownRow, error) {
	return r.dropdown(ctx, `
		SELECT id, name AS value
		FROM products
		WHERE client_id = ?
		ORDER BY name`, clientID)
}

type RouteRepository struct {
	crud[model.Route]
}

func NewRouteRepository(db *gorm.DB) *RouteRepository {
	return &RouteRepository{crud: newCrud[model.Route](db, "routes", "name")}
}

func (r *RouteRepository) ListCompressed(ctx context.Context, filter RouteFilter, limit int) ([]model.RouteCompressed, int64, error) {
	query := r.db.WithContext(ctx).Table("routes r").
		Joins("INNER JOIN clients c ON c.id = r.client_id")

	if filter.Name != nil {
		query = query.Where("UPPER(r.name) LIKE ?", *filter.Name)
	}
	if filter.ClientID != nil {
		query = query.Where("r.client_id = ?", *filter.ClientID)
	}

	return paginate[model.RouteCompressed](query, `
			r.id,
			r.name,
			r.address_start,
			r.address_end,
			r.client_start,
			r.client_end,
			r.value,
			SUBSTRING(c.name FROM 1 FOR 15) AS client_name
		`, "r.name, c.name", filter.Page, limit)
}

func (r *RouteRepository) Dropdown(ctx context.Context, clientID string) ([]model.DropDownRow, error) {
	return r.dropdown(ctx, `
		SELECT id, name AS value
		FROM routes
		WHERE client_id = ?
		ORDER BY name`, clientID)
}

type ServiceRepository struct {
	crud[model.Service]
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{crud: newCrud[model.Service](db, "services", "name")}
}

func (r *ServiceRepository) Dropdown(ctx context.Context) ([]model.DropDownRow, error) {
	return r.dropdown(ctx, `
		SELECT id, name AS value
		FROM services
		ORDER BY name`)
}
