package service

import (
	"context"

	"github.com/google/uuid"

	"freight-service/internal/cache"
	"freight-service/internal/dto"
	"freight-service/internal/model"
	"freight-service/internal/pagination"
	"freight-service/internal/repository"
)

type ClientStore interface {
	store[model.Client]
	Dropdown(ctx context.Context) ([]model.DropDownRow, error)
}

// ClientFreightLister finds the freights billed, or still to bill, to a client.
type ClientFreightLister interface {
	ListByClient(ctx context.Context, filter repository.ClientFreightsFilter) ([]model.ClientFreightRow, error)
}

type ClientService struct {
	entity[model.Client]
	repo     ClientStore
	freights ClientFreightLister
}

func NewClientService(repo ClientStore, freights ClientFreightLister, dropdowns cache.Dropdowns) *ClientService {
	return &ClientService{
		entity:   newEntity[model.Client](repo, "client", dropdowns, "clients"),
		repo:     repo,
		freights: freights,
	}
}

func (s *ClientService) List(ctx context.Context) ([]model.Client, error) {
	return s.list(ctx)
}

func (s *ClientService) Dropdown(ctx context.Context) ([]model.DropDownRow, error) {
	return s.dropdown(ctx, "", func() ([]model.DropDownRow, error) {
		return s.repo.Dropdown(ctx)
	})
}

func (s *ClientService) Get(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	return s.get(ctx, id)
}

// Freights lists the client's freights with or without a sale settlement detail.
func (s *ClientService) Freights(ctx context.Context, clientID uuid.UUID, q dto.ClientFreightsQuery) ([]model.ClientFreightRow, error) {
	filter, err := q.ToFilter(clientID.String())
	if err != nil {
		return nil, invalid(err)
	}
	rows, err := s.freights.ListByClient(ctx, filter)
	if err != nil {
		return nil, failure("list client freights", q, err)
	}
	return rows, nil
}

func (s *ClientService) Create(ctx context.Context, req dto.ClientRequest) error {
	if err := validated(&req); err != nil {
		return err
	}
	c := req.ToModel()
	return s.create(ctx, c.ID, &c, rucUnique("client", c.Ruc))
}

func (s *ClientService) Update(ctx context.Context, id uuid.UUID, req dto.ClientRequest) error {
	req.ID = id.String()
	if err := validated(&req); err != nil {
		return err
	}
	c := req.ToModel()
	return s.update(ctx, id, &c, rucUnique("client", c.Ruc))
}

func (s *ClientService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.delete(ctx, id)
}

func rucUnique(owner, ruc string) uniqueCheck {
	return unique(owner+" ruc already exists", repository.Key{Column: "ruc", Value: ruc})
}

func nameUnique(owner, name string) uniqueCheck {
	return unique(owner+" name already exists", repository.Key{Column: "name", Value: name})
}

type ProductStore interface {
	store[model.Product]
	ListCompressed(ctx context.Context, filter repository.ProductFilter, limit int) ([]model.ProductCompressed, int64, error)
	Dropdown(ctx context.Context, clientID string) ([]model.DropDownRow, error)
}

type ProductService struct {
	entity[model.Product]
	repo  ProductStore
	limit int
}

func NewProductService(repo ProductStore, dropdowns cache.Dropdowns, limitPerPage int) *ProductService {
	return &ProductService{
		entity: newEntity[model.Product](repo, "product", dropdowns, "products"),
		repo:   repo,
		limit:  limitPerPage,
	}
}

func (s *ProductService) Compressed(ctx context.Context, q dto.ProductQuery) (pagination.Page[model.ProductCompressed], error) {
	filter, err := q.ToFilter()
	if err != nil {
		return pagination.Page[model.ProductCompressed]{}, invalid(err)
	}
	rows, total, err := s.repo.ListCompressed(ctx, filter, s.limit)
	if err != nil {
		return pagination.Page[model.ProductCompressed]{}, failure("list products", q, err)
	}
	return pagination.New(rows, total, s.limit, filter.Page), nil
}

func (s *ProductService) Dropdown(ctx context.Context, clientID uuid.UUID) ([]model.DropDownRow, error) {
	scope := clientID.String()
	return s.dropdown(ctx, scope, func() ([]model.DropDownRow, error) {
		return s.repo.Dropdown(ctx, scope)
	})
}

func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	return s.get(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, req dto.ProductRequest) error {
	if err := validated(&req); err != nil {
		return err
	}
	p := req.ToModel()
	return s.create(ctx, p.ID, &p)
}

func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req dto.ProductRequest) error {
	req.ID = id.String()
	if err := validated(&req); err != nil {
		return err
	}
	p := req.ToModel()
	return s.update(ctx, id, &p)
}

func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.delete(ctx, id)
}

type RouteStore interface {
	store[model.Route]
	ListCompressed(ctx context.Context, filter repository.RouteFilter, limit int) ([]model.RouteCompressed, int64, error)
	Dropdown(ctx context.Context, clientID string) ([]model.DropDownRow, error)
}

type RouteService struct {
	entity[model.Route]
	repo  RouteStore
	limit int
}

func NewRouteService(repo RouteStore, dropdowns cache.Dropdowns, limitPerPage int) *RouteService {
	return &RouteService{
		entity: newEntity[model.Route](repo, "route", dropdowns, "routes"),
		repo:   repo,
		limit:  limitPerPage,
	}
}

func (s *RouteService) Compressed(ctx context.Context, q dto.RouteQuery) (pagination.Page[model.RouteCompressed], error) {
	filter, err := q.ToFilter()
	if err != nil {
		return pagination.Page[model.RouteCompressed]{}, invalid(err)
	}
	rows, total, err := s.repo.ListCompressed(ctx, filter, s.limit)
	if err != nil {
		return pagination.Page[model.RouteCompressed]{}, failure("list routes", q, err)
	}
	return pagination.New(rows, total, s.limit, filter.Page), nil
}

func (s *RouteService) Dropdown(ctx context.Context, clientID uuid.UUID) ([]model.DropDownRow, error) {
	scope := clientID.String()
	return s.dropdown(ctx, scope, func() ([]model.DropDownRow, error) {
		return s.repo.Dropdown(ctx, scope)
	})
}

func (s *RouteService) Get(ctx context.Context, id uuid.UUID) (*model.Route, error) {
	return s.get(ctx, id)
}

func (s *RouteService) Create(ctx context.Context, req dto.RouteRequest) error {
	if err := validated(&req); err != nil {
		return err
	}
	r := req.ToModel()
	return s.create(ctx, r.ID, &r)
}

func (s *RouteService) Update(ctx context.Context, id uuid.UUID, req dto.RouteRequest) error {
	req.ID = id.String()
	if err := validated(&req); err != nil {
		return err
	}
	r := req.ToModel()
	return s.update(ctx, id, &r)
}

func (s *RouteService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.delete(ctx, id)
}

type ServiceStore interface {
	store[model.Service]
	Dropdown(ctx context.Context) ([]model.DropDownRow, error)
}

// ServiceService manages the kinds of freight service offered.
type ServiceService struct {
	entity[model.Service]
	repo ServiceStore
}

func NewServiceService(repo ServiceStore, dropdowns cache.Dropdowns) *ServiceService {
	return &ServiceService{
		entity: newEntity[model.Service](repo, "service", dropdowns, "services"),
		repo:   repo,
	}
}

func (s *ServiceService) List(ctx context.Context) ([]model.Service, error) {
	return s.list(ctx)
}

func (s *ServiceService) Dropdown(ctx context.Context) ([]model.DropDownRow, error) {
	return s.dropdown(ctx, "", func() ([]model.DropDownRow, error) {
		return s.repo.Dropdown(ctx)
	})
}

func (s *ServiceService) Get(ctx context.Context, id uuid.UUID) (*model.Service, error) {
	return s.get(ctx, id)
}

func (s *ServiceService) Create(ctx context.Context, req dto.ServiceRequest) error {
	if err := validated(&req); err != nil {
		return err
	}
	v := req.ToModel()
	return s.create(ctx, v.ID, &v, nameUnique("service", v.Name))
}

func (s *ServiceService) Update(ctx context.Context, id uuid.UUID, req dto.ServiceRequest) error {
	req.ID = id.String()
	if err := validated(&req); err != nil {
		return err
	}
	v := req.ToModel()
	return s.update(ctx, id, &v, nameUnique("service", v.Name))
}

func (s *ServiceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.delete(ctx, id)
}
