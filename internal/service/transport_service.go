package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"freight-service/internal/cache"
	"freight-service/internal/dto"
	"freight-service/internal/model"
	"freight-service/internal/repository"
	"freight-service/internal/storage"
)

type TransportStore interface {
	store[model.Transport]
	ListCompressed(ctx context.Context) ([]model.TransportCompressed, error)
	Dropdown(ctx context.Context) ([]model.DropDownRow, error)
}

type TransportService struct {
	entity[model.Transport]
	repo TransportStore
}

func NewTransportService(repo TransportStore, dropdowns cache.Dropdowns) *TransportService {
	return &TransportService{
		entity: newEntity[model.Transport](repo, "transport", dropdowns, "transports"),
		repo:   repo,
	}
}

func (s *TransportService) Compressed(ctx context.Context) ([]model.TransportCompressed, error) {
	rows, err := s.repo.ListCompressed(ctx)
	if err != nil {
		return nil, failure("list transports", nil, err)
	}
	return rows, nil
}

func (s *TransportService) Dropdown(ctx context.Context) ([]model.DropDownRow, error) {
	return s.dropdown(ctx, "", func() ([]model.DropDownRow, error) {
		return s.repo.Dropdown(ctx)
	})
}

func (s *TransportService) Get(ctx context.Context, id uuid.UUID) (*model.Transport, error) {
	return s.get(ctx, id)
}

func (s *TransportService) Create(ctx context.Context, req dto.TransportRequest) error {
	if err := validated(&req); err != nil {
		return err
	}
	t := req.ToModel()
	return s.create(ctx, t.ID, &t, rucUnique("transport", t.Ruc))
}

func (s *TransportService) Update(ctx context.Context, id uuid.UUID, req dto.TransportRequest) error {
	req.ID = id.String()
	if err := validated(&req); err != nil {
		return err
	}
	t := req.ToModel()
	return s.update(ctx, id, &t, rucUnique("transport", t.Ruc))
}

func (s *TransportService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.delete(ctx, id)
}

type DriverStore interface {
	store[model.Driver]
	ListCompressed(ctx context.Context, filter repository.DriverFilter) ([]model.DriverCompressed, error)
	Dropdown(ctx context.Context, transportID string) ([]model.DropDownRow, error)
}

// requiredDriverDocuments must be present when a driver is created.
var requiredDriverDocuments = []string{"dniImage", "licenseImage"}

type DriverService struct {
	entity[model.Driver]
	repo DriverStore
	docs documents
}

func NewDriverService(repo DriverStore, images storage.Store, dropdowns cache.Dropdowns, log zerolog.Logger) *DriverService {
	return &DriverService{
		entity: newEntity[model.Driver](repo, "driver", dropdowns, "drivers"),
		repo:   repo,
		docs:   documents{store: images, log: log},
	}
}

func (s *DriverService) Compressed(ctx context.Context, q dto.DriverQuery) ([]model.DriverCompressed, error) {
	filter, err := q.ToFilter()
	if err != nil {
		return nil, invalid(err)
	}
	rows, err := s.repo.ListCompressed(ctx, filter)
	if err != nil {
		return nil, failure("list drivers", q, err)
	}
	return rows, nil
}

func (s *DriverService) Dropdown(ctx context.Context, transportID uuid.UUID) ([]model.DropDownRow, error) {
	scope := transportID.String()
	return s.dropdown(ctx, scope, func() ([]model.DropDownRow, error) {
		return s.repo.Dropdown(ctx, scope)
	})
}

func (s *DriverService) Get(ctx context.Context, id uuid.UUID) (*model.Driver, error) {
	return s.get(ctx, id)
}

// Create stores a driver with its documents. staged maps upload fields to
// local files; the dni and license images are mandatory.
func (s *DriverService) Create(ctx context.Context, req dto.DriverRequest, staged map[string]string) error {
	if err := validated(&req); err != nil {
		return err
	}
	for _, field := range requiredDriverDocuments {
		if staged[field] == "" {
			return missingFile(field)
		}
	}

	var d model.Driver
	req.ApplyTo(&d)
	return s.insert(ctx, d.ID, &d, func(ctx context.Context, d *model.Driver) error {
		urls, err := s.docs.upload(ctx, "driver", staged)
		if err != nil {
			return err
		}
		for field, url := range urls {
			d.SetImagePath(field, url)
		}
		if err := s.repo.Create(ctx, d); err != nil {
			s.docs.discard(ctx, values(urls)...)
			return err
		}
		return nil
	}, s.uniqueness(&d)...)
}

// Update merges the sent fields over the stored driver. Images replaced by
// new uploads are deleted once the row is saved.
func (s *DriverService) Update(ctx context.Context, id uuid.UUID, patch []byte, staged map[string]string) error {
	current, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	req, err := dto.Merge(dto.DriverRequestFrom(*current), patch)
	if err != nil {
		return badInput("malformed driver fields")
	}
	req.ID = id.String()
	if err := validated(&req); err != nil {
		return err
	}

	previous := current.ImagePaths()
	next := *current
	req.ApplyTo(&next)

	var replaced []string
	err = s.modify(ctx, id, &next, func(ctx context.Context, d *model.Driver) error {
		urls, err := s.docs.upload(ctx, "driver", staged)
		if err != nil {
			return err
		}
		for field, url := range urls {
			d.SetImagePath(field, url)
			if old := previous[field]; old != "" {
				replaced = append(replaced, old)
			}
		}
		if err := s.repo.Update(ctx, d); err != nil {
			s.docs.discard(ctx, values(urls)...)
			return err
		}
		return nil
	}, s.uniqueness(&next)...)
	if err != nil {
		return err
	}
	s.docs.discard(ctx, replaced...)
	return nil
}

func (s *DriverService) Delete(ctx context.Context, id uuid.UUID) error {
	current, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.delete(ctx, id); err != nil {
		return err
	}
	s.docs.discard(ctx, values(current.ImagePaths())...)
	return nil
}

func (s *DriverService) uniqueness(d *model.Driver) []uniqueCheck {
	return []uniqueCheck{
		unique("driver dni already exists", repository.Key{Column: "dni", Value: d.Dni}),
		unique("driver license already exists", repository.Key{Column: "license", Value: d.License}),
		unique("driver name and lastname already exist",
			repository.Key{Column: "name", Value: d.Name},
			repository.Key{Column: "lastname", Value: d.Lastname}),
	}
}
