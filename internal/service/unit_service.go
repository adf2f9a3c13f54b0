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

type UnitStore interface {
	store[model.Unit]
	ListCompressed(ctx context.Context, filter repository.UnitFilter) ([]model.UnitCompressed, error)
	Dropdown(ctx context.Context, transportID string) ([]model.DropDownRow, error)
}

type UnitService struct {
	entity[model.Unit]
	repo UnitStore
	docs documents
}

func NewUnitService(repo UnitStore, images storage.Store, dropdowns cache.Dropdowns, log zerolog.Logger) *UnitService {
	return &UnitService{
		entity: newEntity[model.Unit](repo, "unit", dropdowns, "units"),
		repo:   repo,
		docs:   documents{store: images, log: log},
	}
}

func (s *UnitService) Compressed(ctx context.Context, q dto.UnitQuery) ([]model.UnitCompressed, error) {
	filter, err := q.ToFilter()
	if err != nil {
		return nil, invalid(err)
	}
	rows, err := s.repo.ListCompressed(ctx, filter)
	if err != nil {
		return nil, failure("list units", q, err)
	}
	return rows, nil
}

func (s *UnitService) Dropdown(ctx context.Context, transportID uuid.UUID) ([]model.DropDownRow, error) {
	scope := transportID.String()
	return s.dropdown(ctx, scope, func() ([]model.DropDownRow, error) {
		return s.repo.Dropdown(ctx, scope)
	})
}

// BodyTypes is the fixed catalogue units are classified by.
func (s *UnitService) BodyTypes() []string {
	return model.BodyTypes
}

func (s *UnitService) Get(ctx context.Context, id uuid.UUID) (*model.Unit, error) {
	return s.get(ctx, id)
}

// Create stores a unit. All of its documents are optional.
func (s *UnitService) Create(ctx context.Context, req dto.UnitRequest, staged map[string]string) error {
	if err := validated(&req); err != nil {
		return err
	}
	var u model.Unit
	req.ApplyTo(&u)
	return s.insert(ctx, u.ID, &u, func(ctx context.Context, u *model.Unit) error {
		urls, err := s.docs.upload(ctx, "unit", staged)
		if err != nil {
			return err
		}
		for field, url := range urls {
			u.SetImagePath(field, url)
		}
		if err := s.repo.Create(ctx, u); err != nil {
			s.docs.discard(ctx, values(urls)...)
			return err
		}
		return nil
	}, s.uniqueness(&u)...)
}

func (s *UnitService) Update(ctx context.Context, id uuid.UUID, patch []byte, staged map[string]string) error {
	current, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	req, err := dto.Merge(dto.UnitRequestFrom(*current), patch)
	if err != nil {
		return badInput("malformed unit fields")
	}
	req.ID = id.String()
	if err := validated(&req); err != nil {
		return err
	}

	previous := current.ImagePaths()
	next := *current
	req.ApplyTo(&next)

	var replaced []string
	err = s.modify(ctx, id, &next, func(ctx context.Context, u *model.Unit) error {
		urls, err := s.docs.upload(ctx, "unit", staged)
		if err != nil {
			return err
		}
		for field, url := range urls {
			u.SetImagePath(field, url)
			if old := previous[field]; old != "" {
				replaced = append(replaced, old)
			}
		}
		if err := s.repo.Update(ctx, u); err != nil {
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

func (s *UnitService) Delete(ctx context.Context, id uuid.UUID) error {
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

// uniqueness skips the engine and chassis numbers when they are not set.
func (s *UnitService) uniqueness(u *model.Unit) []uniqueCheck {
	checks := []uniqueCheck{
		unique("unit license plate already exists", repository.Key{Column: "license_plate", Value: u.LicensePlate}),
	}
	if u.EngineNumber != nil {
		checks = append(checks, unique("unit engine number already exists",
			repository.Key{Column: "engine_number", Value: *u.EngineNumber}))
	}
	if u.ChassisNumber != nil {
		checks = append(checks, unique("unit chassis number already exists",
			repository.Key{Column: "chassis_number", Value: *u.ChassisNumber}))
	}
	return checks
}

type PolicyStore interface {
	store[model.Policy]
	Dropdown(ctx context.Context) ([]model.DropDownRow, error)
}

// ImageField is the single upload field of policies and sctrs.
const ImageField = "image"

type PolicyService struct {
	entity[model.Policy]
	repo PolicyStore
	docs documents
}

func NewPolicyService(repo PolicyStore, images storage.Store, dropdowns cache.Dropdowns, log zerolog.Logger) *PolicyService {
	return &PolicyService{
		entity: newEntity[model.Policy](repo, "policy", dropdowns, "policies"),
		repo:   repo,
		docs:   documents{store: images, log: log},
	}
}

func (s *PolicyService) List(ctx context.Context) ([]model.Policy, error) {
	return s.list(ctx)
}

func (s *PolicyService) Dropdown(ctx context.Context) ([]model.DropDownRow, error) {
	return s.dropdown(ctx, "", func() ([]model.DropDownRow, error) {
		return s.repo.Dropdown(ctx)
	})
}

func (s *PolicyService) Get(ctx context.Context, id uuid.UUID) (*model.Policy, error) {
	return s.get(ctx, id)
}

func (s *PolicyService) Create(ctx context.Context, req dto.PolicyRequest, staged map[string]string) error {
	if err := validated(&req); err != nil {
		return err
	}
	if staged[ImageField] == "" {
		return missingFile(ImageField)
	}
	p := req.ToModel("")
	return s.insert(ctx, p.ID, &p, func(ctx context.Context, p *model.Policy) error {
		url, err := s.uploadImage(ctx, "policy", staged)
		if err != nil {
			return err
		}
		p.ImagePath = url
		if err := s.repo.Create(ctx, p); err != nil {
			s.docs.discard(ctx, url)
			return err
		}
		return nil
	})
}

// Update only changes the observation; the rest of a policy is fixed once issued.
func (s *PolicyService) Update(ctx context.Context, id uuid.UUID, req dto.ObservationRequest) error {
	if err := validated(&req); err != nil {
		return err
	}
	p, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	p.Observation = req.Value()
	return s.update(ctx, id, p)
}

func (s *PolicyService) Delete(ctx context.Context, id uuid.UUID) error {
	p, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.delete(ctx, id); err != nil {
		return err
	}
	s.docs.discard(ctx, p.ImagePath)
	return nil
}

func (s *PolicyService) uploadImage(ctx context.Context, owner string, staged map[string]string) (string, error) {
	urls, err := s.docs.upload(ctx, owner, map[string]string{ImageField: staged[ImageField]})
	if err != nil {
		return "", err
	}
	return urls[ImageField], nil
}

type SctrStore interface {
	store[model.Sctr]
	Dropdown(ctx context.Context) ([]model.DropDownRow, error)
}

type SctrService struct {
	entity[model.Sctr]
	repo SctrStore
	docs documents
}

func NewSctrService(repo SctrStore, images storage.Store, dropdowns cache.Dropdowns, log zerolog.Logger) *SctrService {
	return &SctrService{
		entity: newEntity[model.Sctr](repo, "sctr", dropdowns, "sctrs"),
		repo:   repo,
		docs:   documents{store: images, log: log},
	}
}

func (s *SctrService) List(ctx context.Context) ([]model.Sctr, error) {
	return s.list(ctx)
}

func (s *SctrService) Dropdown(ctx context.Context) ([]model.DropDownRow, error) {
	return s.dropdown(ctx, "", func() ([]model.DropDownRow, error) {
		return s.repo.Dropdown(ctx)
	})
}

func (s *SctrService) Get(ctx context.Context, id uuid.UUID) (*model.Sctr, error) {
	return s.get(ctx, id)
}

func (s *SctrService) Create(ctx context.Context, req dto.SctrRequest, staged map[string]string) error {
	if err := validated(&req); err != nil {
		return err
	}
	if staged[ImageField] == "" {
		return missingFile(ImageField)
	}
	sctr := req.ToModel("")
	return s.insert(ctx, sctr.ID, &sctr, func(ctx context.Context, sctr *model.Sctr) error {
		urls, err := s.docs.upload(ctx, "sctr", map[string]string{ImageField: staged[ImageField]})
		if err != nil {
			return err
		}
		sctr.ImagePath = urls[ImageField]
		if err := s.repo.Create(ctx, sctr); err != nil {
			s.docs.discard(ctx, sctr.ImagePath)
			return err
		}
		return nil
	})
}

func (s *SctrService) Update(ctx context.Context, id uuid.UUID, req dto.ObservationRequest) error {
	if err := validated(&req); err != nil {
		return err
	}
	sctr, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	sctr.Observation = req.Value()
	return s.update(ctx, id, sctr)
}

func (s *SctrService) Delete(ctx context.Context, id uuid.UUID) error {
	sctr, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.delete(ctx, id); err != nil {
		return err
	}
	s.docs.discard(ctx, sctr.ImagePath)
	return nil
}
