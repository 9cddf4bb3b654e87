package service

import (
	"strings"

	"dinehall/internal/domain"
)

// Mapper converts between a storage entity E and its transport DTO D.
// Conversions are pure. SetID lets the generic update path stamp the path id
// onto a freshly mapped entity.
type Mapper[E, D any] struct {
	ToDTO    func(*E) D
	ToEntity func(D) *E
	SetID    func(*E, int)
}

// Hooks are the per-entity validation points. A nil hook always passes.
type Hooks[D any] struct {
	ValidateCreate func(D) error
	ValidateUpdate func(D) error
	ValidateDelete func(id int) error
}

// CrudService wraps a Repository with DTO mapping, validation hooks and the
// uniform Result envelope. Domain services compose it instead of
// reimplementing the CRUD surface.
type CrudService[E, D any] struct {
	repo   Repository[E]
	mapper Mapper[E, D]
	hooks  Hooks[D]
}

func NewCrudService[E, D any](repo Repository[E], mapper Mapper[E, D], hooks Hooks[D]) *CrudService[E, D] {
	return &CrudService[E, D]{repo: repo, mapper: mapper, hooks: hooks}
}

func (s *CrudService[E, D]) GetByID(id int) Result[D] {
	entity, err := s.repo.GetByID(id)
	if err != nil {
		return failErr[D]("get by id", err)
	}
	return ok(s.mapper.ToDTO(entity))
}

func (s *CrudService[E, D]) GetAll() Result[[]D] {
	entities, err := s.repo.GetAll()
	if err != nil {
		return failErr[[]D]("get all", err)
	}
	return ok(s.toDTOs(entities))
}

func (s *CrudService[E, D]) GetPaginated(p domain.PageParams) Result[domain.Page[D]] {
	page, err := s.repo.GetPaginated(p)
	if err != nil {
		return failErr[domain.Page[D]]("get paginated", err)
	}
	return ok(s.toDTOPage(page))
}

func (s *CrudService[E, D]) Search(keyword string) Result[[]D] {
	if strings.TrimSpace(keyword) == "" {
		return fail[[]D](KindValidation, "search keyword is required")
	}
	entities, err := s.repo.Search(keyword)
	if err != nil {
		return failErr[[]D]("search", err)
	}
	return ok(s.toDTOs(entities))
}

func (s *CrudService[E, D]) SearchPaginated(keyword string, p domain.PageParams) Result[domain.Page[D]] {
	if strings.TrimSpace(keyword) == "" {
		return fail[domain.Page[D]](KindValidation, "search keyword is required")
	}
	page, err := s.repo.SearchPaginated(keyword, p)
	if err != nil {
		return failErr[domain.Page[D]]("search paginated", err)
	}
	return ok(s.toDTOPage(page))
}

func (s *CrudService[E, D]) Create(dto D) Result[D] {
	if s.hooks.ValidateCreate != nil {
		if err := s.hooks.ValidateCreate(dto); err != nil {
			return failValidation[D](err)
		}
	}
	entity := s.mapper.ToEntity(dto)
	if err := s.repo.Create(entity); err != nil {
		return failErr[D]("create", err)
	}
	return ok(s.mapper.ToDTO(entity))
}

func (s *CrudService[E, D]) Update(id int, dto D) Result[D] {
	if s.hooks.ValidateUpdate != nil {
		if err := s.hooks.ValidateUpdate(dto); err != nil {
			return failValidation[D](err)
		}
	}
	entity := s.mapper.ToEntity(dto)
	s.mapper.SetID(entity, id)
	updated, err := s.repo.Update(entity)
	if err != nil {
		return failErr[D]("update", err)
	}
	if !updated {
		return fail[D](KindNotFound, "record not found")
	}

	stored, err := s.repo.GetByID(id)
	if err != nil {
		return failErr[D]("update", err)
	}
	return ok(s.mapper.ToDTO(stored))
}

func (s *CrudService[E, D]) Delete(id int) Result[bool] {
	if s.hooks.ValidateDelete != nil {
		if err := s.hooks.ValidateDelete(id); err != nil {
			return failValidation[bool](err)
		}
	}
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return failErr[bool]("delete", err)
	}
	if !deleted {
		return fail[bool](KindNotFound, "record not found")
	}
	return ok(true)
}

func (s *CrudService[E, D]) Exists(id int) Result[bool] {
	exists, err := s.repo.Exists(id)
	if err != nil {
		return failErr[bool]("exists", err)
	}
	return ok(exists)
}

func (s *CrudService[E, D]) Count() Result[int] {
	count, err := s.repo.Count()
	if err != nil {
		return failErr[int]("count", err)
	}
	return ok(count)
}

func (s *CrudService[E, D]) toDTOs(entities []E) []D {
	dtos := make([]D, 0, len(entities))
	for i := range entities {
		dtos = append(dtos, s.mapper.ToDTO(&entities[i]))
	}
	return dtos
}

func (s *CrudService[E, D]) toDTOPage(page domain.Page[E]) domain.Page[D] {
	return domain.Page[D]{
		Items:        s.toDTOs(page.Items),
		PageNumber:   page.PageNumber,
		PageSize:     page.PageSize,
		TotalRecords: page.TotalRecords,
	}
}

// failValidation keeps the hook's own kind when it returned a service Error,
// and treats plain errors as validation failures.
func failValidation[T any](err error) Result[T] {
	if svcErr, isSvc := err.(*Error); isSvc {
		return fail[T](svcErr.Kind, svcErr.Message)
	}
	return fail[T](KindValidation, err.Error())
}
