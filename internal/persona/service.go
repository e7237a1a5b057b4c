package persona

import (
	"log/slog"
	"time"
)

type RepositoryAPI interface {
	GetAll() ([]*Persona, error)
	GetByID(id string) (*Persona, error)
	GetByDNI(dni string) (*Persona, error)
	Create(p *Persona) error
	Update(p *Persona) error
	Delete(id string) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetAll() ([]*Persona, error) {
	personas, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list personas", "error", err)
		return nil, err
	}
	return personas, nil
}

func (s *Service) GetByID(id string) (*Persona, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *Service) Create(dto PersonaDTO) (*Persona, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetByDNI(dto.DNI); err == nil && existing != nil {
		return nil, ErrDuplicateDNI
	}

	p := &Persona{
		DNI:             dto.DNI,
		Gender:          dto.Gender,
		PrimerNombre:    dto.PrimerNombre,
		SegundoNombre:   dto.SegundoNombre,
		ApellidoPaterno: dto.ApellidoPaterno,
		ApellidoMaterno: dto.ApellidoMaterno,
		DateBirthday:    dto.DateBirthday,
		Edad:            dto.EdadAt(time.Now()),
		Correo:          dto.Correo,
		Telefono:        dto.Telefono,
		Direcciones:     dto.Direcciones,
	}
	if err := s.repo.Create(p); err != nil {
		s.logger.Error("failed to create persona", "error", err, "dni", dto.DNI)
		return nil, err
	}

	s.logger.Info("persona created", "persona_id", p.ID, "dni", p.DNI)
	return p, nil
}

func (s *Service) Update(id string, dto PersonaDTO) (*Persona, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	if existing, err := s.repo.GetByDNI(dto.DNI); err == nil && existing != nil && existing.ID != id {
		return nil, ErrDuplicateDNI
	}

	p.DNI = dto.DNI
	p.Gender = dto.Gender
	p.PrimerNombre = dto.PrimerNombre
	p.SegundoNombre = dto.SegundoNombre
	p.ApellidoPaterno = dto.ApellidoPaterno
	p.ApellidoMaterno = dto.ApellidoMaterno
	p.DateBirthday = dto.DateBirthday
	p.Edad = dto.EdadAt(time.Now())
	p.Correo = dto.Correo
	p.Telefono = dto.Telefono
	p.Direcciones = dto.Direcciones
	if err := s.repo.Update(p); err != nil {
		s.logger.Error("failed to update persona", "error", err, "persona_id", id)
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return ErrNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete persona", "error", err, "persona_id", id)
		return err
	}

	s.logger.Info("persona deleted", "persona_id", id)
	return nil
}
