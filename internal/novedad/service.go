package novedad

import (
	"log/slog"

	"github.com/nominahr/payroll-management/internal/parametro"
)

type RepositoryAPI interface {
	GetAll() ([]*Novedad, error)
	GetByID(id string) (*Novedad, error)
	Create(n *Novedad) error
	Update(n *Novedad) error
	Delete(id string) error
}

// ParametroResolver checks that a referenced parametro exists before a
// novedad is written.
type ParametroResolver interface {
	GetByID(id string) (*parametro.Parametro, error)
}

type Service struct {
	repo       RepositoryAPI
	parametros ParametroResolver
	logger     *slog.Logger
}

func NewService(repo RepositoryAPI, parametros ParametroResolver, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		parametros: parametros,
		logger:     logger,
	}
}

func (s *Service) GetAll() ([]*Novedad, error) {
	novedades, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list novedades", "error", err)
		return nil, err
	}
	return novedades, nil
}

func (s *Service) GetByID(id string) (*Novedad, error) {
	n, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return n, nil
}

func (s *Service) Create(dto NovedadDTO) (*Novedad, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.parametros.GetByID(dto.ParametroID); err != nil {
		return nil, parametro.ErrNotFound
	}

	n := &Novedad{
		ParametroID:    dto.ParametroID,
		FechaIngresada: dto.FechaIngresada,
		TipoNovedad:    dto.TipoNovedad,
		Descripcion:    dto.Descripcion,
		MontoAplicado:  dto.MontoAplicado,
		EsGravable:     dto.EsGravable,
	}
	if err := s.repo.Create(n); err != nil {
		s.logger.Error("failed to create novedad", "error", err, "parametro_id", dto.ParametroID)
		return nil, err
	}

	s.logger.Info("novedad created", "novedad_id", n.ID, "monto_aplicado", n.MontoAplicado)
	return n, nil
}

func (s *Service) Update(id string, dto NovedadDTO) (*Novedad, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	n, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if _, err := s.parametros.GetByID(dto.ParametroID); err != nil {
		return nil, parametro.ErrNotFound
	}

	n.ParametroID = dto.ParametroID
	n.FechaIngresada = dto.FechaIngresada
	n.TipoNovedad = dto.TipoNovedad
	n.Descripcion = dto.Descripcion
	n.MontoAplicado = dto.MontoAplicado
	n.EsGravable = dto.EsGravable
	if err := s.repo.Update(n); err != nil {
		s.logger.Error("failed to update novedad", "error", err, "novedad_id", id)
		return nil, err
	}
	return n, nil
}

func (s *Service) Delete(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
