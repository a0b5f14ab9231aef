package services

import (
	"encoding/json"
	"errors"
	"log"
	"os"

	"github.com/venturemate/marketplace-go/apperrors"
	"github.com/venturemate/marketplace-go/dto"
	"github.com/venturemate/marketplace-go/models"
	"github.com/venturemate/marketplace-go/repositories"
	"github.com/venturemate/marketplace-go/types"
	"gopkg.in/yaml.v2"
	"gorm.io/gorm"
)

type CatalogService struct {
	Repos *repositories.Repos
}

func NewCatalogService(repos *repositories.Repos) *CatalogService {
	return &CatalogService{Repos: repos}
}

func (s *CatalogService) ListServices() ([]models.Service, error) {
	return s.Repos.Catalog.ListServices()
}

func (s *CatalogService) ListPacks() ([]models.Pack, error) {
	return s.Repos.Catalog.ListPacks()
}

func (s *CatalogService) CreateService(actor types.Actor, input dto.ServiceDTO) (models.Service, error) {
	if !actor.IsAdmin() {
		return models.Service{}, apperrors.New(apperrors.KindUnauthorized, "admin role required")
	}
	svc := models.Service{Name: input.Name, Description: input.Description, Price: input.Price}
	if err := s.Repos.Catalog.SaveService(&svc); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Service{}, apperrors.Newf(apperrors.KindConflict, "service %q already exists", input.Name)
		}
		return models.Service{}, apperrors.Wrap(apperrors.KindRemote, "save service", err)
	}
	return svc, nil
}

func (s *CatalogService) CreatePack(actor types.Actor, input dto.PackDTO) (models.Pack, error) {
	if !actor.IsAdmin() {
		return models.Pack{}, apperrors.New(apperrors.KindUnauthorized, "admin role required")
	}
	features, err := json.Marshal(input.Features)
	if err != nil {
		return models.Pack{}, apperrors.Wrap(apperrors.KindValidation, "encode features", err)
	}
	pack := models.Pack{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Features:    features,
	}
	if err := s.Repos.Catalog.SavePack(&pack); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Pack{}, apperrors.Newf(apperrors.KindConflict, "pack %q already exists", input.Name)
		}
		return models.Pack{}, apperrors.Wrap(apperrors.KindRemote, "save pack", err)
	}
	return pack, nil
}

func (s *CatalogService) DeleteService(actor types.Actor, id uint) error {
	if !actor.IsAdmin() {
		return apperrors.New(apperrors.KindUnauthorized, "admin role required")
	}
	return s.Repos.Catalog.DeleteService(id)
}

func (s *CatalogService) DeletePack(actor types.Actor, id uint) error {
	if !actor.IsAdmin() {
		return apperrors.New(apperrors.KindUnauthorized, "admin role required")
	}
	return s.Repos.Catalog.DeletePack(id)
}

type catalogSeed struct {
	Services []struct {
		Name        string  `yaml:"name"`
		Description string  `yaml:"description"`
		Price       float64 `yaml:"price"`
	} `yaml:"services"`
	Packs []struct {
		Name        string   `yaml:"name"`
		Description string   `yaml:"description"`
		Price       float64  `yaml:"price"`
		Features    []string `yaml:"features"`
	} `yaml:"packs"`
}

// SeedFromYAML loads the offering catalog from a YAML file at startup.
// Entries that already exist are skipped.
func (s *CatalogService) SeedFromYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return apperrors.Wrap(apperrors.KindRemote, "read catalog seed", err)
	}

	var seed catalogSeed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return apperrors.Wrap(apperrors.KindValidation, "parse catalog seed", err)
	}

	for _, entry := range seed.Services {
		svc := models.Service{Name: entry.Name, Description: entry.Description, Price: entry.Price}
		if err := s.Repos.Catalog.SaveService(&svc); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			return apperrors.Wrap(apperrors.KindRemote, "seed service", err)
		}
		log.Printf("catalog: seeded service %q", entry.Name)
	}
	for _, entry := range seed.Packs {
		features, err := json.Marshal(entry.Features)
		if err != nil {
			return apperrors.Wrap(apperrors.KindValidation, "encode pack features", err)
		}
		pack := models.Pack{
			Name:        entry.Name,
			Description: entry.Description,
			Price:       entry.Price,
			Features:    features,
		}
		if err := s.Repos.Catalog.SavePack(&pack); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				continue
			}
			return apperrors.Wrap(apperrors.KindRemote, "seed pack", err)
		}
		log.Printf("catalog: seeded pack %q", entry.Name)
	}
	return nil
}
