package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/nftpro1212/frons-pos/internal/domain/entity"
	"github.com/nftpro1212/frons-pos/internal/domain/repository"
	"github.com/nftpro1212/frons-pos/pkg/apperror"
)

// TableService handles dining table management
type TableService struct {
	tableRepo repository.TableRepository
	orderRepo repository.OrderRepository
}

// NewTableService creates a new table service
func NewTableService(tableRepo repository.TableRepository, orderRepo repository.OrderRepository) *TableService {
	return &TableService{tableRepo: tableRepo, orderRepo: orderRepo}
}

// CreateTableInput represents the create table input
type CreateTableInput struct {
	Name   string
	Zone   string
	Seats  int
	Active bool
}

// CreateTable adds a dining table; names are unique within the venue
func (s *TableService) CreateTable(ctx context.Context, input *CreateTableInput) (*entity.Table, error) {
	existing, err := s.tableRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A table with this name already exists")
	}

	table := &entity.Table{
		Name:   input.Name,
		Zone:   input.Zone,
		Seats:  input.Seats,
		Active: input.Active,
	}
	if err := s.tableRepo.Create(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

// GetTable retrieves a table by ID
func (s *TableService) GetTable(ctx context.Context, id uuid.UUID) (*entity.Table, error) {
	table, err := s.tableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, apperror.NewNotFoundError("Table")
	}
	return table, nil
}

// ListTables lists tables, optionally only active ones
func (s *TableService) ListTables(ctx context.Context, activeOnly bool) ([]entity.Table, error) {
	return s.tableRepo.List(ctx, activeOnly)
}

// UpdateTable updates a table's fields
func (s *TableService) UpdateTable(ctx context.Context, id uuid.UUID, input *CreateTableInput) (*entity.Table, error) {
	table, err := s.GetTable(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != table.Name {
		existing, err := s.tableRepo.GetByName(ctx, input.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("A table with this name already exists")
		}
	}

	table.Name = input.Name
	table.Zone = input.Zone
	table.Seats = input.Seats
	table.Active = input.Active

	if err := s.tableRepo.Update(ctx, table); err != nil {
		return nil, err
	}
	return table, nil
}

// DeleteTable removes a table; tables with open orders cannot be removed
func (s *TableService) DeleteTable(ctx context.Context, id uuid.UUID) error {
	table, err := s.GetTable(ctx, id)
	if err != nil {
		return err
	}

	open, err := s.orderRepo.ListOpenByTable(ctx, table.ID)
	if err != nil {
		return err
	}
	if len(open) > 0 {
		return apperror.NewConflictError("Table has open orders")
	}

	return s.tableRepo.Delete(ctx, id)
}
