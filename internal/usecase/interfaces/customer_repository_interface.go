package interfaces

import (
	"context"
	"proposal_desk/internal/domain/entities"
)

type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	ListAll(ctx context.Context) ([]entities.Customer, error)
}
