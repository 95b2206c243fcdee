package usecase

import (
	"context"
	"errors"
	"testing"

	"proposal_desk/internal/domain/entities"
	mock_interfaces "proposal_desk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCustomerUseCase_Create(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		_, err := uc.Create(context.Background(), "  ", "a@b.com", "")
		if !errors.Is(err, ErrInvalidCustomerName) {
			t.Fatalf("expected ErrInvalidCustomerName, got %v", err)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		_, err := uc.Create(context.Background(), "Acme", "not-an-email", "")
		if !errors.Is(err, ErrInvalidCustomerEmail) {
			t.Fatalf("expected ErrInvalidCustomerEmail, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Customer) (entities.Customer, error) {
			return c, nil
		})

		c, err := uc.Create(context.Background(), " Acme ", "buyer@acme.com", " 1234567890 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID == "" || c.Name != "Acme" || c.TaxNumber != "1234567890" {
			t.Fatalf("unexpected customer %+v", c)
		}
		if c.CreatedAt.IsZero() || !c.CreatedAt.Equal(c.UpdatedAt) {
			t.Fatalf("expected timestamps to be set, got %+v", c)
		}
	})

	t.Run("email is optional", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Customer) (entities.Customer, error) {
			return c, nil
		})

		if _, err := uc.Create(context.Background(), "Acme", "", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCustomerUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		_, err := uc.GetByID(context.Background(), "")
		if !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{}, nil)

		_, err := uc.GetByID(context.Background(), "c-1")
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Customer{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "c-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestCustomerUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockICustomerRepository(ctrl)
	uc := NewCustomerUseCase(repo)

	repo.EXPECT().ListAll(gomock.Any()).Return([]entities.Customer{{ID: "c-1"}, {ID: "c-2"}}, nil)

	customers, err := uc.List(context.Background())
	if err != nil || len(customers) != 2 {
		t.Fatalf("unexpected result %v %v", customers, err)
	}
}
