package usecase

import (
	"context"
	"errors"
	"testing"

	"broker_quotes/internal/domain/entities"
	mock_interfaces "broker_quotes/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestRateTableUseCase_Upload(t *testing.T) {
	t.Run("invalid key", func(t *testing.T) {
		uc := NewRateTableUseCase(nil)
		if _, err := uc.Upload(context.Background(), "broker-1", "acme", "crypto", nil); !errors.Is(err, ErrInvalidProductType) {
			t.Fatalf("expected ErrInvalidProductType, got %v", err)
		}
		if _, err := uc.Upload(context.Background(), "broker-1", " ", "auto", nil); !errors.Is(err, ErrInvalidInsurerSlug) {
			t.Fatalf("expected ErrInvalidInsurerSlug, got %v", err)
		}
	})

	t.Run("invalid rows", func(t *testing.T) {
		uc := NewRateTableUseCase(nil)
		cases := [][]RateRowInput{
			{{CoverageTier: "gold", Price: decimal.NewFromInt(1)}},
			{{Price: decimal.NewFromInt(-1)}},
			{{Price: decimal.NewFromInt(1), Factors: map[string]string{" ": "x"}}},
		}
		for _, rows := range cases {
			if _, err := uc.Upload(context.Background(), "broker-1", "acme", "auto", rows); !errors.Is(err, ErrInvalidRateRow) {
				t.Fatalf("expected ErrInvalidRateRow, got %v", err)
			}
		}
	})

	t.Run("replace success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRateTableRepository(ctrl)
		uc := NewRateTableUseCase(repo)

		repo.EXPECT().ReplaceRows(gomock.Any(), "broker-1", "acme", entities.ProductAuto, gomock.Len(2)).DoAndReturn(
			func(_ context.Context, _, _ string, _ entities.ProductType, rows []entities.RateTableRow) error {
				if rows[0].Position != 0 || rows[1].Position != 1 {
					t.Fatalf("positions not assigned: %+v", rows)
				}
				if rows[0].CoverageTier != entities.CoverageBasic || rows[0].Currency != "USD" {
					t.Fatalf("defaults not applied: %+v", rows[0])
				}
				if rows[1].Currency != "EUR" || rows[1].Factors["vehicle"] != "sedan" {
					t.Fatalf("unexpected row: %+v", rows[1])
				}
				if rows[0].ID == "" || rows[0].ID == rows[1].ID {
					t.Fatalf("expected unique ids")
				}
				return nil
			},
		)

		_, err := uc.Upload(context.Background(), "broker-1", "ACME", "auto", []RateRowInput{
			{Price: decimal.NewFromInt(100)},
			{CoverageTier: "comprehensive", Price: decimal.NewFromInt(180), Currency: "eur", Factors: map[string]string{"vehicle": " sedan "}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRateTableRepository(ctrl)
		uc := NewRateTableUseCase(repo)

		repo.EXPECT().ReplaceRows(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db"))

		if _, err := uc.Upload(context.Background(), "broker-1", "acme", "auto", nil); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestRateTableUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIRateTableRepository(ctrl)
	uc := NewRateTableUseCase(repo)

	repo.EXPECT().ListRows(gomock.Any(), "broker-1", "acme", entities.ProductHome).Return([]entities.RateTableRow{{ID: "r-1"}}, nil)

	rows, err := uc.List(context.Background(), "broker-1", "acme", "home")
	if err != nil || len(rows) != 1 {
		t.Fatalf("unexpected result %+v err=%v", rows, err)
	}
}
