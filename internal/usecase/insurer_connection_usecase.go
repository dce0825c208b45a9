package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"broker_quotes/internal/domain/entities"
	"broker_quotes/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrConnectionNotFound    = errors.New("insurer connection not found")
	ErrInvalidConnectionID   = errors.New("invalid connection id")
	ErrInvalidInsurerName    = errors.New("invalid insurer name")
	ErrInvalidInsurerSlug    = errors.New("invalid insurer slug")
	ErrInvalidSupportedProds = errors.New("invalid supported products")
)

type ConnectInsurerCommand struct {
	BrokerID          string
	InsurerName       string
	InsurerSlug       string
	AdapterType       string
	SupportedProducts []string
	Credentials       map[string]any
}

// IInsurerConnectionUseCase manages the broker-to-insurer links the
// aggregation engine reads from.

type IInsurerConnectionUseCase interface {
	Connect(ctx context.Context, cmd ConnectInsurerCommand) (entities.InsurerConnection, error)
	ListByBroker(ctx context.Context, brokerID string) ([]entities.InsurerConnection, error)
	Deactivate(ctx context.Context, brokerID, connectionID string) (entities.InsurerConnection, error)
}

type InsurerConnectionUseCase struct {
	repo interfaces.IInsurerConnectionRepository
}

var _ IInsurerConnectionUseCase = (*InsurerConnectionUseCase)(nil)

func NewInsurerConnectionUseCase(repo interfaces.IInsurerConnectionRepository) *InsurerConnectionUseCase {
	return &InsurerConnectionUseCase{repo: repo}
}

func (u *InsurerConnectionUseCase) Connect(ctx context.Context, cmd ConnectInsurerCommand) (entities.InsurerConnection, error) {
	brokerID := strings.TrimSpace(cmd.BrokerID)
	if brokerID == "" {
		return entities.InsurerConnection{}, ErrInvalidBrokerID
	}
	name := strings.TrimSpace(cmd.InsurerName)
	if name == "" {
		return entities.InsurerConnection{}, ErrInvalidInsurerName
	}
	slug := strings.ToLower(strings.TrimSpace(cmd.InsurerSlug))
	if slug == "" || strings.ContainsAny(slug, " #/") {
		return entities.InsurerConnection{}, ErrInvalidInsurerSlug
	}

	products, err := parseProducts(cmd.SupportedProducts)
	if err != nil {
		return entities.InsurerConnection{}, err
	}

	adapterType := strings.ToLower(strings.TrimSpace(cmd.AdapterType))
	if adapterType == "" {
		adapterType = entities.AdapterTypeManualRateTable
	}

	creds := make(entities.Credentials, len(cmd.Credentials))
	for k, v := range cmd.Credentials {
		creds[k] = v
	}

	now := time.Now().UTC()
	c := entities.InsurerConnection{
		ID:       uuid.NewString(),
		BrokerID: brokerID,
		Insurer: entities.Insurer{
			Name:              name,
			Slug:              slug,
			AdapterType:       adapterType,
			SupportedProducts: products,
		},
		Credentials: creds,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, c)
}

// parseProducts validates and dedups while keeping the caller's order.
func parseProducts(raw []string) ([]entities.ProductType, error) {
	if len(raw) == 0 {
		return nil, ErrInvalidSupportedProds
	}
	out := make([]entities.ProductType, 0, len(raw))
	seen := make(map[entities.ProductType]bool, len(raw))
	for _, r := range raw {
		p, err := entities.ParseProductType(r)
		if err != nil {
			return nil, ErrInvalidProductType
		}
		if seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out, nil
}

func (u *InsurerConnectionUseCase) ListByBroker(ctx context.Context, brokerID string) ([]entities.InsurerConnection, error) {
	brokerID = strings.TrimSpace(brokerID)
	if brokerID == "" {
		return nil, ErrInvalidBrokerID
	}
	return u.repo.ListByBrokerID(ctx, brokerID)
}

func (u *InsurerConnectionUseCase) Deactivate(ctx context.Context, brokerID, connectionID string) (entities.InsurerConnection, error) {
	brokerID = strings.TrimSpace(brokerID)
	if brokerID == "" {
		return entities.InsurerConnection{}, ErrInvalidBrokerID
	}
	connectionID = strings.TrimSpace(connectionID)
	if connectionID == "" {
		return entities.InsurerConnection{}, ErrInvalidConnectionID
	}

	existing, err := u.repo.GetByID(ctx, connectionID)
	if err != nil {
		return entities.InsurerConnection{}, err
	}
	if existing.ID == "" || existing.BrokerID != brokerID {
		return entities.InsurerConnection{}, ErrConnectionNotFound
	}
	if !existing.Active {
		return existing, nil
	}

	updated, err := u.repo.Deactivate(ctx, connectionID)
	if err != nil {
		return entities.InsurerConnection{}, err
	}
	if updated.ID == "" {
		return entities.InsurerConnection{}, ErrConnectionNotFound
	}
	return updated, nil
}
