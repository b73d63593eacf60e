package controller

import (
	"context"

	"github.com/akyairhashvil/aulaplan/internal/models"
)

// DataClient is the backend contract the controller depends on.
// client.Client implements it over HTTP.
//
//go:generate mockgen -source=client.go -destination=mock_client_test.go -package=controller
type DataClient interface {
	ListGroups(ctx context.Context) ([]models.Group, error)
	ListWeeks(ctx context.Context, groupID models.ID) ([]models.Week, error)
	CreateWeek(ctx context.Context, p models.WeekPayload) (models.Week, error)
	UpdateWeek(ctx context.Context, id models.ID, p models.WeekPayload) (models.Week, error)
	DeleteWeek(ctx context.Context, id models.ID) error
}
