package client

import (
	"fmt"
	"time"

	"github.com/heartmarshall/localcrm/internal/domain"
)

const dateLayout = "2006-01-02"

type userJSON struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (u userJSON) toDomain() *domain.User {
	return &domain.User{ID: u.ID, Email: u.Email, Name: u.Name}
}

type stageJSON struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	OrderIndex int    `json:"order_index"`
	IsWon      int    `json:"is_won"`
	IsLost     int    `json:"is_lost"`
}

func (s stageJSON) toDomain() domain.Stage {
	return domain.Stage{ID: s.ID, Name: s.Name, OrderIndex: s.OrderIndex, IsWon: s.IsWon, IsLost: s.IsLost}
}

type dealJSON struct {
	ID               int64     `json:"id"`
	AccountID        int64     `json:"account_id"`
	PrimaryContactID *int64    `json:"primary_contact_id"`
	Title            string    `json:"title"`
	Amount           float64   `json:"amount"`
	Currency         string    `json:"currency"`
	StageID          int64     `json:"stage_id"`
	OwnerUserID      int64     `json:"owner_user_id"`
	CloseDate        *string   `json:"close_date"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (d dealJSON) toDomain() (*domain.Deal, error) {
	out := &domain.Deal{
		ID:               d.ID,
		AccountID:        d.AccountID,
		PrimaryContactID: d.PrimaryContactID,
		Title:            d.Title,
		Amount:           d.Amount,
		Currency:         d.Currency,
		StageID:          d.StageID,
		OwnerUserID:      d.OwnerUserID,
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
	if d.CloseDate != nil && *d.CloseDate != "" {
		t, err := time.Parse(dateLayout, *d.CloseDate)
		if err != nil {
			return nil, fmt.Errorf("deal %d close_date: %w", d.ID, err)
		}
		out.CloseDate = &t
	}
	return out, nil
}
