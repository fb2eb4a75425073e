package rest

import (
	"time"

	"github.com/heartmarshall/localcrm/internal/domain"
	"github.com/heartmarshall/localcrm/internal/service/dashboard"
)

const dateLayout = "2006-01-02"

type userResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type accountResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Industry  *string   `json:"industry"`
	Website   *string   `json:"website"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type contactResponse struct {
	ID        int64     `json:"id"`
	AccountID int64     `json:"account_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	Title     *string   `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type stageResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	OrderIndex int    `json:"order_index"`
	IsWon      int    `json:"is_won"`
	IsLost     int    `json:"is_lost"`
}

type dealResponse struct {
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

type activityResponse struct {
	ID             int64     `json:"id"`
	DealID         int64     `json:"deal_id"`
	Type           string    `json:"type"`
	Subject        string    `json:"subject"`
	DueDate        *string   `json:"due_date"`
	Status         string    `json:"status"`
	AssignedUserID int64     `json:"assigned_user_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type noteResponse struct {
	ID           int64     `json:"id"`
	DealID       int64     `json:"deal_id"`
	AuthorUserID int64     `json:"author_user_id"`
	Body         string    `json:"body"`
	CreatedAt    time.Time `json:"created_at"`
}

type stageTotalResponse struct {
	StageID   int64   `json:"stage_id"`
	DealCount int64   `json:"deal_count"`
	Amount    float64 `json:"amount"`
}

type dashboardResponse struct {
	PipelineTotal float64              `json:"pipeline_total"`
	DealCount     int64                `json:"deal_count"`
	AccountCount  int64                `json:"account_count"`
	StageCount    int64                `json:"stage_count"`
	Stages        []stageTotalResponse `json:"stages"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// mapSlice converts a slice and never returns nil, so empty lists encode as [].
func mapSlice[T, R any](in []T, f func(*T) R) []R {
	out := make([]R, len(in))
	for i := range in {
		out[i] = f(&in[i])
	}
	return out
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Email: u.Email, Name: u.Name}
}

func toAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Industry:  a.Industry,
		Website:   a.Website,
		Phone:     a.Phone,
		Address:   a.Address,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toContactResponse(c *domain.Contact) contactResponse {
	return contactResponse{
		ID:        c.ID,
		AccountID: c.AccountID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toStageResponse(s *domain.Stage) stageResponse {
	return stageResponse{
		ID:         s.ID,
		Name:       s.Name,
		OrderIndex: s.OrderIndex,
		IsWon:      s.IsWon,
		IsLost:     s.IsLost,
	}
}

func toDealResponse(d *domain.Deal) dealResponse {
	return dealResponse{
		ID:               d.ID,
		AccountID:        d.AccountID,
		PrimaryContactID: d.PrimaryContactID,
		Title:            d.Title,
		Amount:           d.Amount,
		Currency:         d.Currency,
		StageID:          d.StageID,
		OwnerUserID:      d.OwnerUserID,
		CloseDate:        formatDate(d.CloseDate),
		CreatedAt:        d.CreatedAt,
		UpdatedAt:        d.UpdatedAt,
	}
}

func toActivityResponse(a *domain.Activity) activityResponse {
	return activityResponse{
		ID:             a.ID,
		DealID:         a.DealID,
		Type:           a.Type,
		Subject:        a.Subject,
		DueDate:        formatDate(a.DueDate),
		Status:         a.Status,
		AssignedUserID: a.AssignedUserID,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}

func toNoteResponse(n *domain.Note) noteResponse {
	return noteResponse{
		ID:           n.ID,
		DealID:       n.DealID,
		AuthorUserID: n.AuthorUserID,
		Body:         n.Body,
		CreatedAt:    n.CreatedAt,
	}
}

func toDashboardResponse(s *dashboard.Summary) dashboardResponse {
	return dashboardResponse{
		PipelineTotal: s.PipelineTotal,
		DealCount:     s.DealCount,
		AccountCount:  s.AccountCount,
		StageCount:    s.StageCount,
		Stages: mapSlice(s.Stages, func(t *domain.StageTotal) stageTotalResponse {
			return stageTotalResponse{StageID: t.StageID, DealCount: t.Count, Amount: t.Amount}
		}),
	}
}
