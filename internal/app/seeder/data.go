package seeder

import (
	"time"

	"github.com/heartmarshall/localcrm/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

var stages = []domain.StageParams{
	{Name: "Lead", OrderIndex: 1},
	{Name: "Qualified", OrderIndex: 2},
	{Name: "Proposal", OrderIndex: 3},
	{Name: "Negotiation", OrderIndex: 4},
	{Name: "Won", OrderIndex: 5, IsWon: 1},
	{Name: "Lost", OrderIndex: 6, IsLost: 1},
}

var accounts = []domain.AccountParams{
	{Name: "Summit Labs", Industry: ptr("Healthcare"), Website: ptr("https://summit.example"), Phone: ptr("555-0101"), Address: ptr("123 Pine St")},
	{Name: "Atlas Manufacturing", Industry: ptr("Manufacturing"), Website: ptr("https://atlas.example"), Phone: ptr("555-0110"), Address: ptr("98 Forge Rd")},
	{Name: "Brightline Marketing", Industry: ptr("Marketing"), Website: ptr("https://brightline.example"), Phone: ptr("555-0199"), Address: ptr("76 Sunset Blvd")},
}

// Foreign keys in the rows below are indexes into the slices created
// earlier in the run.

type contactRow struct {
	account int
	params  domain.ContactParams
}

var contacts = []contactRow{
	{0, domain.ContactParams{FirstName: "Jamie", LastName: "Ng", Email: ptr("jamie@summit.example"), Phone: ptr("555-2211"), Title: ptr("Operations")}},
	{0, domain.ContactParams{FirstName: "Priya", LastName: "Sato", Email: ptr("priya@summit.example"), Phone: ptr("555-2212"), Title: ptr("IT Director")}},
	{1, domain.ContactParams{FirstName: "Carlos", LastName: "Diaz", Email: ptr("carlos@atlas.example"), Phone: ptr("555-3301"), Title: ptr("Plant Manager")}},
	{2, domain.ContactParams{FirstName: "Mia", LastName: "Chen", Email: ptr("mia@brightline.example"), Phone: ptr("555-7701"), Title: ptr("CMO")}},
}

type dealRow struct {
	account, contact, stage int
	params                  domain.DealParams
}

var deals = []dealRow{
	{0, 0, 1, domain.DealParams{Title: "Summit Labs Expansion", Amount: 42000, Currency: domain.DefaultCurrency, CloseDate: date("2024-12-15")}},
	{1, 2, 2, domain.DealParams{Title: "Atlas Automation Retrofit", Amount: 98000, Currency: domain.DefaultCurrency, CloseDate: date("2024-11-20")}},
	{2, 3, 0, domain.DealParams{Title: "Brightline Campaign Rollout", Amount: 55000, Currency: domain.DefaultCurrency, CloseDate: date("2024-10-05")}},
}

type activityRow struct {
	deal   int
	params domain.ActivityParams
}

var activities = []activityRow{
	{0, domain.ActivityParams{Type: "call", Subject: "Discovery call", DueDate: date("2024-09-10"), Status: domain.ActivityStatusOpen}},
	{1, domain.ActivityParams{Type: "meeting", Subject: "On-site walkthrough", DueDate: date("2024-09-14"), Status: domain.ActivityStatusDone}},
}

type noteRow struct {
	deal int
	body string
}

var notes = []noteRow{
	{0, "Client wants phased rollout with training."},
	{1, "Budget confirmed; waiting on final approval."},
}
