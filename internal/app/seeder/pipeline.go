package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/localcrm/internal/config"
	"github.com/heartmarshall/localcrm/internal/domain"
)

// phases defines the canonical execution order.
var phases = []string{"users", "stages", "accounts", "contacts", "deals", "activities", "notes"}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Duration time.Duration
}

// Pipeline wipes the database and inserts the demo dataset in a single
// transaction. A failing phase rolls everything back.
type Pipeline struct {
	log        *slog.Logger
	tx         txManager
	wiper      wiper
	repos      Repos
	cfg        config.SeedConfig
	bcryptCost int

	results map[string]PhaseResult

	// ids created during the run, indexed like the dataset slices
	adminID    int64
	stageIDs   []int64
	accountIDs []int64
	contactIDs []int64
	dealIDs    []int64
}

// NewPipeline creates a new Pipeline. bcryptCost <= 0 uses bcrypt.DefaultCost.
func NewPipeline(log *slog.Logger, tx txManager, w wiper, repos Repos, cfg config.SeedConfig, bcryptCost int) *Pipeline {
	if bcryptCost <= 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Pipeline{
		log:        log.With("component", "seeder"),
		tx:         tx,
		wiper:      w,
		repos:      repos,
		cfg:        cfg,
		bcryptCost: bcryptCost,
		results:    make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// Run executes every phase inside one transaction.
func (p *Pipeline) Run(ctx context.Context) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(p.cfg.AdminPassword), p.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	err = p.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := p.wiper.Wipe(ctx); err != nil {
			return err
		}
		for _, phase := range phases {
			start := time.Now()
			n, err := p.runPhase(ctx, phase, string(hash))
			if err != nil {
				return fmt.Errorf("seed %s: %w", phase, err)
			}
			p.results[phase] = PhaseResult{Inserted: n, Duration: time.Since(start)}
			p.log.DebugContext(ctx, "phase completed", slog.String("phase", phase), slog.Int("inserted", n))
		}
		return nil
	})
	if err != nil {
		clear(p.results)
		return err
	}

	p.log.InfoContext(ctx, "seed completed",
		slog.Int("deals", p.results["deals"].Inserted),
		slog.String("admin_email", p.cfg.AdminEmail),
	)
	return nil
}

func (p *Pipeline) runPhase(ctx context.Context, phase, hash string) (int, error) {
	switch phase {
	case "users":
		u, err := p.repos.Users.Create(ctx, p.cfg.AdminEmail, hash, p.cfg.AdminName)
		if err != nil {
			return 0, err
		}
		p.adminID = u.ID
		return 1, nil
	case "stages":
		return insertAll(stages, &p.stageIDs, func(s domain.StageParams) (int64, error) {
			st, err := p.repos.Stages.Create(ctx, s)
			if err != nil {
				return 0, err
			}
			return st.ID, nil
		})
	case "accounts":
		return insertAll(accounts, &p.accountIDs, func(a domain.AccountParams) (int64, error) {
			acc, err := p.repos.Accounts.Create(ctx, a)
			if err != nil {
				return 0, err
			}
			return acc.ID, nil
		})
	case "contacts":
		return insertAll(contacts, &p.contactIDs, func(r contactRow) (int64, error) {
			params := r.params
			params.AccountID = p.accountIDs[r.account]
			c, err := p.repos.Contacts.Create(ctx, params)
			if err != nil {
				return 0, err
			}
			return c.ID, nil
		})
	case "deals":
		return insertAll(deals, &p.dealIDs, func(r dealRow) (int64, error) {
			params := r.params
			params.AccountID = p.accountIDs[r.account]
			contactID := p.contactIDs[r.contact]
			params.PrimaryContactID = &contactID
			params.StageID = p.stageIDs[r.stage]
			params.OwnerUserID = p.adminID
			d, err := p.repos.Deals.Create(ctx, params)
			if err != nil {
				return 0, err
			}
			return d.ID, nil
		})
	case "activities":
		var ids []int64
		return insertAll(activities, &ids, func(r activityRow) (int64, error) {
			params := r.params
			params.DealID = p.dealIDs[r.deal]
			params.AssignedUserID = p.adminID
			a, err := p.repos.Activities.Create(ctx, params)
			if err != nil {
				return 0, err
			}
			return a.ID, nil
		})
	case "notes":
		var ids []int64
		return insertAll(notes, &ids, func(r noteRow) (int64, error) {
			n, err := p.repos.Notes.Create(ctx, domain.NoteParams{
				DealID:       p.dealIDs[r.deal],
				AuthorUserID: p.adminID,
				Body:         r.body,
			})
			if err != nil {
				return 0, err
			}
			return n.ID, nil
		})
	default:
		return 0, fmt.Errorf("unknown phase %q", phase)
	}
}

func insertAll[T any](rows []T, ids *[]int64, insert func(T) (int64, error)) (int, error) {
	*ids = make([]int64, 0, len(rows))
	for _, row := range rows {
		id, err := insert(row)
		if err != nil {
			return len(*ids), err
		}
		*ids = append(*ids, id)
	}
	return len(*ids), nil
}
