package controllers

import (
	"context"
	"strings"
	"time"

	"github.com/envelope-zero/expenses/pkg/entity"
	"github.com/envelope-zero/expenses/pkg/kv"
	"github.com/envelope-zero/expenses/pkg/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/text/currency"
)

// Controller holds the dependencies of all API handlers.
type Controller struct {
	Store      kv.Store
	Categories *entity.Repository[models.Category]
	Expenses   *entity.Repository[models.Expense]

	// Now returns the current time in the location that calendar months are
	// evaluated in.
	Now func() time.Time

	// Currency of all amounts, used for exports.
	Currency currency.Unit
}

// New returns a Controller with one repository per entity on store.
//
// If now is nil, time.Now is used.
func New(store kv.Store, now func() time.Time, unit currency.Unit) Controller {
	if now == nil {
		now = time.Now
	}

	return Controller{
		Store:      store,
		Categories: entity.New(store, models.CategoryConfig()),
		Expenses:   entity.New(store, models.ExpenseConfig(now)),
		Now:        now,
		Currency:   unit,
	}
}

// Seed writes the seed data for every entity whose index is empty.
func (co Controller) Seed(ctx context.Context) error {
	if _, err := co.Categories.EnsureSeed(ctx); err != nil {
		return err
	}

	_, err := co.Expenses.EnsureSeed(ctx)
	return err
}

// Repair rebuilds the indexes of all entities from the stored records.
func (co Controller) Repair(ctx context.Context) ([]entity.RepairReport, error) {
	categories, err := co.Categories.Repair(ctx)
	if err != nil {
		return nil, err
	}

	expenses, err := co.Expenses.Repair(ctx)
	if err != nil {
		return nil, err
	}

	return []entity.RepairReport{categories, expenses}, nil
}

func (co Controller) allCategories(ctx context.Context) ([]models.Category, error) {
	if _, err := co.Categories.EnsureSeed(ctx); err != nil {
		return nil, err
	}

	return co.Categories.All(ctx)
}

func (co Controller) allExpenses(ctx context.Context) ([]models.Expense, error) {
	if _, err := co.Expenses.EnsureSeed(ctx); err != nil {
		return nil, err
	}

	return co.Expenses.All(ctx)
}

// respond writes body as JSON. If the request changed any entities, the
// names of the touched indexes are sent in the X-Invalidate header.
func respond(c *gin.Context, status int, body any) {
	if cs := entity.ChangeSetFrom(c.Request.Context()); cs != nil {
		if indexes := cs.Indexes(); len(indexes) > 0 {
			c.Header("X-Invalidate", strings.Join(indexes, ","))
		}
	}

	c.JSON(status, body)
}
