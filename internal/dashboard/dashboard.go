// Package dashboard owns the interactive state of a spending dashboard: the
// dataset, the active category selection, the derived KPI and chart configs,
// and the transient warning notice.
package dashboard

import (
	"errors"
	"fmt"
	"time"

	"github.com/theirongolddev/spendboard/internal/budget"
	"github.com/theirongolddev/spendboard/internal/charts"
	"github.com/theirongolddev/spendboard/internal/selection"

	"go.uber.org/zap"
)

// NoticeTTL is the default lifetime of a notice.
const NoticeTTL = 2200 * time.Millisecond

// ErrTooFewCategories is returned by New for datasets that cannot satisfy
// the minimum selection.
var ErrTooFewCategories = errors.New("dataset has too few categories")

// Options configures a Controller. Zero values get defaults.
type Options struct {
	NoticeTTL time.Duration
	Now       func() time.Time
	Logger    *zap.Logger
}

// LegendRow is one entry of the category legend.
type LegendRow struct {
	Category string
	Color    string
	On       bool
}

// Snapshot is everything a view needs to draw the dashboard.
type Snapshot struct {
	KPITotal  float64
	KPIMonth  string
	Selected  int
	Legend    []LegendRow
	Charts    charts.Set
	Notice    string
	NoticeGen uint64
}

type notice struct {
	text    string
	gen     uint64
	expires time.Time
}

// Controller is the single owner of dashboard state. It is not safe for
// concurrent use; the TUI drives it from its update loop.
type Controller struct {
	ds  *budget.Dataset
	sel *selection.Set

	total  float64
	charts charts.Set

	notice notice
	gen    uint64
	ttl    time.Duration
	now    func() time.Time
	log    *zap.Logger
}

// New creates a controller with every category selected and derived state
// computed.
func New(ds *budget.Dataset, opts Options) (*Controller, error) {
	if ds == nil {
		return nil, fmt.Errorf("%w: nil dataset", budget.ErrInvalidDataset)
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}
	if len(ds.Categories) < selection.MinSelected {
		return nil, fmt.Errorf("%w: have %d, need %d",
			ErrTooFewCategories, len(ds.Categories), selection.MinSelected)
	}

	c := &Controller{
		ds:  ds,
		sel: selection.New(ds.Categories),
		ttl: opts.NoticeTTL,
		now: opts.Now,
		log: opts.Logger,
	}
	if c.ttl <= 0 {
		c.ttl = NoticeTTL
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	c.Recompute()
	return c, nil
}

// Dataset returns the dataset the controller was built with.
func (c *Controller) Dataset() *budget.Dataset { return c.ds }

// Selected returns the active categories in fixed order.
func (c *Controller) Selected() []string { return c.sel.Selected() }

// Has reports whether a category is active.
func (c *Controller) Has(cat string) bool { return c.sel.Has(cat) }

// NoticeTTL returns how long a posted notice stays visible.
func (c *Controller) NoticeTTL() time.Duration { return c.ttl }

// Toggle flips a category. On success the KPI and charts are recomputed.
// When the minimum-selection guard refuses the change, a warning notice is
// posted and selection.ErrMinSelection is returned.
func (c *Controller) Toggle(cat string) error {
	err := c.sel.Toggle(cat)
	switch {
	case err == nil:
		c.log.Debug("toggle accepted",
			zap.String("category", cat),
			zap.Bool("on", c.sel.Has(cat)),
			zap.Int("selected", c.sel.Len()))
		c.Recompute()
		return nil
	case errors.Is(err, selection.ErrMinSelection):
		c.log.Info("toggle rejected", zap.String("category", cat), zap.Error(err))
		c.PostNotice(err.Error())
		return err
	default:
		c.log.Warn("toggle failed", zap.String("category", cat), zap.Error(err))
		return err
	}
}

// Only narrows the selection to the given categories by toggling off every
// other one in fixed order. The guard still applies: when fewer than
// selection.MinSelected remain it stops and returns ErrMinSelection, leaving
// the selection at the guard's floor.
func (c *Controller) Only(cats []string) error {
	keep := make(map[string]bool, len(cats))
	for _, cat := range cats {
		if !c.ds.Has(cat) {
			return fmt.Errorf("%w: %q", selection.ErrUnknownCategory, cat)
		}
		keep[cat] = true
	}
	for _, cat := range c.ds.Categories {
		if keep[cat] && !c.sel.Has(cat) {
			if err := c.Toggle(cat); err != nil {
				return err
			}
		}
	}
	for _, cat := range c.ds.Categories {
		if !keep[cat] && c.sel.Has(cat) {
			if err := c.Toggle(cat); err != nil {
				return err
			}
		}
	}
	return nil
}

// Recompute re-derives the KPI total and rebuilds every chart config from the
// current selection.
func (c *Controller) Recompute() {
	selected := c.sel.Selected()
	c.total = c.ds.SelectedTotal(selected)
	c.charts = charts.Build(c.ds, c.sel)
}

// PostNotice shows text until NoticeTTL elapses or another notice replaces
// it. The returned generation identifies this notice for ClearNotice.
func (c *Controller) PostNotice(text string) uint64 {
	c.gen++
	c.notice = notice{
		text:    text,
		gen:     c.gen,
		expires: c.now().Add(c.ttl),
	}
	return c.gen
}

// ClearNotice removes the notice only if gen is still the current one. A
// clear scheduled for a replaced notice is ignored and reports false.
func (c *Controller) ClearNotice(gen uint64) bool {
	if c.notice.text == "" || c.notice.gen != gen {
		return false
	}
	c.notice = notice{}
	return true
}

// View returns the current dashboard snapshot. An expired notice is omitted
// even if its clear has not arrived yet.
func (c *Controller) View() Snapshot {
	legend := make([]LegendRow, len(c.ds.Categories))
	for i, cat := range c.ds.Categories {
		legend[i] = LegendRow{
			Category: cat,
			Color:    c.ds.ColorFor(cat),
			On:       c.sel.Has(cat),
		}
	}

	snap := Snapshot{
		KPITotal: c.total,
		KPIMonth: c.ds.CurrentMonth(),
		Selected: c.sel.Len(),
		Legend:   legend,
		Charts:   c.charts,
	}
	if c.notice.text != "" && c.now().Before(c.notice.expires) {
		snap.Notice = c.notice.text
		snap.NoticeGen = c.notice.gen
	}
	return snap
}
