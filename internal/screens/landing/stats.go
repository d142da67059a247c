package landing

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/sync/errgroup"

	"github.com/przant/jeopardy-trainer/internal/domain"
	"github.com/przant/jeopardy-trainer/internal/remote"
	"github.com/przant/jeopardy-trainer/internal/store"
)

// statsTimeout bounds one refresh of all domains.
const statsTimeout = 15 * time.Second

// StatsSource reports seen-count statistics per domain.
type StatsSource interface {
	Stats(ctx context.Context, d domain.Domain) (*remote.Stats, error)
}

// HistorySource reports the newest local result per domain.
type HistorySource interface {
	LatestByDomain(ctx context.Context) (map[domain.Domain]store.SessionRecord, error)
}

// statsLoadedMsg carries one refresh. Gen discards refreshes that were
// overtaken by a newer one.
type statsLoadedMsg struct {
	Gen    int
	Stats  map[domain.Domain]*remote.Stats
	Errs   map[domain.Domain]error
	Latest map[domain.Domain]store.SessionRecord
	// HistErr is set when the local results could not be read. Stats
	// failures are per domain and never end up here.
	HistErr error
}

// loadStats fetches every domain concurrently. A failing domain is
// recorded in Errs and never affects the others or the history lookup.
func loadStats(gen int, src StatsSource, hist HistorySource) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), statsTimeout)
		defer cancel()

		msg := statsLoadedMsg{
			Gen:   gen,
			Stats: make(map[domain.Domain]*remote.Stats),
			Errs:  make(map[domain.Domain]error),
		}
		var mu sync.Mutex
		var g errgroup.Group

		if src != nil {
			for _, d := range domain.All() {
				g.Go(func() error {
					st, err := src.Stats(ctx, d)
					mu.Lock()
					defer mu.Unlock()
					if err != nil {
						msg.Errs[d] = err
						return nil
					}
					msg.Stats[d] = st
					return nil
				})
			}
		}
		if hist != nil {
			g.Go(func() error {
				latest, err := hist.LatestByDomain(ctx)
				if err != nil {
					return fmt.Errorf("load latest results: %w", err)
				}
				mu.Lock()
				msg.Latest = latest
				mu.Unlock()
				return nil
			})
		}
		msg.HistErr = g.Wait()
		return msg
	}
}

// statsLine formats the landing summary of a domain's question bank.
func statsLine(st *remote.Stats, err error) string {
	if err != nil || st == nil {
		return "stats unavailable"
	}
	return fmt.Sprintf("%d unseen • %d active", st.Unseen, st.Active())
}

// lastScoreLine formats the newest local result of a domain.
func lastScoreLine(rec store.SessionRecord) string {
	return fmt.Sprintf("last: %d/%d (%s%%)", rec.Score, rec.Total,
		strconv.FormatFloat(rec.Percentage, 'f', -1, 64))
}
