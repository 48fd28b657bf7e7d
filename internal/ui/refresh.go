package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AstroCB/UMD-Gym/internal/recwell"
	"github.com/AstroCB/UMD-Gym/internal/report"
	"github.com/AstroCB/UMD-Gym/internal/state"
)

// Messages

// refreshDoneMsg carries the outcome of one fetch-and-parse cycle back to
// the program loop.
type refreshDoneMsg struct {
	latest recwell.Latest
	err    error
}

// reportDoneMsg carries the outcome of opening the report email.
type reportDoneMsg struct {
	err error
}

// Commands

// refreshCmd fetches the feed, extracts the weight room, and records the
// outcome in the store before reporting back. The whole cycle runs in the
// command goroutine; only the returned message touches the model.
func refreshCmd(ctx context.Context, fetcher recwell.Fetcher, store *state.Store) tea.Cmd {
	return func() tea.Msg {
		fac, err := refresh(ctx, fetcher)
		if store != nil {
			if err != nil {
				store.Update(nil, err)
			} else {
				store.Update(&fac, nil)
			}
		}
		if err != nil {
			return refreshDoneMsg{err: err}
		}
		return refreshDoneMsg{latest: fac.Latest}
	}
}

// refresh runs one fetch-and-parse cycle. Errors keep their taxonomy
// identity so alert wording can be picked with errors.Is; the fetch wrapper
// is the only one without a sentinel, making it the connectivity kind.
func refresh(ctx context.Context, fetcher recwell.Fetcher) (recwell.Facility, error) {
	if fetcher == nil {
		return recwell.Facility{}, fmt.Errorf("no fetcher configured")
	}
	body, err := fetcher.Fetch(ctx)
	if err != nil {
		return recwell.Facility{}, fmt.Errorf("fetch feed: %w", err)
	}
	feed, err := recwell.ParseFeed(body)
	if err != nil {
		return recwell.Facility{}, err
	}
	return feed.Facility(recwell.WeightRoomTitle)
}

// reportCmd opens the pre-addressed report email off the program loop.
func reportCmd() tea.Cmd {
	return func() tea.Msg {
		return reportDoneMsg{err: report.Send()}
	}
}
