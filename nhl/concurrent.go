package nhl

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// boxscoreFetchLimit bounds the fan-out so a busy slate does not open
// a connection per game at once.
const boxscoreFetchLimit = 5

// DailyBoxscores fetches the day's schedule and then the boxscore of
// every game on it concurrently. Result order follows the schedule.
// Requests are independent; the first failure cancels the rest.
func (c *Client) DailyBoxscores(ctx context.Context, date GameDate) ([]*Boxscore, error) {
	schedule, err := c.DailySchedule(ctx, date)
	if err != nil {
		return nil, err
	}
	if len(schedule.Games) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(boxscoreFetchLimit)

	var mu sync.Mutex
	boxscores := make([]*Boxscore, len(schedule.Games))

	for i, game := range schedule.Games {
		i, game := i, game
		g.Go(func() error {
			box, err := c.Boxscore(ctx, game.ID)
			if err != nil {
				return err
			}
			mu.Lock()
			boxscores[i] = box
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return boxscores, nil
}
