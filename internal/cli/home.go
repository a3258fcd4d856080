package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/2beens/grunga/internal/boss"
	"github.com/2beens/grunga/internal/demo"
	"github.com/2beens/grunga/internal/grunga"
	"github.com/2beens/grunga/internal/home"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func (a *app) homeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Greeting, points, weekly progress and the boss",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := a.ctx(cmd)
			out := cmd.OutOrStdout()

			var view home.View
			if a.useDemo(ctx, out) {
				d := demo.Default()
				view = home.BuildView(d.User, d.Points, a.opts.Now())
				view.Demo = true
			} else {
				user, points, err := a.userPoints(cmd)
				if err != nil {
					return fmt.Errorf("could not load your summary: %w", err)
				}
				view = home.BuildView(*user, *points, a.opts.Now())
			}

			printHome(out, view)
			return nil
		},
	}
}

func (a *app) userPoints(cmd *cobra.Command) (*grunga.User, *grunga.Points, error) {
	ctx := a.ctx(cmd)
	user, err := a.me(ctx)
	if err != nil {
		return nil, nil, err
	}
	points, err := a.api.GetPoints(ctx, user.UserID)
	if err != nil {
		return nil, nil, err
	}
	return user, points, nil
}

func printHome(w io.Writer, view home.View) {
	fmt.Fprintln(w, view.Greeting)
	fmt.Fprintf(w, "Total: %d  Weekly: %d  Daily: %d  Streak: %d\n",
		view.TotalPoints, view.WeeklyPoints, view.DailyPoints, view.Streak)

	bars := make([]string, 0, len(view.WeeklyChart.Bars))
	for _, bar := range view.WeeklyChart.Bars {
		bars = append(bars, fmt.Sprintf("%s %d", bar.Label, bar.Points))
	}
	fmt.Fprintf(w, "Week: %s\n", strings.Join(bars, " | "))

	if view.Boss.Present {
		fmt.Fprintf(w, "Boss %s: %s (%d%%)\n", view.Boss.Name, view.Boss.Title, view.Boss.HPPercent)
	}
}

func (a *app) bossCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "boss",
		Short: "Boss HP bar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := a.ctx(cmd)
			out := cmd.OutOrStdout()

			var view boss.View
			if a.useDemo(ctx, out) {
				view = boss.BuildView(demo.Default().Points.Boss)
				view.Demo = true
			} else {
				_, points, err := a.userPoints(cmd)
				if err != nil {
					return fmt.Errorf("%s: %w", boss.MsgLoadError, err)
				}
				view = boss.BuildView(points.Boss)
			}

			if !view.Present {
				fmt.Fprintln(out, "No boss this week.")
				return nil
			}
			return printBoss(out, view)
		},
	}
}

func printBoss(w io.Writer, view boss.View) error {
	fmt.Fprintf(w, "%s - %s\n", view.Name, view.Title)

	bar := progressbar.NewOptions(100,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("HP"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetPredictTime(false),
	)
	if err := bar.Set(view.HPPercent); err != nil {
		return fmt.Errorf("draw hp bar: %w", err)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, view.Status)
	return nil
}

func (a *app) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the Grunga API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.api.Health(a.ctx(cmd)); err != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Grunga API: down (%s)\n", err)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Grunga API: ok")
			return nil
		},
	}
}
