package cli

import (
	"fmt"

	"github.com/2beens/grunga/internal/demo"
	"github.com/2beens/grunga/internal/page"
	"github.com/2beens/grunga/internal/workouts"

	"github.com/spf13/cobra"
)

func (a *app) workoutsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workouts",
		Short: "List, log, edit and delete workouts",
	}
	cmd.AddCommand(
		a.workoutsListCmd(),
		a.workoutsAddCmd(),
		a.workoutsUpdateCmd(),
		a.workoutsDeleteCmd(),
	)
	return cmd
}

func (a *app) workoutsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List logged workouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := a.ctx(cmd)
			out := cmd.OutOrStdout()

			var view workouts.View
			if a.useDemo(ctx, out) {
				view = workouts.BuildView(demo.Default().Workouts)
			} else {
				user, err := a.me(ctx)
				if err != nil {
					return fmt.Errorf("%s: %w", workouts.MsgLoadError, err)
				}
				list, err := a.api.ListWorkouts(ctx, user.UserID)
				if err != nil {
					return fmt.Errorf("%s: %w", workouts.MsgLoadError, err)
				}
				view = workouts.BuildView(list)
			}

			if len(view.Rows) == 0 {
				fmt.Fprintln(out, "No workouts yet.")
				return nil
			}
			for _, row := range view.Rows {
				fmt.Fprintf(out, "#%d  %s  %s\n", row.WorkoutID, row.Date, row.Text)
			}
			return nil
		},
	}
}

func (a *app) workoutsAddCmd() *cobra.Command {
	var (
		workoutType string
		duration    int
		reps        int
		sets        int
		date        string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a workout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := workouts.CreateRequest{
				Type:     workoutType,
				Duration: page.FlexInt(duration),
				Reps:     page.FlexInt(reps),
				Sets:     page.FlexInt(sets),
				Date:     date,
			}
			nw, err := workouts.BuildNewWorkout(req, a.opts.Now())
			if err != nil {
				return err
			}

			ctx := a.ctx(cmd)
			user, err := a.me(ctx)
			if err != nil {
				return fmt.Errorf("%s: %w", workouts.MsgSaveError, err)
			}
			res, err := a.api.CreateWorkout(ctx, user.UserID, nw)
			if err != nil {
				return fmt.Errorf("%s: %w", workouts.MsgSaveError, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, workouts.MsgLogged)
			fmt.Fprintln(out, workouts.BuildPreview(nw.WorkoutType, duration, reps).Text)
			if res.Totals != nil {
				fmt.Fprintf(out, "Total: %d  Weekly: %d  Daily: %d\n", res.Totals.Total, res.Totals.Weekly, res.Totals.Daily)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workoutType, "type", "t", "", "workout type (run, bike, walk, swim, pushups, squats, lunges, crunches)")
	cmd.Flags().IntVarP(&duration, "duration", "d", 0, "minutes, for duration workouts")
	cmd.Flags().IntVarP(&reps, "reps", "r", 0, "reps, for rep workouts")
	cmd.Flags().IntVarP(&sets, "sets", "s", 1, "sets, for rep workouts")
	cmd.Flags().StringVar(&date, "date", "", "workout date, now when empty")
	return cmd
}

func (a *app) workoutsUpdateCmd() *cobra.Command {
	var (
		workoutType string
		reps        int
		sets        int
		date        string
	)

	cmd := &cobra.Command{
		Use:   "update <workout-id>",
		Short: "Edit a workout; only the given flags change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workoutID, err := page.ParseID(args[0])
			if err != nil {
				return err
			}

			var req workouts.UpdateRequest
			if cmd.Flags().Changed("type") {
				req.Type = &workoutType
			}
			if cmd.Flags().Changed("reps") {
				req.Reps = &reps
			}
			if cmd.Flags().Changed("sets") {
				req.Sets = &sets
			}
			if cmd.Flags().Changed("date") {
				req.Date = &date
			}
			update, err := workouts.BuildUpdate(req)
			if err != nil {
				return err
			}

			ctx := a.ctx(cmd)
			user, err := a.me(ctx)
			if err != nil {
				return fmt.Errorf("%s: %w", workouts.MsgUpdateError, err)
			}
			if _, err := a.api.UpdateWorkout(ctx, user.UserID, workoutID, update); err != nil {
				return fmt.Errorf("%s: %w", workouts.MsgUpdateError, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Workout %d updated.\n", workoutID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&workoutType, "type", "t", "", "new workout type")
	cmd.Flags().IntVarP(&reps, "reps", "r", 0, "new reps")
	cmd.Flags().IntVarP(&sets, "sets", "s", 0, "new sets")
	cmd.Flags().StringVar(&date, "date", "", "new date")
	return cmd
}

func (a *app) workoutsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <workout-id>",
		Short: "Delete a workout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			workoutID, err := page.ParseID(args[0])
			if err != nil {
				return err
			}

			ctx := a.ctx(cmd)
			user, err := a.me(ctx)
			if err != nil {
				return fmt.Errorf("%s: %w", workouts.MsgDeleteError, err)
			}
			if _, err := a.api.DeleteWorkout(ctx, user.UserID, workoutID); err != nil {
				return fmt.Errorf("%s: %w", workouts.MsgDeleteError, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Workout %d deleted.\n", workoutID)
			return nil
		},
	}
}
