// Package cli is the terminal front end: the same pages as the web
// service, rendered as text.
package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/grunga/internal/grunga"
	"github.com/2beens/grunga/internal/identity"
	"github.com/2beens/grunga/pkg"

	"github.com/manifoldco/promptui"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const (
	defaultAPIURL = "http://127.0.0.1:5000/api"
	demoNotice    = "(Grunga API unreachable, showing demo data)"
)

// Picker chooses one of items, interactively in the real binary.
type Picker func(label string, items []string) (string, error)

func PromptPicker(label string, items []string) (string, error) {
	prompt := promptui.Select{
		Label: label,
		Items: items,
	}
	_, picked, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("pick %s: %w", strings.ToLower(label), err)
	}
	return picked, nil
}

type Options struct {
	APIURL     string
	StatePath  string
	DemoUsers  []string
	Timeout    time.Duration
	HTTPClient *http.Client
	Now        func() time.Time
	Picker     Picker
}

type app struct {
	opts  Options
	state State
	users *identity.Users
	api   *grunga.Client
}

func NewRootCommand(opts Options) *cobra.Command {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Picker == nil {
		opts.Picker = PromptPicker
	}
	if opts.StatePath == "" {
		opts.StatePath = DefaultStatePath()
	}

	a := &app{opts: opts}

	rootCmd := &cobra.Command{
		Use:           "grungactl",
		Short:         "Grunga in the terminal: points, boss, workouts, challenges and friends",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.opts.APIURL, "api", opts.APIURL, "Grunga API base URL")
	rootCmd.PersistentFlags().StringVar(&a.opts.StatePath, "state", opts.StatePath, "state file path")
	rootCmd.PersistentFlags().StringSliceVar(&a.opts.DemoUsers, "demo-users", opts.DemoUsers, "known demo users")

	rootCmd.AddCommand(
		a.homeCmd(),
		a.bossCmd(),
		a.healthCmd(),
		a.workoutsCmd(),
		a.challengesCmd(),
		a.friendsCmd(),
		a.badgesCmd(),
		a.profileCmd(),
		a.userCmd(),
	)

	return rootCmd
}

func (a *app) setup() error {
	st, err := LoadState(a.opts.StatePath)
	if err != nil {
		return err
	}
	a.state = st

	demoUsers := a.opts.DemoUsers
	if len(demoUsers) == 0 {
		demoUsers = []string{"demo1", "demo2"}
	}
	a.users = identity.NewUsers(demoUsers, "")

	apiURL := pkg.FirstNonEmpty(a.opts.APIURL, st.APIURL, defaultAPIURL)

	a.api = grunga.NewClient(grunga.ClientParams{
		BaseURL:    apiURL,
		Timeout:    a.opts.Timeout,
		HTTPClient: a.opts.HTTPClient,
	})
	log.Tracef("grungactl: api [%s], user [%s]", apiURL, a.currentUser())
	return nil
}

func (a *app) currentUser() string {
	if a.users.IsKnown(a.state.DemoUser) {
		return a.state.DemoUser
	}
	return a.users.Default()
}

// ctx carries the current demo user, so every API call is made as them.
func (a *app) ctx(cmd *cobra.Command) context.Context {
	return identity.WithUsername(cmd.Context(), a.currentUser())
}

func (a *app) me(ctx context.Context) (*grunga.User, error) {
	return a.api.GetUser(ctx, identity.Username(ctx))
}

// useDemo reports whether read commands should fall back to demo data,
// telling the user when they do.
func (a *app) useDemo(ctx context.Context, w io.Writer) bool {
	if err := a.api.Health(ctx); err != nil {
		log.Debugf("health check failed: %s", err)
		fmt.Fprintln(w, demoNotice)
		return true
	}
	return false
}
