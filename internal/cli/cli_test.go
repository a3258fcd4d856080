package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/2beens/grunga/internal/badges"
	"github.com/2beens/grunga/internal/challenges"
	"github.com/2beens/grunga/internal/friends"
	"github.com/2beens/grunga/internal/identity"
	"github.com/2beens/grunga/internal/profile"
	"github.com/2beens/grunga/internal/workouts"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI is a small in-memory Grunga API recording the mutation bodies
// it receives.
type fakeAPI struct {
	healthy atomic.Bool

	mu     sync.Mutex
	bodies map[string]map[string]any
	users  map[string]string
}

func newFakeAPI(t *testing.T) (*fakeAPI, *httptest.Server) {
	t.Helper()

	f := &fakeAPI{
		bodies: map[string]map[string]any{},
		users: map[string]string{
			"demo1": `{"userId": 1, "username": "demo1", "displayName": "Demo One"}`,
			"1":     `{"userId": 1, "username": "demo1", "displayName": "Demo One"}`,
			"demo2": `{"userId": 2, "username": "demo2", "displayName": "Demo Two"}`,
			"2":     `{"userId": 2, "username": "demo2", "displayName": "Demo Two"}`,
		},
	}
	f.healthy.Store(true)

	r := mux.NewRouter()
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		if !f.healthy.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"ok": true}`))
	})
	r.HandleFunc("/users/{id}/points", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"totalPoints": 120, "weeklyPoints": 30, "dailyPoints": 5, "streak": 3}`))
	})
	r.HandleFunc("/users/{id}/workouts", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})
	r.HandleFunc("/users/{id}/workouts/delete", f.record("delete-workout")).Methods(http.MethodPost)
	r.HandleFunc("/users/{user}", func(w http.ResponseWriter, r *http.Request) {
		user, ok := f.users[mux.Vars(r)["user"]]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{}`))
			return
		}
		_, _ = w.Write([]byte(user))
	})
	r.HandleFunc("/friends", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"friends": [{"userId": 2, "username": "demo2", "displayName": "Demo Two"}],
			"incoming": [{"otherUserId": 7, "fromUsername": "grog", "fromDisplayName": "Grog"}],
			"outgoing": []
		}`))
	})
	r.HandleFunc("/friends/users/search", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})
	r.HandleFunc("/friends/requests/respond", f.record("respond")).Methods(http.MethodPost)
	r.HandleFunc("/friends/requests", f.record("friend-request")).Methods(http.MethodPost)
	r.HandleFunc("/challenges/send", f.record("send-challenge")).Methods(http.MethodPost)
	r.HandleFunc("/badges/user/{id}", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"badgeId": 1, "code": "STREAK_3", "name": "3 Day Streak", "unlocked": true}]`))
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)
	return f, server
}

func (f *fakeAPI) record(name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		f.mu.Lock()
		f.bodies[name] = body
		f.mu.Unlock()
		_, _ = w.Write([]byte(`{"ok": true}`))
	}
}

func (f *fakeAPI) body(name string) map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.bodies[name]
}

type runner struct {
	apiURL    string
	statePath string
	picker    Picker
}

func newRunner(t *testing.T, apiURL string) *runner {
	return &runner{
		apiURL:    apiURL,
		statePath: filepath.Join(t.TempDir(), "grungactl.toml"),
		picker: func(_ string, items []string) (string, error) {
			return items[len(items)-1], nil
		},
	}
}

func (r *runner) run(args ...string) (string, error) {
	cmd := NewRootCommand(Options{
		APIURL:    r.apiURL,
		StatePath: r.statePath,
		DemoUsers: []string{"demo1", "demo2"},
		Timeout:   2 * time.Second,
		Now:       func() time.Time { return time.Date(2025, 11, 5, 9, 0, 0, 0, time.UTC) },
		Picker:    r.picker,
	})
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestHealth(t *testing.T) {
	f, server := newFakeAPI(t)
	r := newRunner(t, server.URL)

	out, err := r.run("health")
	require.NoError(t, err)
	assert.Equal(t, "Grunga API: ok\n", out)

	f.healthy.Store(false)
	out, err = r.run("health")
	require.NoError(t, err)
	assert.Contains(t, out, "Grunga API: down")
}

func TestHome(t *testing.T) {
	f, server := newFakeAPI(t)
	r := newRunner(t, server.URL)

	out, err := r.run("home")
	require.NoError(t, err)
	assert.Contains(t, out, "Good morning, Demo One!")
	assert.Contains(t, out, "Total: 120  Weekly: 30  Daily: 5  Streak: 3")
	assert.NotContains(t, out, demoNotice)

	f.healthy.Store(false)
	out, err = r.run("home")
	require.NoError(t, err)
	assert.Contains(t, out, demoNotice)
}

func TestUserSwitch(t *testing.T) {
	_, server := newFakeAPI(t)
	r := newRunner(t, server.URL)

	out, err := r.run("user")
	require.NoError(t, err)
	assert.Contains(t, out, "Current demo user: demo1")

	// no name given, the picker chooses demo2
	out, err = r.run("user", "switch")
	require.NoError(t, err)
	assert.Equal(t, "Switched to demo2.\n", out)

	st, err := LoadState(r.statePath)
	require.NoError(t, err)
	assert.Equal(t, "demo2", st.DemoUser)

	out, err = r.run("home")
	require.NoError(t, err)
	assert.Contains(t, out, "Demo Two")

	_, err = r.run("user", "switch", "nobody")
	assert.ErrorIs(t, err, identity.ErrUnknownUser)

	st, err = LoadState(r.statePath)
	require.NoError(t, err)
	assert.Equal(t, "demo2", st.DemoUser)
}

func TestWorkoutsListAndDelete(t *testing.T) {
	f, server := newFakeAPI(t)
	r := newRunner(t, server.URL)

	out, err := r.run("workouts", "list")
	require.NoError(t, err)
	assert.Equal(t, "No workouts yet.\n", out)

	out, err = r.run("workouts", "delete", "42")
	require.NoError(t, err)
	assert.Equal(t, "Workout 42 deleted.\n", out)
	assert.Equal(t, 42.0, f.body("delete-workout")["workoutId"])

	_, err = r.run("workouts", "delete", "abc")
	assert.Error(t, err)
}

func TestWorkoutsAddRejectsEmptyType(t *testing.T) {
	_, server := newFakeAPI(t)
	r := newRunner(t, server.URL)

	_, err := r.run("workouts", "add", "--duration", "30")
	assert.EqualError(t, err, workouts.MsgPickType)

	_, err = r.run("workouts", "add", "--type", "pushups")
	assert.EqualError(t, err, workouts.MsgEnterReps)
}

func TestChallengesSend(t *testing.T) {
	f, server := newFakeAPI(t)
	r := newRunner(t, server.URL)

	out, err := r.run("challenges", "send", "--target", "5")
	require.NoError(t, err)
	assert.Equal(t, challenges.MsgSent+"\n", out)

	sent := f.body("send-challenge")
	require.NotNil(t, sent)
	assert.Equal(t, 1.0, sent["fromUserId"])
	assert.Equal(t, 2.0, sent["toUserId"])
	assert.Equal(t, 5.0, sent["target"])
	assert.Equal(t, "WORKOUT", sent["kind"])

	_, err = r.run("challenges", "send", "--to", "demo2", "--target", "0")
	require.Error(t, err)
	assert.EqualError(t, err, challenges.MsgPositiveTarget)
}

func TestFriends(t *testing.T) {
	f, server := newFakeAPI(t)
	r := newRunner(t, server.URL)

	out, err := r.run("friends", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "== Incoming Requests ==\n#7  Grog")
	assert.Contains(t, out, "== Outgoing Requests ==\n"+friends.MsgNothingHere)
	assert.Contains(t, out, "== Friends ==\n#2  Demo Two (@demo2)")

	out, err = r.run("friends", "search", " x ")
	require.NoError(t, err)
	assert.Equal(t, "Type at least 2 characters.\n", out)

	out, err = r.run("friends", "search", "zed")
	require.NoError(t, err)
	assert.Equal(t, friends.MsgNoUsers+"\n", out)

	out, err = r.run("friends", "respond", "7", "deny")
	require.NoError(t, err)
	assert.Equal(t, friends.MsgDeclined+"\n", out)
	assert.Equal(t, "decline", f.body("respond")["action"])
	assert.Equal(t, 7.0, f.body("respond")["otherUserId"])

	_, err = r.run("friends", "respond", "7", "maybe")
	assert.EqualError(t, err, friends.MsgInvalidAction)

	out, err = r.run("friends", "add", "9")
	require.NoError(t, err)
	assert.Equal(t, friends.MsgRequestSent+"\n", out)
	assert.Equal(t, 9.0, f.body("friend-request")["friendId"])
}

func TestBadges(t *testing.T) {
	f, server := newFakeAPI(t)
	r := newRunner(t, server.URL)

	out, err := r.run("badges")
	require.NoError(t, err)
	assert.Contains(t, out, "== Boss Badges ==\n[locked] "+badges.Placeholder(badges.SectionBoss))
	assert.Contains(t, out, "== Streak Badges ==\n[unlocked] ")

	f.healthy.Store(false)
	out, err = r.run("badges")
	require.NoError(t, err)
	assert.Contains(t, out, demoNotice)
}

func TestProfile(t *testing.T) {
	_, server := newFakeAPI(t)
	r := newRunner(t, server.URL)

	out, err := r.run("profile", "demo2")
	require.NoError(t, err)
	assert.Contains(t, out, "Demo Two")
	assert.Contains(t, out, "Streak: 3  Total: 120  Weekly: 30  Daily: 5  Workouts: 0")
	assert.Contains(t, out, "3 Day Streak")

	_, err = r.run("profile", "ghost")
	assert.EqualError(t, err, profile.MsgInvalidFriend)
}

func TestState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.toml")

	st, err := LoadState(path)
	require.NoError(t, err)
	assert.Equal(t, State{}, st)

	require.NoError(t, SaveState(path, State{DemoUser: "demo2", APIURL: "http://grunga:5000/api"}))
	st, err = LoadState(path)
	require.NoError(t, err)
	assert.Equal(t, State{DemoUser: "demo2", APIURL: "http://grunga:5000/api"}, st)

	_, err = LoadState(t.TempDir())
	assert.Error(t, err)
}
