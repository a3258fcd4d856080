package grunga

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

const healthCacheKey = "health"

type healthResponse struct {
	OK *bool `json:"ok"`
}

// Health probes the API. Any 2xx counts as healthy unless the body is JSON
// carrying an explicit "ok": false. Results, good or bad, are cached for the
// health cache TTL so a page load does not hit /health more than once.
func (c *Client) Health(ctx context.Context) error {
	if c.healthCacheTTL > 0 {
		if cached, err := c.cache.Get([]byte(healthCacheKey)); err == nil {
			if string(cached) == "ok" {
				return nil
			}
			return fmt.Errorf("grunga api unhealthy (cached): %s", cached)
		}
	}

	var resp healthResponse
	err := c.Get(ctx, "/health", &resp)
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		// non-JSON body on a 2xx
		err = nil
	}
	if err == nil && resp.OK != nil && !*resp.OK {
		err = errors.New("grunga api reports not ok")
	}

	if c.healthCacheTTL > 0 {
		value := "ok"
		if err != nil {
			value = err.Error()
		}
		if cacheErr := c.cache.Set([]byte(healthCacheKey), []byte(value), c.healthCacheTTL); cacheErr != nil {
			log.Errorf("set health cache: %s", cacheErr)
		}
	}

	return err
}

// GetUser resolves a username or a numeric id to the identity record.
func (c *Client) GetUser(ctx context.Context, usernameOrID string) (*User, error) {
	usernameOrID = strings.TrimSpace(usernameOrID)
	if usernameOrID == "" {
		return nil, fmt.Errorf("get user: empty username: %w", ErrNotFound)
	}

	cacheKey := []byte("user::" + usernameOrID)
	if c.userCacheTTL > 0 {
		if userBytes, err := c.cache.Get(cacheKey); err == nil {
			user := &User{}
			if err := json.Unmarshal(userBytes, user); err == nil {
				c.countUserCache("hit")
				return user, nil
			}
			log.Errorf("unmarshal cached user %s: %s", usernameOrID, err)
		}
		c.countUserCache("miss")
	}

	user := &User{}
	if err := c.Get(ctx, "/users/"+url.PathEscape(usernameOrID), user); err != nil {
		return nil, fmt.Errorf("get user %s: %w", usernameOrID, err)
	}
	// the API answers {} with 404, but guard against an empty 200 too
	if user.UserID == 0 && user.Username == "" {
		return nil, fmt.Errorf("get user %s: %w", usernameOrID, ErrNotFound)
	}

	if c.userCacheTTL > 0 {
		userBytes, err := json.Marshal(user)
		if err == nil {
			err = c.cache.Set(cacheKey, userBytes, c.userCacheTTL)
		}
		if err != nil {
			log.Errorf("set user cache for %s: %s", usernameOrID, err)
		}
	}

	return user, nil
}

func (c *Client) countUserCache(result string) {
	if c.metricsManager != nil {
		c.metricsManager.CounterUserCache.WithLabelValues(result).Inc()
	}
}

func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.Get(ctx, "/users", &users); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (c *Client) GetPoints(ctx context.Context, userID int) (*Points, error) {
	points := &Points{}
	if err := c.Get(ctx, userPath(userID, "/points"), points); err != nil {
		return nil, fmt.Errorf("get points for user %d: %w", userID, err)
	}
	return points, nil
}

func (c *Client) ListWorkouts(ctx context.Context, userID int) ([]Workout, error) {
	var workouts WorkoutList
	if err := c.Get(ctx, userPath(userID, "/workouts"), &workouts); err != nil {
		return nil, fmt.Errorf("list workouts for user %d: %w", userID, err)
	}
	return workouts, nil
}

func (c *Client) CreateWorkout(ctx context.Context, userID int, workout NewWorkout) (*MutationResult, error) {
	res := &MutationResult{}
	if err := c.Post(ctx, userPath(userID, "/workouts"), workout, res); err != nil {
		return nil, fmt.Errorf("create workout for user %d: %w", userID, err)
	}
	return res, nil
}

func (c *Client) UpdateWorkout(ctx context.Context, userID, workoutID int, update WorkoutUpdate) (*MutationResult, error) {
	res := &MutationResult{}
	path := userPath(userID, "/workouts/"+strconv.Itoa(workoutID))
	if err := c.Patch(ctx, path, update, res); err != nil {
		return nil, fmt.Errorf("update workout %d for user %d: %w", workoutID, userID, err)
	}
	return res, nil
}

func (c *Client) DeleteWorkout(ctx context.Context, userID, workoutID int) (*MutationResult, error) {
	res := &MutationResult{}
	body := map[string]int{"workoutId": workoutID}
	if err := c.Post(ctx, userPath(userID, "/workouts/delete"), body, res); err != nil {
		return nil, fmt.Errorf("delete workout %d for user %d: %w", workoutID, userID, err)
	}
	return res, nil
}

// ListFriends returns the relations of the user in the request context.
func (c *Client) ListFriends(ctx context.Context) (*Friends, error) {
	friends := &Friends{}
	if err := c.Get(ctx, "/friends", friends); err != nil {
		return nil, fmt.Errorf("list friends: %w", err)
	}
	return friends, nil
}

func (c *Client) SearchUsers(ctx context.Context, query string) ([]User, error) {
	var users []User
	path := "/friends/users/search?q=" + url.QueryEscape(query)
	if err := c.Get(ctx, path, &users); err != nil {
		return nil, fmt.Errorf("search users [%s]: %w", query, err)
	}
	return users, nil
}

func (c *Client) SendFriendRequest(ctx context.Context, friendID int) (*MutationResult, error) {
	res := &MutationResult{}
	body := map[string]int{"friendId": friendID}
	if err := c.Post(ctx, "/friends/requests", body, res); err != nil {
		return nil, fmt.Errorf("send friend request to %d: %w", friendID, err)
	}
	return res, nil
}

func (c *Client) RespondFriendRequest(ctx context.Context, otherUserID int, action FriendAction) (*MutationResult, error) {
	res := &MutationResult{}
	body := map[string]any{
		"otherUserId": otherUserID,
		"action":      action,
	}
	if err := c.Post(ctx, "/friends/requests/respond", body, res); err != nil {
		return nil, fmt.Errorf("respond %s to friend request of %d: %w", action, otherUserID, err)
	}
	return res, nil
}

func (c *Client) RemoveFriend(ctx context.Context, otherUserID int) (*MutationResult, error) {
	res := &MutationResult{}
	if err := c.Delete(ctx, "/friends/remove/"+strconv.Itoa(otherUserID), res); err != nil {
		return nil, fmt.Errorf("remove friend %d: %w", otherUserID, err)
	}
	return res, nil
}

func (c *Client) ListChallenges(ctx context.Context, box ChallengeBox) ([]Challenge, error) {
	var challenges []Challenge
	if err := c.Get(ctx, "/challenges/"+string(box), &challenges); err != nil {
		return nil, fmt.Errorf("list %s challenges: %w", box, err)
	}
	return challenges, nil
}

func (c *Client) SendChallenge(ctx context.Context, challenge NewChallenge) (*MutationResult, error) {
	if challenge.Kind == "" {
		challenge.Kind = "WORKOUT"
	}
	res := &MutationResult{}
	if err := c.Post(ctx, "/challenges/send", challenge, res); err != nil {
		return nil, fmt.Errorf("send challenge to %d: %w", challenge.ToUserID, err)
	}
	return res, nil
}

func (c *Client) AcceptChallenge(ctx context.Context, challengeID, userID int) (*MutationResult, error) {
	return c.transitionChallenge(ctx, challengeID, userID, "accept")
}

func (c *Client) DeclineChallenge(ctx context.Context, challengeID, userID int) (*MutationResult, error) {
	return c.transitionChallenge(ctx, challengeID, userID, "decline")
}

func (c *Client) CompleteChallenge(ctx context.Context, challengeID, userID int) (*MutationResult, error) {
	return c.transitionChallenge(ctx, challengeID, userID, "complete")
}

func (c *Client) transitionChallenge(ctx context.Context, challengeID, userID int, action string) (*MutationResult, error) {
	res := &MutationResult{}
	path := fmt.Sprintf("/challenges/%d/%s", challengeID, action)
	body := map[string]int{"userId": userID}
	if err := c.Post(ctx, path, body, res); err != nil {
		return nil, fmt.Errorf("%s challenge %d: %w", action, challengeID, err)
	}
	return res, nil
}

func (c *Client) ListUserBadges(ctx context.Context, userID int) ([]Badge, error) {
	var badges []Badge
	if err := c.Get(ctx, "/badges/user/"+strconv.Itoa(userID), &badges); err != nil {
		return nil, fmt.Errorf("list badges for user %d: %w", userID, err)
	}
	return badges, nil
}

func userPath(userID int, suffix string) string {
	return "/users/" + strconv.Itoa(userID) + suffix
}
