package workouts

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/grunga/internal/demo"
	"github.com/2beens/grunga/internal/grunga"
	"github.com/2beens/grunga/internal/page"
	"github.com/2beens/grunga/internal/telemetry/metrics"
	"github.com/2beens/grunga/internal/telemetry/tracing"
	"github.com/2beens/grunga/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

const (
	MsgLoadError   = "Could not load workouts."
	MsgSaveError   = "Could not save workout."
	MsgUpdateError = "Could not update workout."
	MsgDeleteError = "Could not delete workout."
	MsgLogged      = "Workout logged!"
	MsgNoChanges   = "Nothing to update."
	MsgInvalidBody = "Invalid request."

	workoutDateLayout = "2006-01-02T15:04:05"
)

type upstream interface {
	Health(ctx context.Context) error
	GetUser(ctx context.Context, usernameOrID string) (*grunga.User, error)
	ListWorkouts(ctx context.Context, userID int) ([]grunga.Workout, error)
	CreateWorkout(ctx context.Context, userID int, workout grunga.NewWorkout) (*grunga.MutationResult, error)
	UpdateWorkout(ctx context.Context, userID, workoutID int, update grunga.WorkoutUpdate) (*grunga.MutationResult, error)
	DeleteWorkout(ctx context.Context, userID, workoutID int) (*grunga.MutationResult, error)
}

type CreateRequest struct {
	Type     string       `json:"type"`
	Duration page.FlexInt `json:"duration"`
	Reps     page.FlexInt `json:"reps"`
	Sets     page.FlexInt `json:"sets"`
	Date     string       `json:"date"`
}

type CreateResponse struct {
	OK        bool           `json:"ok"`
	Message   string         `json:"message"`
	WorkoutID int            `json:"workoutId,omitempty"`
	Preview   Preview        `json:"preview"`
	Totals    *grunga.Totals `json:"totals,omitempty"`
}

type UpdateRequest struct {
	Type *string `json:"type"`
	Sets *int    `json:"sets"`
	Reps *int    `json:"reps"`
	Date *string `json:"date"`
}

type DeleteRequest struct {
	WorkoutID page.FlexInt `json:"workoutId"`
}

type Handler struct {
	api            upstream
	metricsManager *metrics.Manager
	now            func() time.Time
}

func NewHandler(api upstream, metricsManager *metrics.Manager, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{
		api:            api,
		metricsManager: metricsManager,
		now:            now,
	}
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/workouts", handler.HandleList).Methods("GET").Name("workouts-list")
	router.HandleFunc("/workouts/preview", handler.HandlePreview).Methods("GET").Name("workouts-preview")
	router.HandleFunc("/workouts", handler.HandleCreate).Methods("POST").Name("workouts-create")
	router.HandleFunc("/workouts/delete", handler.HandleDelete).Methods("POST").Name("workouts-delete")
	router.HandleFunc("/workouts/{id}", handler.HandleUpdate).Methods("PATCH").Name("workouts-update")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutsHandler.list")
	defer span.End()

	if page.UseDemo(ctx, handler.api, handler.metricsManager, "workouts") {
		view := BuildView(demo.Default().Workouts)
		view.Demo = true
		pkg.WriteJSON(w, http.StatusOK, view)
		return
	}

	user, err := page.CurrentUser(ctx, handler.api)
	if err != nil {
		page.Fail(w, span, page.UpstreamStatus(err), MsgLoadError, err)
		return
	}

	workouts, err := handler.api.ListWorkouts(ctx, user.UserID)
	if err != nil {
		page.Fail(w, span, http.StatusBadGateway, MsgLoadError, err)
		return
	}

	span.SetAttributes(attribute.Int("workouts.count", len(workouts)))
	pkg.WriteJSON(w, http.StatusOK, BuildView(workouts))
}

func (handler *Handler) HandlePreview(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	workoutType := q.Get("type")
	minutes, _ := strconv.Atoi(q.Get("duration"))
	reps, _ := strconv.Atoi(q.Get("reps"))

	if err := Validate(workoutType, minutes, reps); err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	pkg.WriteJSON(w, http.StatusOK, BuildPreview(workoutType, minutes, reps))
}

func (handler *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutsHandler.create")
	defer span.End()

	var req CreateRequest
	if err := page.DecodeJSON(r, &req); err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	newWorkout, err := BuildNewWorkout(req, handler.now())
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	span.SetAttributes(attribute.String("workout.type", newWorkout.WorkoutType))

	user, err := page.CurrentUser(ctx, handler.api)
	if err != nil {
		page.Fail(w, span, page.UpstreamStatus(err), MsgSaveError, err)
		return
	}

	res, err := handler.api.CreateWorkout(ctx, user.UserID, newWorkout)
	if err != nil {
		page.Fail(w, span, http.StatusBadGateway, MsgSaveError, err)
		return
	}

	log.Debugf("user %d logged workout %d [%s]", user.UserID, res.WorkoutID, newWorkout.WorkoutType)
	pkg.WriteJSON(w, http.StatusCreated, CreateResponse{
		OK:        true,
		Message:   MsgLogged,
		WorkoutID: res.WorkoutID,
		Preview:   BuildPreview(req.Type, int(req.Duration), int(req.Reps)),
		Totals:    res.Totals,
	})
}

// BuildNewWorkout validates the form input and maps it to the API payload.
// Duration workouts send their minutes as reps, one set.
func BuildNewWorkout(req CreateRequest, now time.Time) (grunga.NewWorkout, error) {
	workoutType := strings.ToLower(strings.TrimSpace(req.Type))
	minutes, reps := int(req.Duration), int(req.Reps)
	if err := Validate(workoutType, minutes, reps); err != nil {
		return grunga.NewWorkout{}, err
	}

	sets := int(req.Sets)
	if sets <= 0 {
		sets = 1
	}

	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = now.Format(workoutDateLayout)
	}

	nw := grunga.NewWorkout{
		WorkoutType: workoutType,
		Sets:        sets,
		Reps:        reps,
		WorkoutDate: date,
	}
	if KindOf(workoutType) == KindDuration {
		nw.Sets = 1
		nw.Reps = minutes
		nw.DurationMinutes = minutes
	}
	return nw, nil
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutsHandler.update")
	defer span.End()

	workoutID, err := page.ParseID(mux.Vars(r)["id"])
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	var req UpdateRequest
	if err := page.DecodeJSON(r, &req); err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	update, err := BuildUpdate(req)
	if err != nil {
		pkg.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := page.CurrentUser(ctx, handler.api)
	if err != nil {
		page.Fail(w, span, page.UpstreamStatus(err), MsgUpdateError, err)
		return
	}

	res, err := handler.api.UpdateWorkout(ctx, user.UserID, workoutID, update)
	if err != nil {
		page.Fail(w, span, page.UpstreamStatus(err), MsgUpdateError, err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, res)
}

// BuildUpdate validates a partial edit; at least one field must change.
func BuildUpdate(req UpdateRequest) (grunga.WorkoutUpdate, error) {
	var update grunga.WorkoutUpdate
	if req.Type != nil {
		t := strings.ToLower(strings.TrimSpace(*req.Type))
		if KindOf(t) == KindUnknown {
			return update, &ValidationError{Message: MsgPickType}
		}
		update.WorkoutType = &t
	}
	if req.Sets != nil {
		if *req.Sets <= 0 {
			return update, &ValidationError{Message: "Sets must be positive."}
		}
		update.Sets = req.Sets
	}
	if req.Reps != nil {
		if *req.Reps <= 0 {
			return update, &ValidationError{Message: MsgEnterReps}
		}
		update.Reps = req.Reps
	}
	if req.Date != nil && strings.TrimSpace(*req.Date) != "" {
		d := strings.TrimSpace(*req.Date)
		update.WorkoutDate = &d
	}
	if update.Empty() {
		return update, &ValidationError{Message: MsgNoChanges}
	}
	return update, nil
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "workoutsHandler.delete")
	defer span.End()

	var req DeleteRequest
	if err := page.DecodeJSON(r, &req); err != nil || req.WorkoutID <= 0 {
		pkg.WriteJSONError(w, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	user, err := page.CurrentUser(ctx, handler.api)
	if err != nil {
		page.Fail(w, span, page.UpstreamStatus(err), MsgDeleteError, err)
		return
	}

	res, err := handler.api.DeleteWorkout(ctx, user.UserID, int(req.WorkoutID))
	if err != nil {
		page.Fail(w, span, http.StatusBadGateway, MsgDeleteError, err)
		return
	}

	pkg.WriteJSON(w, http.StatusOK, res)
}
