package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	"hybrid_recommend_viewer/config"
	_ "hybrid_recommend_viewer/docs" // swagger annotations
	"hybrid_recommend_viewer/logger"
	"hybrid_recommend_viewer/models"
	"hybrid_recommend_viewer/repository"
	"hybrid_recommend_viewer/services"
	"hybrid_recommend_viewer/utils"
)

// The viewer serves one operator; all handlers share one session.
var session = services.NewSession()

// GetUsersHandler godoc
// @Summary List selectable login accounts
// @Description Returns the placeholder entry and the closed set of login ids
// @Tags session
// @Produce json
// @Success 200 {object} models.APIResponse "ok"
// @Router /api/users [get]
func GetUsersHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	utils.WriteSuccessResponse(w, map[string]interface{}{
		"placeholder": cfg.Login.Placeholder,
		"user_ids":    cfg.Login.UserIDs,
	})
}

// LoginHandler godoc
// @Summary Select a login account
// @Description Logs in as one of the configured accounts; resets the page to 1 and seeds the profile edit buffer from the stored record
// @Tags session
// @Produce json
// @Param uid path string true "login id, e.g. u00001"
// @Success 200 {object} models.APIResponse "ok"
// @Failure 400 {object} models.APIResponse "unknown account"
// @Router /api/session/login/{uid} [post]
func LoginHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	uid := chi.URLParam(r, "uid")
	if !utils.ValidateUID(w, uid) {
		return
	}
	if !cfg.IsKnownLogin(uid) {
		utils.WriteErrorResponse(w, models.CodeUnknownLogin, map[string]interface{}{
			"uid": uid,
		})
		return
	}

	// Stored ids are the upper-cased login form: u00001 -> U00001.
	userID := strings.ToUpper(uid)
	seed := services.FormFromRecord(services.LoadOrDefaultUser(cfg, userID))
	session.Login(uid, seed)

	logger.Info("account selected", "login_id", uid, "user_id", userID)
	utils.WriteSuccessResponse(w, map[string]interface{}{
		"login_id": uid,
		"user_id":  userID,
	})
}

// LogoutHandler godoc
// @Summary Log out
// @Description Clears the session, discarding unsaved profile edits
// @Tags session
// @Produce json
// @Success 200 {object} models.APIResponse "ok"
// @Router /api/session/logout [post]
func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	session.Logout()
	utils.WriteSuccessResponse(w, map[string]interface{}{})
}

// GetSessionHandler godoc
// @Summary Current session state
// @Description Reports the login state and a live preview of the buffered profile record
// @Tags session
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.SessionView} "ok"
// @Router /api/session [get]
func GetSessionHandler(w http.ResponseWriter, r *http.Request) {
	loggedIn, loginID, userID := session.Snapshot()
	view := models.SessionView{
		LoggedIn: loggedIn,
		LoginID:  loginID,
		UserID:   userID,
	}
	if loggedIn {
		view.Preview = services.RecordFromForm(userID, session.Buffer())
	}
	utils.WriteSuccessResponse(w, view)
}

// StageProfileHandler godoc
// @Summary Stage profile edits
// @Description Replaces the session edit buffer; nothing is written to disk until save
// @Tags profile
// @Accept json
// @Produce json
// @Param form body models.ProfileForm true "profile form"
// @Success 200 {object} models.APIResponse "ok"
// @Failure 400 {object} models.APIResponse "bad request"
// @Router /api/session/profile [put]
func StageProfileHandler(w http.ResponseWriter, r *http.Request) {
	loggedIn, _, userID := session.Snapshot()
	if !loggedIn {
		utils.WriteErrorResponse(w, models.CodeNotLoggedIn, map[string]interface{}{})
		return
	}

	var form models.ProfileForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeInvalidParams, err.Error(), map[string]interface{}{})
		return
	}
	session.Stage(form)

	utils.WriteSuccessResponse(w, map[string]interface{}{
		"preview": services.RecordFromForm(userID, session.Buffer()),
	})
}

// SaveProfileHandler godoc
// @Summary Save the buffered profile
// @Description Commits the edit buffer: re-reads the user store, upserts the record and rewrites the file
// @Tags profile
// @Produce json
// @Success 200 {object} models.APIResponse "ok"
// @Failure 500 {object} models.APIResponse "server error"
// @Router /api/session/profile/save [post]
func SaveProfileHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	loggedIn, _, userID := session.Snapshot()
	if !loggedIn {
		utils.WriteErrorResponse(w, models.CodeNotLoggedIn, map[string]interface{}{})
		return
	}

	rec, err := services.SaveProfile(cfg, userID, session.Buffer())
	if err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeServerError, err.Error(), map[string]interface{}{})
		return
	}

	logger.Info("profile saved", "user_id", userID, "path", cfg.UsersPath())
	utils.WriteSuccessResponse(w, map[string]interface{}{
		"saved": cfg.UsersPath(),
		"user":  rec,
	})
}

// GetRecommendationsHandler godoc
// @Summary Paginated recommendation results
// @Description Returns one page of the ranked results for the logged-in user, joined against the project catalog. hide_expired defaults to true; toggling it does not reset the page
// @Tags recommendations
// @Produce json
// @Param page query int false "1-based page, clamped to the page count"
// @Param hide_expired query bool false "drop entries with a past deadline (default true)"
// @Success 200 {object} models.APIResponse{data=models.RecommendationPage} "ok"
// @Failure 400 {object} models.APIResponse "not logged in"
// @Failure 404 {object} models.APIResponse "no results file"
// @Router /api/recommendations [get]
func GetRecommendationsHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	loggedIn, loginID, _ := session.Snapshot()
	if !loggedIn {
		utils.WriteErrorResponse(w, models.CodeNotLoggedIn, map[string]interface{}{})
		return
	}

	page := session.Page()
	if raw := r.URL.Query().Get("page"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil {
			utils.WriteErrorResponse(w, models.CodeInvalidParams, map[string]interface{}{
				"param": "page",
			})
			return
		}
		page = p
	}

	hideExpired := true
	if raw := r.URL.Query().Get("hide_expired"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			utils.WriteErrorResponse(w, models.CodeInvalidParams, map[string]interface{}{
				"param": "hide_expired",
			})
			return
		}
		hideExpired = v
	}

	result, err := services.BuildRecommendationPage(cfg, loginID, page, hideExpired, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrNoResults) {
			utils.WriteErrorResponse(w, models.CodeNoResultsFile, map[string]interface{}{
				"path": cfg.ResultPath(loginID),
			})
			return
		}
		utils.WriteCustomErrorResponse(w, models.CodeParseError, err.Error(), map[string]interface{}{})
		return
	}

	session.SetPage(result.Page)
	utils.WriteSuccessResponse(w, result)
}

// GetProjectHandler godoc
// @Summary Project catalog record
// @Description Returns the raw catalog record for one project id
// @Tags projects
// @Produce json
// @Param pid path string true "project id"
// @Success 200 {object} models.APIResponse "ok"
// @Failure 404 {object} models.APIResponse "project not found"
// @Router /api/projects/{pid} [get]
func GetProjectHandler(w http.ResponseWriter, r *http.Request, cfg *config.Config) {
	pid := chi.URLParam(r, "pid")
	if pid == "" {
		utils.WriteErrorResponse(w, models.CodeMissingParams, map[string]interface{}{
			"param": "pid",
		})
		return
	}

	idx, err := repository.LoadProjectsIndex(cfg.ProjectPath())
	if err != nil {
		utils.WriteCustomErrorResponse(w, models.CodeParseError, err.Error(), map[string]interface{}{})
		return
	}

	proj, ok := idx[pid]
	if !ok {
		utils.WriteErrorResponse(w, models.CodeProjectNotFound, map[string]interface{}{
			"project_id": pid,
		})
		return
	}
	utils.WriteSuccessResponse(w, proj)
}

func RegisterRoutes(r *chi.Mux, cfg *config.Config) {
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Get("/api/users", func(w http.ResponseWriter, r *http.Request) {
		GetUsersHandler(w, r, cfg)
	})

	r.Post("/api/session/login/{uid}", func(w http.ResponseWriter, r *http.Request) {
		LoginHandler(w, r, cfg)
	})

	r.Post("/api/session/logout", LogoutHandler)

	r.Get("/api/session", GetSessionHandler)

	r.Put("/api/session/profile", StageProfileHandler)

	r.Post("/api/session/profile/save", func(w http.ResponseWriter, r *http.Request) {
		SaveProfileHandler(w, r, cfg)
	})

	r.Get("/api/recommendations", func(w http.ResponseWriter, r *http.Request) {
		GetRecommendationsHandler(w, r, cfg)
	})

	r.Get("/api/projects/{pid}", func(w http.ResponseWriter, r *http.Request) {
		GetProjectHandler(w, r, cfg)
	})
}
