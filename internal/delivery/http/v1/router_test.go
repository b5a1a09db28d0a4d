package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vetcareer-backend/config"
	v1 "vetcareer-backend/internal/delivery/http/v1"
	"vetcareer-backend/internal/repository/fixture"
	"vetcareer-backend/internal/repository/memory"
	"vetcareer-backend/internal/repository/session"
	"vetcareer-backend/internal/usecase"
	"vetcareer-backend/pkg/token"
)

type fakeRenderer struct{}

func (fakeRenderer) RenderHTMLToPDF(ctx context.Context, html string) ([]byte, error) {
	return []byte("%PDF-1.4 test"), nil
}

type envelope struct {
	Success   bool            `json:"success"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	RequestID string          `json:"request_id"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Port:                     "8080",
		FrontendURL:              "http://localhost:3000",
		SessionJWTSecret:         "test-secret",
		SessionTTL:               time.Hour,
		RateLimitWindowSeconds:   60,
		RateLimitLoginThreshold:  1000,
		RateLimitGlobalThreshold: 100000,
	}

	sessionRepo := session.NewStore(cfg.SessionTTL)
	jobRepo := fixture.NewJobRepository()

	return v1.NewRouter(v1.RouterDeps{
		AuthUC:        usecase.NewAuthUsecase(sessionRepo, 0),
		JobUC:         usecase.NewJobUsecase(jobRepo),
		MentorUC:      usecase.NewMentorUsecase(fixture.NewMentorRepository()),
		ResourceUC:    usecase.NewResourceUsecase(fixture.NewResourceRepository()),
		SkillUC:       usecase.NewSkillUsecase(fixture.NewSkillRepository(), 0, 0),
		ResumeUC:      usecase.NewResumeUsecase(fakeRenderer{}),
		ApplicationUC: usecase.NewApplicationUsecase(memory.NewApplicationRepository(), jobRepo),
		HealthUC:      usecase.NewHealthUsecase(),
		SessionRepo:   sessionRepo,
		Signer:        token.NewSigner(cfg.SessionJWTSecret, cfg.SessionTTL),
		Config:        cfg,
	})
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, headers map[string]string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") != "application/pdf" {
		_ = json.Unmarshal(w.Body.Bytes(), &env)
	}
	return w, env
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()

	w, env := doJSON(t, r, http.MethodPost, "/v1/auth/login", gin.H{
		"identifier": "veteran@example.com",
		"password":   "password",
	}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	require.NotEmpty(t, payload.Token)
	return payload.Token
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/v1/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.RequestID)
}

func TestUnknownRouteEnvelope(t *testing.T) {
	r := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/v1/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Route not found", env.Message)
}

func TestJobEndpoints(t *testing.T) {
	r := newTestRouter(t)

	t.Run("list with filters", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodGet, "/v1/jobs?search=Logistics", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var data struct {
			Jobs  []map[string]interface{} `json:"jobs"`
			Total int                      `json:"total"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		require.Equal(t, 1, data.Total)
		assert.Equal(t, "Logistics Coordinator", data.Jobs[0]["title"])
	})

	t.Run("unknown id is a not-found envelope", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodGet, "/v1/jobs/does-not-exist", nil, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.False(t, env.Success)
		assert.Equal(t, "Job not found", env.Message)
	})
}

func TestMentorAndResourceEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodGet, "/v1/mentors?industry=Technology", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var mentorData struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &mentorData))
	assert.Equal(t, 3, mentorData.Total)

	w, env = doJSON(t, r, http.MethodGet, "/v1/resources?category=resume", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resourceData struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &resourceData))
	assert.Equal(t, 3, resourceData.Total)

	w, _ = doJSON(t, r, http.MethodGet, "/v1/resources/categories", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSkillTranslateEndpoint(t *testing.T) {
	r := newTestRouter(t)

	t.Run("known skill", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodPost, "/v1/skills/translate", gin.H{"skill": "logistics"}, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var data struct {
			Skill string `json:"skill"`
			Roles []struct {
				Role   string `json:"role"`
				Salary int    `json:"salary"`
			} `json:"roles"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		require.Len(t, data.Roles, 3)
		assert.Equal(t, "Supply Chain Manager", data.Roles[0].Role)
		assert.Equal(t, 850000, data.Roles[0].Salary)
	})

	t.Run("unknown skill", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodPost, "/v1/skills/translate", gin.H{"skill": "piloting"}, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, env.Message, "piloting")
	})
}

func TestAuthFlow(t *testing.T) {
	r := newTestRouter(t)

	t.Run("login sets the session cookie and redirect hint", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodPost, "/v1/auth/login", gin.H{
			"identifier": "veteran@example.com",
			"password":   "password",
		}, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var payload struct {
			User     map[string]interface{} `json:"user"`
			Redirect string                 `json:"redirect"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &payload))
		assert.Equal(t, "John Veteran", payload.User["name"])
		assert.Equal(t, "/profile", payload.Redirect)

		var found bool
		for _, cookie := range w.Result().Cookies() {
			if cookie.Name == "session_token" && cookie.Value != "" {
				found = true
			}
		}
		assert.True(t, found, "session cookie not set")
	})

	t.Run("bad credentials", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodPost, "/v1/auth/login", gin.H{
			"identifier": "veteran@example.com",
			"password":   "wrong",
		}, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid credentials", env.Message)
	})

	t.Run("register rejects bad roles at the binding layer", func(t *testing.T) {
		w, _ := doJSON(t, r, http.MethodPost, "/v1/auth/register", gin.H{
			"name":       "Eve",
			"identifier": "eve@example.com",
			"password":   "secret1",
			"role":       "admin",
		}, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("session restore then logout", func(t *testing.T) {
		login(t, r)

		w, env := doJSON(t, r, http.MethodGet, "/v1/auth/session", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var payload struct {
			User *map[string]interface{} `json:"user"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &payload))
		require.NotNil(t, payload.User)

		w, _ = doJSON(t, r, http.MethodPost, "/v1/auth/logout", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w, env = doJSON(t, r, http.MethodGet, "/v1/auth/session", nil, nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(env.Data, &payload))
		assert.Nil(t, payload.User)
	})
}

func TestProtectedRoutes(t *testing.T) {
	r := newTestRouter(t)

	t.Run("applications require a session", func(t *testing.T) {
		w, env := doJSON(t, r, http.MethodGet, "/v1/applications", nil, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, env.Success)
	})

	t.Run("apply and list with a bearer token", func(t *testing.T) {
		tok := login(t, r)
		auth := map[string]string{"Authorization": "Bearer " + tok}

		_, listEnv := doJSON(t, r, http.MethodGet, "/v1/jobs", nil, nil)
		var jobData struct {
			Jobs []struct {
				ID string `json:"id"`
			} `json:"jobs"`
		}
		require.NoError(t, json.Unmarshal(listEnv.Data, &jobData))
		require.NotEmpty(t, jobData.Jobs)

		w, env := doJSON(t, r, http.MethodPost, "/v1/applications", gin.H{
			"job_id": jobData.Jobs[0].ID,
			"applicant": gin.H{
				"name":  "John Veteran",
				"place": "Austin",
				"age":   "34",
				"email": "veteran@example.com",
				"phone": "555-0101",
			},
		}, auth)
		require.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, env.Message, "Successfully booked an interview")

		w, env = doJSON(t, r, http.MethodGet, "/v1/applications", nil, auth)
		require.Equal(t, http.StatusOK, w.Code)
		var appData struct {
			Total int `json:"total"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &appData))
		assert.Equal(t, 1, appData.Total)
	})

	t.Run("resume download", func(t *testing.T) {
		tok := login(t, r)

		w, _ := doJSON(t, r, http.MethodPost, "/v1/resumes", gin.H{
			"resume_name": "My First Resume",
			"description": "Veteran operations leader.",
		}, map[string]string{"Authorization": "Bearer " + tok})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="My_First_Resume.pdf"`)
		assert.NotEmpty(t, w.Body.Bytes())
	})

	t.Run("token issued before logout is rejected after it", func(t *testing.T) {
		tok := login(t, r)
		doJSON(t, r, http.MethodPost, "/v1/auth/logout", nil, nil)

		w, _ := doJSON(t, r, http.MethodGet, "/v1/applications", nil,
			map[string]string{"Authorization": "Bearer " + tok})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
