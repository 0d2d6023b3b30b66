package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulfrate/gulfrate/internal/dto"
	"github.com/gulfrate/gulfrate/internal/model"
	"github.com/gulfrate/gulfrate/internal/service"
)

type stubLeadStore struct {
	inserted []*model.Lead
	marked   []int64
}

func (s *stubLeadStore) Insert(_ context.Context, lead *model.Lead) error {
	lead.ID = int64(len(s.inserted) + 1)
	s.inserted = append(s.inserted, lead)
	return nil
}

func (s *stubLeadStore) MarkEmailSent(_ context.Context, id int64) error {
	s.marked = append(s.marked, id)
	return nil
}

type stubMailer struct{}

func (stubMailer) SendLeadConfirmation(_ context.Context, _ *model.Lead) error { return nil }

func setupLeadRouter(store *stubLeadStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewLeadService(store, stubMailer{}, nil)
	h := NewLeadHandler(svc)

	router := gin.New()
	router.POST("/api/leads", h.Create)
	return router
}

func postLead(router *gin.Engine, body any) *httptest.ResponseRecorder {
	jsonBody, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/leads", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func validLeadBody() map[string]any {
	return map[string]any{
		"fullName":     "Ahmed Khan",
		"email":        "ahmed@example.com",
		"countryCode":  "+91",
		"phone":        "9876543210",
		"fromCurrency": "SAR",
		"toCurrency":   "INR",
		"consent":      true,
	}
}

func TestLeadHandler_Create(t *testing.T) {
	store := &stubLeadStore{}
	router := setupLeadRouter(store)

	w := postLead(router, validLeadBody())
	require.Equal(t, http.StatusCreated, w.Code)

	var resp dto.LeadCreatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Successfully subscribed to rate alerts", resp.Message)
	assert.Equal(t, int64(1), resp.Lead.ID)
	require.Len(t, store.inserted, 1)
	assert.Equal(t, "sa", store.inserted[0].CountryCode2)
}

func TestLeadHandler_ValidationErrors(t *testing.T) {
	cases := []struct {
		name  string
		field string
		value any
	}{
		{"short name", "fullName", "A"},
		{"bad email", "email", "not-an-email"},
		{"short phone", "phone", "12345"},
		{"missing currency", "toCurrency", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &stubLeadStore{}
			router := setupLeadRouter(store)

			body := validLeadBody()
			body[tc.field] = tc.value

			w := postLead(router, body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Errors)
			assert.Empty(t, store.inserted, "invalid lead must not be persisted")
		})
	}
}

func TestLeadHandler_ConsentRequired(t *testing.T) {
	store := &stubLeadStore{}
	router := setupLeadRouter(store)

	body := validLeadBody()
	body["consent"] = false

	w := postLead(router, body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "consent", resp.Errors[0].Field)
	assert.Empty(t, store.inserted)
}

func TestLeadHandler_MalformedJSON(t *testing.T) {
	router := setupLeadRouter(&stubLeadStore{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/leads", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
