package expense

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fkhayef/splitledger/internal/expense/split"
)

func TestHandlerCreate(t *testing.T) {
	f := newFixture(t, split.Options{})
	router := NewHandler(f.svc).Routes()

	body := fmt.Sprintf(`{
		"group_id": %d,
		"payer_id": %d,
		"description": "Grocery shopping",
		"amount": 90,
		"split_type": "equal",
		"participants": [{"user_id": %d}, {"user_id": %d}, {"user_id": %d}]
	}`, f.groupID, f.users["Charlie"], f.users["Alice"], f.users["Bob"], f.users["Charlie"])

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}

	var env struct {
		Data ExpenseResponse `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.SplitType != split.SplitTypeEqual || len(env.Data.Splits) != 3 {
		t.Errorf("response = %+v", env.Data)
	}

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/%d", env.Data.ID), nil))
	if rec.Code != http.StatusOK {
		t.Errorf("GET /{id} status = %d", rec.Code)
	}
}

func TestHandlerErrors(t *testing.T) {
	f := newFixture(t, split.Options{})
	router := NewHandler(f.svc).Routes()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"malformed body", http.MethodPost, "/", "{", http.StatusBadRequest},
		{"invalid split type", http.MethodPost, "/", fmt.Sprintf(`{"group_id":%d,"payer_id":%d,"description":"x","amount":10,"split_type":"EXACT","participants":[{"user_id":%d}]}`, f.groupID, f.users["Alice"], f.users["Alice"]), http.StatusBadRequest},
		{"unknown group", http.MethodPost, "/", fmt.Sprintf(`{"group_id":999,"payer_id":%d,"description":"x","amount":10,"split_type":"EQUAL","participants":[{"user_id":%d}]}`, f.users["Alice"], f.users["Alice"]), http.StatusNotFound},
		{"missing expense", http.MethodGet, "/12345", "", http.StatusNotFound},
		{"bad expense id", http.MethodGet, "/abc", "", http.StatusBadRequest},
		{"missing group listing", http.MethodGet, "/group/999", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.wantStatus, rec.Body)
			}
		})
	}
}
