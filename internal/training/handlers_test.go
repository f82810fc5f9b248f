package training

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fitness-tracker/internal/observability"
	"fitness-tracker/internal/testutil"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func setupHandlers(t *testing.T) *observer.ObservedLogs {
	t.Helper()

	core, logs := observer.New(zap.InfoLevel)
	oldLogger := observability.Logger
	observability.Logger = zap.New(core)
	t.Cleanup(func() { observability.Logger = oldLogger })

	if err := InitMetrics(); err != nil {
		t.Fatalf("initializing training metrics: %v", err)
	}
	return logs
}

func post(handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req = req.WithContext(observability.ContextWithRequestID(req.Context(), "req-1"))
	return testutil.ExecuteRequest(req, handler)
}

func TestSummaryReturnsComputedTraining(t *testing.T) {
	logs := setupHandlers(t)

	w := post(Summary, "/trainings/summary", `{"type":"RUN","data":[15000,1,75]}`)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp SummaryResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)

	if resp.TrainingType != "Running" {
		t.Fatalf("expected training_type %q, got %q", "Running", resp.TrainingType)
	}
	if resp.Distance != 9.75 || resp.Speed != 9.75 {
		t.Fatalf("expected distance and speed 9.75, got %v and %v", resp.Distance, resp.Speed)
	}
	if resp.Calories != 699.75 {
		t.Fatalf("expected calories 699.75, got %v", resp.Calories)
	}

	want := "Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; " +
		"Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750."
	if resp.Message != want {
		t.Fatalf("expected message %q, got %q", want, resp.Message)
	}

	entries := logs.FilterMessage("training summary computed").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 summary log entry, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["training_type"]; got != "Running" {
		t.Fatalf("expected logged training_type %q, got %#v", "Running", got)
	}
}

func TestSummaryRejectsBadPackages(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "malformed json", body: `{"type":`, wantErr: "invalid request body"},
		{name: "unknown type", body: `{"type":"XYZ","data":[1,2,3]}`, wantErr: `unrecognized training type: "XYZ"`},
		{name: "arity", body: `{"type":"WLK","data":[9000,1,75]}`, wantErr: "wrong number of data fields for WLK: want 4, got 3"},
		{name: "zero duration", body: `{"type":"RUN","data":[15000,0,75]}`, wantErr: "invalid data field duration"},
		{name: "vanishing duration", body: `{"type":"RUN","data":[15000,1e-320,75]}`, wantErr: "derived metric is not finite: speed for RUN"},
		{name: "huge weight", body: `{"type":"RUN","data":[15000,1,1e308]}`, wantErr: "derived metric is not finite: calories for RUN"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			logs := setupHandlers(t)

			w := post(Summary, "/trainings/summary", tc.body)
			testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)

			var body map[string]string
			testutil.DecodeJSONBody(t, w.Body, &body)

			if !strings.Contains(body["error"], tc.wantErr) {
				t.Fatalf("expected error containing %q, got %q", tc.wantErr, body["error"])
			}

			if n := logs.FilterLevelExact(zap.ErrorLevel).Len(); n != 1 {
				t.Fatalf("expected 1 error log entry, got %d", n)
			}
		})
	}
}

func TestBatchKeepsOrderAndIsolatesFailures(t *testing.T) {
	logs := setupHandlers(t)

	body := `{"packages":[
		{"type":"SWM","data":[720,1,80,25,40]},
		{"type":"XYZ","data":[1,2,3]},
		{"type":"RUN","data":[15000,1,75]},
		{"type":"WLK","data":[9000,1,75,180]}
	]}`
	w := post(Batch, "/trainings/batch", body)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp BatchResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)

	if resp.Failed != 1 {
		t.Fatalf("expected 1 failed package, got %d", resp.Failed)
	}
	if len(resp.Results) != 4 {
		t.Fatalf("expected 4 results, got %d", len(resp.Results))
	}

	wantTypes := []string{"Swimming", "", "Running", "SportsWalking"}
	for i, r := range resp.Results {
		if r.Index != i {
			t.Fatalf("result %d: expected index %d, got %d", i, i, r.Index)
		}
		if wantTypes[i] == "" {
			if r.Summary != nil || r.Error == "" {
				t.Fatalf("result %d: expected error only, got %+v", i, r)
			}
			continue
		}
		if r.Summary == nil {
			t.Fatalf("result %d: expected summary, got error %q", i, r.Error)
		}
		if r.Summary.TrainingType != wantTypes[i] {
			t.Fatalf("result %d: expected %q, got %q", i, wantTypes[i], r.Summary.TrainingType)
		}
	}

	if n := logs.FilterMessage("batch package rejected").Len(); n != 1 {
		t.Fatalf("expected 1 rejection log entry, got %d", n)
	}
}

func TestBatchIsolatesOverflowingPackage(t *testing.T) {
	setupHandlers(t)

	body := `{"packages":[
		{"type":"RUN","data":[15000,1e-320,75]},
		{"type":"RUN","data":[15000,1,75]},
		{"type":"RUN","data":[15000,1,1e308]}
	]}`
	w := post(Batch, "/trainings/batch", body)
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp BatchResponse
	testutil.DecodeJSONBody(t, w.Body, &resp)

	if resp.Failed != 2 || len(resp.Results) != 3 {
		t.Fatalf("expected 3 results with 2 failures, got %d results, %d failed", len(resp.Results), resp.Failed)
	}
	if resp.Results[1].Summary == nil || resp.Results[1].Summary.Calories != 699.75 {
		t.Fatalf("expected the valid package to be summarized, got %+v", resp.Results[1])
	}
	for _, i := range []int{0, 2} {
		if !strings.Contains(resp.Results[i].Error, "derived metric is not finite") {
			t.Fatalf("result %d: expected non-finite error, got %q", i, resp.Results[i].Error)
		}
	}
}

func TestBatchRejectsEmptyPackages(t *testing.T) {
	setupHandlers(t)

	w := post(Batch, "/trainings/batch", `{"packages":[]}`)
	testutil.CheckResponseCode(t, http.StatusBadRequest, w.Code)
}

func TestListTypes(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/trainings/types", nil)
	w := testutil.ExecuteRequest(req, http.HandlerFunc(ListTypes))
	testutil.CheckResponseCode(t, http.StatusOK, w.Code)

	var resp TypesResponse
	testutil.DecodeJSONBody(t, bytes.NewReader(w.Body.Bytes()), &resp)

	if len(resp.Types) != 3 {
		t.Fatalf("expected 3 types, got %d", len(resp.Types))
	}
	if resp.Types[0].Code != "RUN" || resp.Types[0].Name != "Running" {
		t.Fatalf("unexpected first type %+v", resp.Types[0])
	}
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: &UnknownTypeError{Code: "XYZ"}, want: "unknown_type"},
		{err: &ArityError{Code: "RUN", Want: 3, Got: 2}, want: "arity_mismatch"},
		{err: &FieldError{Code: "RUN", Field: "duration"}, want: "invalid_field"},
		{err: ErrInvalidField, want: "invalid_field"},
		{err: &ResultError{Code: "RUN", Metric: "speed"}, want: "non_finite_result"},
	}

	for _, tc := range tests {
		if got := errorKind(tc.err); got != tc.want {
			t.Fatalf("errorKind(%v): expected %q, got %q", tc.err, tc.want, got)
		}
	}
}
