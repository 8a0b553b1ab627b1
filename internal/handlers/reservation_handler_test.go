package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pause-manager/internal/idempotency"
	ucReservation "github.com/BruksfildServices01/pause-manager/internal/usecase/reservation"
)

type reservationHarness struct {
	repo   *memReservations
	idem   *memIdem
	router *gin.Engine
}

func newReservationHarness(t *testing.T) *reservationHarness {
	t.Helper()

	repo := newMemReservations()
	idem := newMemIdem()
	d := newTestDispatcher(t)

	h := NewReservationHandler(
		ucReservation.NewCheckAvailability(repo),
		ucReservation.NewCreateReservation(repo, d),
		ucReservation.NewUpdateReservation(repo, d),
		ucReservation.NewDeleteReservation(repo, d),
		ucReservation.NewListReservations(repo),
		ucReservation.NewGetReservation(repo),
		ucReservation.NewListUpcoming(repo, fixedClock),
		ucReservation.NewWeeklyStats(repo, fixedClock),
		idem,
	)

	r := gin.New()
	r.GET("/reservations", h.List)
	r.GET("/reservations/availability", h.CheckAvailability)
	r.GET("/reservations/upcoming", h.Upcoming)
	r.GET("/reservations/stats/weekly", h.WeeklyStats)
	r.GET("/reservations/:id", h.Get)
	r.POST("/reservations", h.Create)
	r.PUT("/reservations/:id", h.Update)
	r.DELETE("/reservations/:id", h.Delete)

	return &reservationHarness{repo: repo, idem: idem, router: r}
}

func (h *reservationHarness) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatal(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func booking(start, end, status string) map[string]any {
	return map[string]any{
		"room":      "A",
		"date":      "2024-01-10",
		"startTime": start,
		"endTime":   end,
		"clientId":  1,
		"purpose":   "Comité de direction",
		"status":    status,
	}
}

type errorBody struct {
	Success bool     `json:"success"`
	Code    string   `json:"error_code"`
	Error   string   `json:"error"`
	Details []string `json:"details"`
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return v
}

func TestAvailability_RequiresAllParameters(t *testing.T) {
	h := newReservationHarness(t)

	w := h.do(t, http.MethodGet, "/reservations/availability?room=A&date=2024-01-10&startTime=09:00", nil, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	body := decode[errorBody](t, w)
	if body.Error != "Les paramètres room, date, startTime et endTime sont requis" {
		t.Errorf("error = %q", body.Error)
	}
}

func TestAvailability_AfterConfirmedBooking(t *testing.T) {
	h := newReservationHarness(t)

	if w := h.do(t, http.MethodPost, "/reservations", booking("09:00", "10:00", "confirmed"), nil); w.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", w.Code, w.Body.String())
	}

	tests := []struct {
		query     string
		available bool
	}{
		{"room=A&date=2024-01-10&startTime=09:30&endTime=10:30", false},
		{"room=A&date=2024-01-10&startTime=10:00&endTime=11:00", true},
		{"room=B&date=2024-01-10&startTime=09:30&endTime=10:30", true},
		{"room=A&date=2024-01-11&startTime=09:30&endTime=10:30", true},
		{"room=A&date=2024-01-10&startTime=09:30&endTime=10:30&excludeId=1", true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := h.do(t, http.MethodGet, "/reservations/availability?"+tt.query, nil, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d: %s", w.Code, w.Body.String())
			}
			got := decode[AvailabilityResponse](t, w)
			if !got.Success || got.Available != tt.available {
				t.Errorf("got %+v, want available=%v", got, tt.available)
			}
		})
	}
}

func TestAvailability_InvalidSlot(t *testing.T) {
	h := newReservationHarness(t)

	w := h.do(t, http.MethodGet, "/reservations/availability?room=A&date=2024-01-10&startTime=10:00&endTime=09:00", nil, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body := decode[errorBody](t, w); body.Code != "invalid_slot" {
		t.Errorf("code = %q", body.Code)
	}
}

func TestCreateReservation_Conflict(t *testing.T) {
	h := newReservationHarness(t)

	h.do(t, http.MethodPost, "/reservations", booking("09:00", "10:00", "confirmed"), nil)

	w := h.do(t, http.MethodPost, "/reservations", booking("09:30", "10:30", "pending"), nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body := decode[errorBody](t, w); body.Code != "room_unavailable" {
		t.Errorf("code = %q", body.Code)
	}
	if h.repo.count() != 1 {
		t.Errorf("stored %d reservations, want 1", h.repo.count())
	}
}

func TestCreateReservation_BindingErrors(t *testing.T) {
	h := newReservationHarness(t)

	body := booking("9h", "10:00", "")
	delete(body, "purpose")

	w := h.do(t, http.MethodPost, "/reservations", body, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	got := decode[errorBody](t, w)
	if got.Code != "invalid_request" || len(got.Details) != 2 {
		t.Errorf("got %+v", got)
	}
}

func TestReservation_BlankTextRejected(t *testing.T) {
	h := newReservationHarness(t)

	blankRoom := booking("09:00", "10:00", "confirmed")
	blankRoom["room"] = "   "

	tests := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{"create room", http.MethodPost, "/reservations", blankRoom},
		{"update purpose", http.MethodPut, "/reservations/1", map[string]any{"purpose": "\t "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := h.do(t, tt.method, tt.path, tt.body, nil)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			if got := decode[errorBody](t, w); got.Code != "invalid_request" {
				t.Errorf("code = %q", got.Code)
			}
		})
	}
	if h.repo.count() != 0 {
		t.Error("blank room must not be stored")
	}
}

func TestCreateReservation_IdempotentReplay(t *testing.T) {
	h := newReservationHarness(t)
	key := map[string]string{idempotency.HeaderKey: "abc-123"}

	first := h.do(t, http.MethodPost, "/reservations", booking("09:00", "10:00", "confirmed"), key)
	if first.Code != http.StatusCreated {
		t.Fatalf("first status = %d: %s", first.Code, first.Body.String())
	}

	second := h.do(t, http.MethodPost, "/reservations", booking("09:00", "10:00", "confirmed"), key)
	if second.Code != http.StatusCreated {
		t.Fatalf("replay status = %d, want 201", second.Code)
	}
	if second.Header().Get(HeaderReplayed) != "true" {
		t.Error("replay header missing")
	}
	if first.Body.String() != second.Body.String() {
		t.Errorf("replayed body differs:\n%s\n%s", first.Body.String(), second.Body.String())
	}
	if h.repo.count() != 1 {
		t.Errorf("stored %d reservations, want 1", h.repo.count())
	}
}

func TestCreateReservation_KeyReusedWithOtherPayload(t *testing.T) {
	h := newReservationHarness(t)
	key := map[string]string{idempotency.HeaderKey: "abc-123"}

	if w := h.do(t, http.MethodPost, "/reservations", booking("09:00", "10:00", "confirmed"), key); w.Code != http.StatusCreated {
		t.Fatalf("first status = %d: %s", w.Code, w.Body.String())
	}

	w := h.do(t, http.MethodPost, "/reservations", booking("11:00", "12:00", "confirmed"), key)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if got := decode[errorBody](t, w); got.Code != "idempotency_key_reused" {
		t.Errorf("code = %q", got.Code)
	}
	if w.Header().Get(HeaderReplayed) != "" {
		t.Error("mismatched payload must not be replayed")
	}
	if h.repo.count() != 1 {
		t.Errorf("stored %d reservations, want 1", h.repo.count())
	}
}

func TestCreateReservation_FailureReleasesKey(t *testing.T) {
	h := newReservationHarness(t)
	key := map[string]string{idempotency.HeaderKey: "k1"}

	body := booking("09:00", "10:00", "confirmed")
	body["clientId"] = 99

	if w := h.do(t, http.MethodPost, "/reservations", body, key); w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if len(h.idem.aborted) != 1 || h.idem.aborted[0] != "k1" {
		t.Fatalf("aborted = %v", h.idem.aborted)
	}

	// a mesma chave pode ser usada de novo com dados corrigidos
	if w := h.do(t, http.MethodPost, "/reservations", booking("09:00", "10:00", "confirmed"), key); w.Code != http.StatusCreated {
		t.Fatalf("retry status = %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateReservation_KeyInFlight(t *testing.T) {
	h := newReservationHarness(t)
	h.idem.inFlight["busy"] = true

	w := h.do(t, http.MethodPost, "/reservations", booking("09:00", "10:00", "confirmed"),
		map[string]string{idempotency.HeaderKey: "busy"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if h.repo.count() != 0 {
		t.Error("reservation created while key in flight")
	}
}

func TestCreateReservation_IdempotencyStoreDown(t *testing.T) {
	h := newReservationHarness(t)
	h.idem.failWith = errStoreDown

	w := h.do(t, http.MethodPost, "/reservations", booking("09:00", "10:00", "confirmed"),
		map[string]string{idempotency.HeaderKey: "k"})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
}

func TestUpdateReservation_IntoConflict(t *testing.T) {
	h := newReservationHarness(t)

	h.do(t, http.MethodPost, "/reservations", booking("09:00", "10:00", "confirmed"), nil)
	h.do(t, http.MethodPost, "/reservations", booking("10:00", "11:00", "confirmed"), nil)

	w := h.do(t, http.MethodPut, "/reservations/2", map[string]any{"startTime": "09:30"}, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	w = h.do(t, http.MethodPut, "/reservations/2", map[string]any{"endTime": "11:30"}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("own slot update status = %d: %s", w.Code, w.Body.String())
	}
}

func TestReservation_GetAndDelete(t *testing.T) {
	h := newReservationHarness(t)

	if w := h.do(t, http.MethodGet, "/reservations/abc", nil, nil); w.Code != http.StatusBadRequest {
		t.Errorf("bad id status = %d, want 400", w.Code)
	}
	if w := h.do(t, http.MethodGet, "/reservations/7", nil, nil); w.Code != http.StatusNotFound {
		t.Errorf("missing status = %d, want 404", w.Code)
	}

	h.do(t, http.MethodPost, "/reservations", booking("09:00", "10:00", "pending"), nil)

	if w := h.do(t, http.MethodDelete, "/reservations/1", nil, nil); w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	if w := h.do(t, http.MethodDelete, "/reservations/1", nil, nil); w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", w.Code)
	}
}

func TestReservation_ListsNeverNull(t *testing.T) {
	h := newReservationHarness(t)

	for _, path := range []string{"/reservations", "/reservations/upcoming"} {
		w := h.do(t, http.MethodGet, path, nil, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("%s status = %d", path, w.Code)
		}
		if !bytes.Contains(w.Body.Bytes(), []byte(`"data":[]`)) {
			t.Errorf("%s body = %s", path, w.Body.String())
		}
	}

	w := h.do(t, http.MethodGet, "/reservations/stats/weekly", nil, nil)
	if !bytes.Contains(w.Body.Bytes(), []byte(`"data":[]`)) {
		t.Errorf("weekly body = %s", w.Body.String())
	}
}
