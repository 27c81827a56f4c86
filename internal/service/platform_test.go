package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/platform"
)

// fakePlatform минимальная имитация удалённого API: держит состояние в памяти,
// пишет журнал запросов и умеет отвечать ошибкой на обновление статуса.
type fakePlatform struct {
	mu               sync.Mutex
	orders           []domain.Order
	admins           []domain.Principal
	customers        []domain.Principal
	requests         []string
	lastAdminBody    map[string]any
	failStatusUpdate bool

	srv *httptest.Server
}

func (f *fakePlatform) log(r *http.Request) {
	f.requests = append(f.requests, r.Method+" "+r.URL.Path)
}

func (f *fakePlatform) countRequests(method, path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, req := range f.requests {
		if req == method+" "+path {
			n++
		}
	}
	return n
}

func writeData(w http.ResponseWriter, v any) {
	json.NewEncoder(w).Encode(map[string]any{"data": v})
}

func newFakePlatform(t *testing.T) *fakePlatform {
	t.Helper()
	f := &fakePlatform{}
	mux := http.NewServeMux()

	mux.HandleFunc("GET /orders", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.log(r)
		writeData(w, f.orders)
	})
	mux.HandleFunc("PUT /orders/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.log(r)
		if f.failStatusUpdate {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"data": "status update failed"})
			return
		}
		var body map[string]domain.OrderStatus
		json.NewDecoder(r.Body).Decode(&body)
		for i := range f.orders {
			if f.orders[i].ID == r.PathValue("id") {
				f.orders[i].Status = body["status"]
			}
		}
		writeData(w, "ok")
	})

	mux.HandleFunc("GET /admins", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.log(r)
		writeData(w, f.admins)
	})
	mux.HandleFunc("POST /admins", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.log(r)
		var a platform.AdminCreate
		json.NewDecoder(r.Body).Decode(&a)
		f.admins = append(f.admins, domain.Principal{
			ID: "a-" + a.Username, Email: a.Email, Username: a.Username, Role: a.Role,
		})
		writeData(w, "ok")
	})
	mux.HandleFunc("PUT /admins/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.log(r)
		f.lastAdminBody = map[string]any{}
		json.NewDecoder(r.Body).Decode(&f.lastAdminBody)
		writeData(w, "ok")
	})
	mux.HandleFunc("DELETE /admins/{id}", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.log(r)
		keep := f.admins[:0]
		for _, a := range f.admins {
			if a.ID != r.PathValue("id") {
				keep = append(keep, a)
			}
		}
		f.admins = keep
		writeData(w, "ok")
	})

	mux.HandleFunc("GET /customers", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.log(r)
		writeData(w, f.customers)
	})

	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakePlatform) client() *platform.Client {
	return platform.NewClient(f.srv.URL, 2*time.Second)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}
