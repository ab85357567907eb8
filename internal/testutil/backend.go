package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CustomerRecord is the wire shape the fake backend stores and serves.
type CustomerRecord struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Surname         string    `json:"surname"`
	Username        string    `json:"username"`
	Email           string    `json:"email"`
	ShippingAddress string    `json:"shippingAddress"`
	CreationDateUtc time.Time `json:"creationDateUtc"`
}

// FakeBackend is an in-memory stand-in for the remote Functions API, mounted
// under /api/ like the real one. It implements the customers resource fully;
// tests for other resources use purpose-built handlers instead.
type FakeBackend struct {
	mu        sync.Mutex
	customers map[string]CustomerRecord
	order     []string
	srv       *httptest.Server
}

func NewFakeBackend(t *testing.T) *FakeBackend {
	fb := &FakeBackend{customers: make(map[string]CustomerRecord)}

	r := chi.NewRouter()
	r.Route("/api/customers", func(r chi.Router) {
		r.Get("/", fb.listCustomers)
		r.Post("/", fb.createCustomer)
		r.Get("/{id}", fb.getCustomer)
		r.Put("/{id}", fb.updateCustomer)
		r.Delete("/{id}", fb.deleteCustomer)
	})

	fb.srv = httptest.NewServer(r)
	t.Cleanup(fb.srv.Close)
	return fb
}

func (fb *FakeBackend) URL() string {
	return fb.srv.URL
}

func (fb *FakeBackend) CustomerCount() int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return len(fb.customers)
}

func (fb *FakeBackend) listCustomers(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	records := make([]CustomerRecord, 0, len(fb.customers))
	for _, id := range fb.order {
		records = append(records, fb.customers[id])
	}
	fb.mu.Unlock()

	writeJSON(w, http.StatusOK, records)
}

func (fb *FakeBackend) getCustomer(w http.ResponseWriter, r *http.Request) {
	fb.mu.Lock()
	record, ok := fb.customers[chi.URLParam(r, "id")]
	fb.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (fb *FakeBackend) createCustomer(w http.ResponseWriter, r *http.Request) {
	var record CustomerRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	record.ID = uuid.New().String()
	record.CreationDateUtc = time.Now().UTC()

	fb.mu.Lock()
	fb.customers[record.ID] = record
	fb.order = append(fb.order, record.ID)
	fb.mu.Unlock()

	writeJSON(w, http.StatusCreated, record)
}

func (fb *FakeBackend) updateCustomer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	fb.mu.Lock()
	existing, ok := fb.customers[id]
	fb.mu.Unlock()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var record CustomerRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	record.ID = id
	record.CreationDateUtc = existing.CreationDateUtc

	fb.mu.Lock()
	fb.customers[id] = record
	fb.mu.Unlock()

	writeJSON(w, http.StatusOK, record)
}

func (fb *FakeBackend) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	fb.mu.Lock()
	delete(fb.customers, id)
	for i, existing := range fb.order {
		if existing == id {
			fb.order = append(fb.order[:i], fb.order[i+1:]...)
			break
		}
	}
	fb.mu.Unlock()

	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
