package aqualedger

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientListDecodesAndAuthenticates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/catches" {
			t.Errorf("got %s %s, want GET /catches", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("Authorization = %q", got)
		}
		io.WriteString(w, `{"catches":[
			{"id":7,"date":"2025-06-03T14:21:00","species":"Tilapia","quantity":12.5,"price":1500,"buyer":"Local market","mpesa_code":"QJD6K4A2X0"},
			{"id":8,"date":"2025-06-02T09:00:00","species":"Omena","quantity":3,"price":450,"buyer":"Mama Atieno"}
		]}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, NewSession("tok-123"))
	records, err := c.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	r := records[0]
	if r.ID != 7 || r.Species != "Tilapia" || !r.Quantity.Equal(Q(12.5)) || !r.Price.Equal(M(1500)) {
		t.Errorf("decoded record = %+v", r)
	}
	if r.MpesaCode != "QJD6K4A2X0" || records[1].MpesaCode != "" {
		t.Errorf("mpesa codes decoded wrong: %q %q", r.MpesaCode, records[1].MpesaCode)
	}
}

func TestClientCreateSendsWireBody(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/catches" {
			t.Errorf("got %s %s, want POST /catches", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q", got)
		}
		raw, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(raw, &body); err != nil {
			t.Fatalf("request body is not JSON: %v\n%s", err, raw)
		}
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id":42,"date":"2025-06-03T15:00:00","species":"Tilapia","quantity":12.5,"price":1500,"buyer":"Local market"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, NewSession("tok-123"))
	fields := validFields()
	fields.MpesaCode = "qjd6k4a2x0"
	created, err := c.Create(context.Background(), fields)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != 42 || created.Date != "2025-06-03T15:00:00" {
		t.Errorf("created = %+v, want server id/date", created)
	}

	// amounts travel as numbers, the code uppercased
	if _, ok := body["quantity"].(float64); !ok {
		t.Errorf("quantity sent as %T, want JSON number", body["quantity"])
	}
	if _, ok := body["price"].(float64); !ok {
		t.Errorf("price sent as %T, want JSON number", body["price"])
	}
	if body["mpesa_code"] != "QJD6K4A2X0" {
		t.Errorf("mpesa_code = %v, want uppercased", body["mpesa_code"])
	}
}

func TestClientCreateBlankMpesaSendsNull(t *testing.T) {
	var raw []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ = io.ReadAll(r.Body)
		io.WriteString(w, `{"id":1,"date":"2025-06-03T15:00:00"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, NewSession("tok-123"))
	if _, err := c.Create(context.Background(), validFields()); err != nil {
		t.Fatalf("create: %v", err)
	}
	var body map[string]json.RawMessage
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("body: %v", err)
	}
	if got, ok := body["mpesa_code"]; !ok || string(got) != "null" {
		t.Errorf("mpesa_code = %s, want explicit null", got)
	}
}

func TestClientUpdateAndDeleteAddressByID(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, NewSession("tok-123"))
	if err := c.Update(context.Background(), 42, validFields()); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := c.Delete(context.Background(), 42); err != nil {
		t.Fatalf("delete: %v", err)
	}
	want := []string{"PUT /catches/42", "DELETE /catches/42"}
	for i, w := range want {
		if i >= len(seen) || seen[i] != w {
			t.Errorf("request %d = %v, want %q", i, seen, w)
		}
	}
}

func TestClientRequestErrorCarriesServerMsg(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"msg":"Catch not found or not authorized"}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, NewSession("tok-123"))
	err := c.Delete(context.Background(), 99)
	var rerr *RequestError
	if !errors.As(err, &rerr) {
		t.Fatalf("err = %v, want RequestError", err)
	}
	if rerr.StatusCode != 404 || rerr.Msg != "Catch not found or not authorized" {
		t.Errorf("got %+v", rerr)
	}
}

func TestClientRequestErrorWithOpaqueBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "upstream exploded")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, NewSession("tok-123"))
	err := c.Delete(context.Background(), 1)
	var rerr *RequestError
	if !errors.As(err, &rerr) {
		t.Fatalf("err = %v, want RequestError", err)
	}
	if rerr.Msg != "" {
		t.Errorf("non-JSON body must yield no message, got %q", rerr.Msg)
	}
}

func TestClientTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listens anymore

	c := NewClient(srv.URL, NewSession("tok-123"))
	_, err := c.List(context.Background())
	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("err = %v, want TransportError", err)
	}
}

func TestClientRefusesWithoutSession(t *testing.T) {
	c := NewClient("http://localhost", NewSession(""))
	if _, err := c.List(context.Background()); !errors.Is(err, ErrNoSession) {
		t.Fatalf("err = %v, want ErrNoSession", err)
	}
}

func TestClientSummary(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/summary" {
			t.Errorf("path = %s", r.URL.Path)
		}
		io.WriteString(w, `{"today_qty":15.5,"today_earnings":1950,"week_qty":40,"week_earnings":5200}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, NewSession("tok-123"))
	s, err := c.Summary(context.Background())
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if !s.TodayQty.Equal(Q(15.5)) || !s.WeekEarn.Equal(M(5200)) {
		t.Errorf("summary = %+v", s)
	}
}
