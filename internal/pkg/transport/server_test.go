package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"github.com/hkwire/hkctl/internal/pkg/hkservice"
	"github.com/hkwire/hkctl/internal/pkg/schema"
)

const testHomeUUID = "7a1b2c3d-4e5f-4a6b-8c9d-0e1f2a3b4c5d"

func newTestBackend() *hkservice.Memory {
	return hkservice.NewMemory(hkservice.HomeGraph{
		Home: schema.Home{UUID: testHomeUUID, Name: "Test Home", IsPrimary: true, HubState: schema.HubStateConnected},
		Rooms: []schema.Room{
			{UUID: "r1", Name: "Lounge"},
		},
	})
}

func newTestClient(t *testing.T, mem *hkservice.Memory) *Client {
	t.Helper()

	r := mux.NewRouter()
	NewServer(hkservice.NewService(mem), 4).Register(r)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)

	return NewClientFor(ts.URL, ts.Client())
}

func TestClientServerRoundTrip(t *testing.T) {
	c := newTestClient(t, newTestBackend())

	resp, err := c.EnumerateHomes(context.Background(), &schema.EnumerateHomesRequest{})
	if err != nil {
		t.Fatalf("enumerate homes: %v", err)
	}
	if len(resp.Homes) != 1 || resp.Homes[0].Name != "Test Home" {
		t.Fatalf("unexpected homes: %+v", resp.Homes)
	}

	rooms, err := c.EnumerateRooms(context.Background(), &schema.EnumerateRoomsRequest{})
	if err != nil {
		t.Fatalf("enumerate rooms: %v", err)
	}
	if rooms.Home == nil || rooms.Home.UUID != testHomeUUID || len(rooms.Rooms) != 1 {
		t.Fatalf("unexpected rooms response: %+v", rooms)
	}
}

func TestServiceErrorCrossesTheWire(t *testing.T) {
	c := newTestClient(t, newTestBackend())

	_, err := c.EnumerateRooms(context.Background(), &schema.EnumerateRoomsRequest{Home: "No Such Home"})
	st, ok := err.(*schema.Status)
	if !ok {
		t.Fatalf("expected *schema.Status, got %T: %v", err, err)
	}
	if st.Code != schema.StatusNotFound {
		t.Fatalf("expected NotFound, got %v", st.Code)
	}
	if !strings.Contains(st.Message, "No Such Home") {
		t.Fatalf("message lost in transit: %q", st.Message)
	}
}

func TestUnavailableMapsTo503(t *testing.T) {
	mem := newTestBackend()
	mem.SetAvailable(false)

	r := mux.NewRouter()
	NewServer(hkservice.NewService(mem), 4).Register(r)
	ts := httptest.NewServer(r)
	defer ts.Close()

	req := &schema.EnumerateHomesRequest{}
	hresp, err := http.Post(ts.URL+"/rpc/EnumerateHomes", ContentType, strings.NewReader(string(req.MarshalWire())))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer hresp.Body.Close()
	if hresp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", hresp.StatusCode)
	}
}

func TestUnknownMethod(t *testing.T) {
	c := newTestClient(t, newTestBackend())

	err := c.call(context.Background(), "EnumerateDoorknobs", &schema.EnumerateHomesRequest{}, &schema.EnumerateHomesResponse{})
	st, ok := err.(*schema.Status)
	if !ok || st.Code != schema.StatusNotFound {
		t.Fatalf("expected NotFound for unknown method, got %v", err)
	}
}

func TestMalformedRequestBody(t *testing.T) {
	mem := newTestBackend()
	r := mux.NewRouter()
	NewServer(hkservice.NewService(mem), 4).Register(r)
	ts := httptest.NewServer(r)
	defer ts.Close()

	// Truncated field header.
	hresp, err := http.Post(ts.URL+"/rpc/EnumerateHomes", ContentType, strings.NewReader("\x00\x01"))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer hresp.Body.Close()
	if hresp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", hresp.StatusCode)
	}
}

func TestConnectionFailureIsTransportError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	c := NewClientFor(url, &http.Client{Timeout: time.Second})
	_, err := c.EnumerateHomes(context.Background(), &schema.EnumerateHomesRequest{})

	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected *TransportError, got %T: %v", err, err)
	}
}

func TestDeadlineBecomesStatus(t *testing.T) {
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer slow.Close()

	c := NewClientFor(slow.URL, &http.Client{})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := c.EnumerateHomes(ctx, &schema.EnumerateHomesRequest{})
	st, ok := err.(*schema.Status)
	if !ok || st.Code != schema.StatusDeadlineExceeded {
		t.Fatalf("expected DeadlineExceeded, got %v", err)
	}
}
