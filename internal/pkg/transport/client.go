package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/hkwire/hkctl/internal/pkg/hkservice"
	"github.com/hkwire/hkctl/internal/pkg/logging"
	"github.com/hkwire/hkctl/internal/pkg/schema"
	"github.com/hkwire/hkctl/internal/pkg/wire"
)

// DefaultPort is where a locally running server listens.
const DefaultPort uint16 = 55123

// TransportError reports a failure to reach the server or to understand
// its reply, as opposed to an error the server itself returned.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Client implements HomeKit over HTTP. Service errors come back as
// *schema.Status; connection and protocol failures as *TransportError.
type Client struct {
	base string
	hc   *http.Client
}

func NewClient(port uint16) *Client {
	if port == 0 {
		port = DefaultPort
	}
	return &Client{
		base: fmt.Sprintf("http://127.0.0.1:%d", port),
		hc: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// NewClientFor targets an arbitrary base URL; tests use it against
// httptest servers.
func NewClientFor(base string, hc *http.Client) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{base: base, hc: hc}
}

func (c *Client) call(ctx context.Context, method string, req wire.Marshaler, resp wireUnmarshaler) error {
	url := c.base + "/rpc/" + method

	hr, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(req.MarshalWire()))
	if err != nil {
		return &TransportError{Op: method, Err: err}
	}
	hr.Header.Set("Content-Type", ContentType)
	hr.Header.Set("X-Correlation-ID", uuid.New().String())

	logging.Logger(ctx).Debugf("calling %s", url)

	hresp, err := c.hc.Do(hr)
	if err != nil {
		// A blown deadline is a service-level condition, not a broken
		// connection.
		if ctx.Err() == context.DeadlineExceeded || errors.Is(err, context.DeadlineExceeded) {
			return schema.Statusf(schema.StatusDeadlineExceeded, "%s: deadline exceeded", method)
		}
		return &TransportError{Op: method, Err: err}
	}
	defer hresp.Body.Close()

	body, err := io.ReadAll(hresp.Body)
	if err != nil {
		return &TransportError{Op: method, Err: errors.Wrap(err, "reading response")}
	}

	if hresp.StatusCode != http.StatusOK {
		// The wire status in the body is authoritative; the HTTP code
		// is only a fallback when the body does not parse.
		var st schema.Status
		if err := st.UnmarshalWire(body); err == nil && st.Code != schema.StatusOK {
			return &st
		}
		return &TransportError{Op: method, Err: errors.Errorf("server returned %s", hresp.Status)}
	}

	if err := resp.UnmarshalWire(body); err != nil {
		return &TransportError{Op: method, Err: errors.Wrap(err, "decoding response")}
	}
	return nil
}

var _ hkservice.HomeKit = (*Client)(nil)

func (c *Client) EnumerateHomes(ctx context.Context, req *schema.EnumerateHomesRequest) (*schema.EnumerateHomesResponse, error) {
	var resp schema.EnumerateHomesResponse
	if err := c.call(ctx, "EnumerateHomes", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) EnumerateRooms(ctx context.Context, req *schema.EnumerateRoomsRequest) (*schema.EnumerateRoomsResponse, error) {
	var resp schema.EnumerateRoomsResponse
	if err := c.call(ctx, "EnumerateRooms", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) EnumerateZones(ctx context.Context, req *schema.EnumerateZonesRequest) (*schema.EnumerateZonesResponse, error) {
	var resp schema.EnumerateZonesResponse
	if err := c.call(ctx, "EnumerateZones", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) EnumerateAccessories(ctx context.Context, req *schema.EnumerateAccessoriesRequest) (*schema.EnumerateAccessoriesResponse, error) {
	var resp schema.EnumerateAccessoriesResponse
	if err := c.call(ctx, "EnumerateAccessories", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) EnumerateServices(ctx context.Context, req *schema.EnumerateServicesRequest) (*schema.EnumerateServicesResponse, error) {
	var resp schema.EnumerateServicesResponse
	if err := c.call(ctx, "EnumerateServices", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) EnumerateServiceGroups(ctx context.Context, req *schema.EnumerateServiceGroupsRequest) (*schema.EnumerateServiceGroupsResponse, error) {
	var resp schema.EnumerateServiceGroupsResponse
	if err := c.call(ctx, "EnumerateServiceGroups", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) EnumerateActionSets(ctx context.Context, req *schema.EnumerateActionSetsRequest) (*schema.EnumerateActionSetsResponse, error) {
	var resp schema.EnumerateActionSetsResponse
	if err := c.call(ctx, "EnumerateActionSets", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) EnumerateTriggers(ctx context.Context, req *schema.EnumerateTriggersRequest) (*schema.EnumerateTriggersResponse, error) {
	var resp schema.EnumerateTriggersResponse
	if err := c.call(ctx, "EnumerateTriggers", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) AddRemoveRoom(ctx context.Context, req *schema.AddRemoveRoomRequest) (*schema.AddRemoveRoomResponse, error) {
	var resp schema.AddRemoveRoomResponse
	if err := c.call(ctx, "AddRemoveRoom", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
