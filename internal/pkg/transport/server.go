package transport

import (
	"context"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/korovkin/limiter"

	"github.com/hkwire/hkctl/internal/pkg/hkservice"
	"github.com/hkwire/hkctl/internal/pkg/logging"
	"github.com/hkwire/hkctl/internal/pkg/schema"
	"github.com/hkwire/hkctl/internal/pkg/wire"
)

// ContentType identifies request and response bodies on the wire.
const ContentType = "application/x-hkwire"

// maxRequestBytes bounds how much of a request body the server will read.
const maxRequestBytes = 1 << 20

// Server exposes a HomeKit implementation as POST /rpc/{method}
// endpoints. Request and response bodies are wire-encoded messages; an
// error response carries a wire-encoded Status whose code is
// authoritative regardless of the HTTP status.
type Server struct {
	svc   hkservice.HomeKit
	limit *limiter.ConcurrencyLimiter
}

func NewServer(svc hkservice.HomeKit, maxInflight int) *Server {
	if maxInflight <= 0 {
		maxInflight = 16
	}
	return &Server{
		svc:   svc,
		limit: limiter.NewConcurrencyLimiter(maxInflight),
	}
}

// Register attaches the RPC routes to a router.
func (s *Server) Register(r *mux.Router) {
	r.Handle("/rpc/{method}", s).Methods(http.MethodPost)
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	// The limiter runs jobs on its own goroutines; block here so the
	// response is complete before the handler returns.
	done := make(chan struct{})
	s.limit.Execute(func() {
		defer close(done)
		s.dispatch(rw, r)
	})
	<-done
}

func (s *Server) dispatch(rw http.ResponseWriter, r *http.Request) {
	method := mux.Vars(r)["method"]

	handler, ok := methods[method]
	if !ok {
		writeStatus(rw, schema.Statusf(schema.StatusNotFound, "unknown method %q", method))
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBytes))
	if err != nil {
		writeStatus(rw, schema.Statusf(schema.StatusInvalidArgument, "reading request body: %v", err))
		return
	}

	resp, err := handler(r.Context(), s.svc, body)
	if err != nil {
		st := asStatus(err)
		logging.Logger(r.Context()).Debugf("%s failed: %s", method, st)
		writeStatus(rw, st)
		return
	}

	rw.Header().Set("Content-Type", ContentType)
	if _, err := rw.Write(resp.MarshalWire()); err != nil {
		logging.Logger(r.Context()).WithError(err).Error("writing response")
	}
}

type methodFunc func(ctx context.Context, svc hkservice.HomeKit, body []byte) (wire.Marshaler, error)

var methods = map[string]methodFunc{
	"EnumerateHomes": func(ctx context.Context, svc hkservice.HomeKit, body []byte) (wire.Marshaler, error) {
		var req schema.EnumerateHomesRequest
		if err := decodeRequest(body, &req); err != nil {
			return nil, err
		}
		return svc.EnumerateHomes(ctx, &req)
	},
	"EnumerateRooms": func(ctx context.Context, svc hkservice.HomeKit, body []byte) (wire.Marshaler, error) {
		var req schema.EnumerateRoomsRequest
		if err := decodeRequest(body, &req); err != nil {
			return nil, err
		}
		return svc.EnumerateRooms(ctx, &req)
	},
	"EnumerateZones": func(ctx context.Context, svc hkservice.HomeKit, body []byte) (wire.Marshaler, error) {
		var req schema.EnumerateZonesRequest
		if err := decodeRequest(body, &req); err != nil {
			return nil, err
		}
		return svc.EnumerateZones(ctx, &req)
	},
	"EnumerateAccessories": func(ctx context.Context, svc hkservice.HomeKit, body []byte) (wire.Marshaler, error) {
		var req schema.EnumerateAccessoriesRequest
		if err := decodeRequest(body, &req); err != nil {
			return nil, err
		}
		return svc.EnumerateAccessories(ctx, &req)
	},
	"EnumerateServices": func(ctx context.Context, svc hkservice.HomeKit, body []byte) (wire.Marshaler, error) {
		var req schema.EnumerateServicesRequest
		if err := decodeRequest(body, &req); err != nil {
			return nil, err
		}
		return svc.EnumerateServices(ctx, &req)
	},
	"EnumerateServiceGroups": func(ctx context.Context, svc hkservice.HomeKit, body []byte) (wire.Marshaler, error) {
		var req schema.EnumerateServiceGroupsRequest
		if err := decodeRequest(body, &req); err != nil {
			return nil, err
		}
		return svc.EnumerateServiceGroups(ctx, &req)
	},
	"EnumerateActionSets": func(ctx context.Context, svc hkservice.HomeKit, body []byte) (wire.Marshaler, error) {
		var req schema.EnumerateActionSetsRequest
		if err := decodeRequest(body, &req); err != nil {
			return nil, err
		}
		return svc.EnumerateActionSets(ctx, &req)
	},
	"EnumerateTriggers": func(ctx context.Context, svc hkservice.HomeKit, body []byte) (wire.Marshaler, error) {
		var req schema.EnumerateTriggersRequest
		if err := decodeRequest(body, &req); err != nil {
			return nil, err
		}
		return svc.EnumerateTriggers(ctx, &req)
	},
	"AddRemoveRoom": func(ctx context.Context, svc hkservice.HomeKit, body []byte) (wire.Marshaler, error) {
		var req schema.AddRemoveRoomRequest
		if err := decodeRequest(body, &req); err != nil {
			return nil, err
		}
		return svc.AddRemoveRoom(ctx, &req)
	},
}

type wireUnmarshaler interface {
	UnmarshalWire([]byte) error
}

func decodeRequest(body []byte, req wireUnmarshaler) error {
	if err := req.UnmarshalWire(body); err != nil {
		return asDecodeStatus(err)
	}
	return nil
}

// asDecodeStatus turns a decode failure into an InvalidArgument status
// unless the decoder already produced one.
func asDecodeStatus(err error) *schema.Status {
	if st, ok := err.(*schema.Status); ok {
		return st
	}
	return schema.Statusf(schema.StatusInvalidArgument, "malformed request: %v", err)
}

func asStatus(err error) *schema.Status {
	if st, ok := err.(*schema.Status); ok {
		return st
	}
	return schema.Statusf(schema.StatusInternal, "%v", err)
}

func writeStatus(rw http.ResponseWriter, st *schema.Status) {
	rw.Header().Set("Content-Type", ContentType)
	rw.WriteHeader(httpStatusFor(st.Code))
	_, _ = rw.Write(st.MarshalWire())
}

func httpStatusFor(code schema.StatusCode) int {
	switch code {
	case schema.StatusInvalidArgument:
		return http.StatusBadRequest
	case schema.StatusNotFound:
		return http.StatusNotFound
	case schema.StatusAlreadyExists:
		return http.StatusConflict
	case schema.StatusFailedPrecondition:
		return http.StatusPreconditionFailed
	case schema.StatusUnavailable:
		return http.StatusServiceUnavailable
	case schema.StatusDeadlineExceeded:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
