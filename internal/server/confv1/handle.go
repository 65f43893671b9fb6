package confv1

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/vantrou/memnode/internal/core/settings"
	"github.com/vantrou/memnode/internal/server/rpc"
)

func (h *HandlerV1) Handle(_ context.Context, sid string, _ *http.Request, req *rpc.RPCRequest) *rpc.RPCResponse {
	h.log.Debug("dispatch", slog.String("method", req.Method), slog.String("session-uuid", sid))

	switch req.Method {
	case "config_getShowCalls":
		return rpc.NewResponse(h.GetShowCalls(), req.ID)

	case "config_getCurrentTimestamp":
		return rpc.NewResponse(h.GetCurrentTimestamp(), req.ID)

	case "config_setShowCalls":
		raw, errResp := h.stringParam(req)
		if errResp != nil {
			return errResp
		}
		return rpc.NewResponse(h.SetShowCalls(raw), req.ID)

	case "config_setShowStorageLogs":
		raw, errResp := h.stringParam(req)
		if errResp != nil {
			return errResp
		}
		return rpc.NewResponse(h.SetShowStorageLogs(raw), req.ID)

	case "config_setShowVmDetails":
		raw, errResp := h.stringParam(req)
		if errResp != nil {
			return errResp
		}
		return rpc.NewResponse(h.SetShowVMDetails(raw), req.ID)

	case "config_setShowGasDetails":
		raw, errResp := h.stringParam(req)
		if errResp != nil {
			return errResp
		}
		return rpc.NewResponse(h.SetShowGasDetails(raw), req.ID)

	case "config_setResolveHashes":
		v, errResp := h.boolParam(req)
		if errResp != nil {
			return errResp
		}
		return rpc.NewResponse(h.SetResolveHashes(v), req.ID)

	case "config_setLogLevel":
		// the level parameter is typed: an unknown level is an invalid
		// params error, not a fallback case
		raw, errResp := h.stringParam(req)
		if errResp != nil {
			return errResp
		}
		level, ok := settings.ParseLogLevel(raw)
		if !ok {
			h.log.Info("invalid request received", slog.String("issue", rpc.ErrInvalidParamsS), slog.String("level", raw))
			return rpc.NewError(rpc.ErrInvalidParams, rpc.ErrInvalidParamsS, nil, req.ID)
		}
		return rpc.NewResponse(h.SetLogLevel(level), req.ID)

	case "config_setLogging":
		raw, errResp := h.stringParam(req)
		if errResp != nil {
			return errResp
		}
		return rpc.NewResponse(h.SetLogging(raw), req.ID)
	}

	h.log.Info("invalid request received", slog.String("issue", rpc.ErrMethodNotFoundS), slog.String("requested-method", req.Method))
	return rpc.NewError(rpc.ErrMethodNotFound, rpc.ErrMethodNotFoundS, nil, req.ID)
}

func (h *HandlerV1) stringParam(req *rpc.RPCRequest) (string, *rpc.RPCResponse) {
	if len(req.Params) != 1 {
		return "", rpc.NewError(rpc.ErrInvalidParams, rpc.ErrInvalidParamsS, nil, req.ID)
	}
	var v string
	if err := json.Unmarshal(req.Params[0], &v); err != nil {
		return "", rpc.NewError(rpc.ErrInvalidParams, rpc.ErrInvalidParamsS, nil, req.ID)
	}
	return v, nil
}

func (h *HandlerV1) boolParam(req *rpc.RPCRequest) (bool, *rpc.RPCResponse) {
	if len(req.Params) != 1 {
		return false, rpc.NewError(rpc.ErrInvalidParams, rpc.ErrInvalidParamsS, nil, req.ID)
	}
	var v bool
	if err := json.Unmarshal(req.Params[0], &v); err != nil {
		return false, rpc.NewError(rpc.ErrInvalidParams, rpc.ErrInvalidParamsS, nil, req.ID)
	}
	return v, nil
}
