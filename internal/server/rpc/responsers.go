package rpc

import "encoding/json"

func NewError(code int, message string, data any, id *json.RawMessage) *RPCResponse {
	return &RPCResponse{
		JSONRPC: JSONRPCVersion,
		ID:      id,
		Error: &RPCErrorObject{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

func NewResponse(result any, id *json.RawMessage) *RPCResponse {
	return &RPCResponse{
		JSONRPC: JSONRPCVersion,
		ID:      id,
		Result:  result,
	}
}
