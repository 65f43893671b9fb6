package rpc

const (
	ErrParseError  = -32700
	ErrParseErrorS = "Parse error"

	ErrInvalidRequest  = -32600
	ErrInvalidRequestS = "Invalid Request"

	ErrMethodNotFound  = -32601
	ErrMethodNotFoundS = "Method not found"

	ErrInvalidParams  = -32602
	ErrInvalidParamsS = "Invalid params"

	ErrInternalError  = -32603
	ErrInternalErrorS = "Internal error"

	ErrNamespaceNotFound  = -32010
	ErrNamespaceNotFoundS = "Namespace not found"

	ErrMethodIsMissing  = -32020
	ErrMethodIsMissingS = "Method is missing"

	ErrSessionIsBusy  = -32030
	ErrSessionIsBusyS = "The session is already taken"
)
