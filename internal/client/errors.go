package client

import "fmt"

// Op names the API call that failed.
type Op string

const (
	OpListRooms     Op = "list_rooms"
	OpCreateRoom    Op = "create_room"
	OpUpdateRoom    Op = "update_room"
	OpDeleteRoom    Op = "delete_room"
	OpResolveSupply Op = "resolve_supply"
)

// NetworkError means the request never got a response.
type NetworkError struct {
	Op  Op
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// DecodeError means the response body could not be parsed.
type DecodeError struct {
	Op  Op
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// RequestFailed means the server answered with a non-success status.
type RequestFailed struct {
	Op         Op
	StatusCode int
	Message    string
}

func (e *RequestFailed) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: request failed (%d): %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: request failed (%d)", e.Op, e.StatusCode)
}
