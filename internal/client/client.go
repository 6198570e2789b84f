// Package client talks to the rooms API on behalf of the dashboard.
package client

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/zaqqye/restroom_monitor/internal/models"
)

// RoomInput holds the user-editable room fields.
type RoomInput struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Location string `json:"location"`
}

type createRoomBody struct {
	RoomInput
	Supplies models.Supplies `json:"supplies"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Client performs one HTTP round trip per call and never retries.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// New builds a client for baseURL. A zero timeout leaves the transport default.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	rc := resty.New().
		SetBaseURL(baseURL).
		SetRetryCount(0).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		rc.SetTimeout(timeout)
	}
	return &Client{http: rc, logger: logger}
}

// ListRooms fetches every room in server order.
func (c *Client) ListRooms(ctx context.Context) ([]models.Room, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/api/rooms")
	if err != nil {
		return nil, &NetworkError{Op: OpListRooms, Err: err}
	}
	if resp.IsError() {
		return nil, failed(OpListRooms, resp)
	}
	var rooms []models.Room
	if err := json.Unmarshal(resp.Body(), &rooms); err != nil {
		return nil, &DecodeError{Op: OpListRooms, Err: err}
	}
	return rooms, nil
}

// CreateRoom submits a new room with the default supply set.
func (c *Client) CreateRoom(ctx context.Context, in RoomInput) error {
	body := createRoomBody{RoomInput: in, Supplies: models.DefaultSupplies()}
	return c.mutate(ctx, OpCreateRoom, c.http.R().SetBody(body), resty.MethodPost, "/api/rooms")
}

// UpdateRoom sends name, type and location only, so supply state is untouched.
func (c *Client) UpdateRoom(ctx context.Context, id string, in RoomInput) error {
	req := c.http.R().SetBody(in).SetPathParam("id", id)
	return c.mutate(ctx, OpUpdateRoom, req, resty.MethodPut, "/api/rooms/{id}")
}

func (c *Client) DeleteRoom(ctx context.Context, id string) error {
	req := c.http.R().SetPathParam("id", id)
	return c.mutate(ctx, OpDeleteRoom, req, resty.MethodDelete, "/api/rooms/{id}")
}

// ResolveSupply marks one supply full. Resolving an already full supply succeeds.
func (c *Client) ResolveSupply(ctx context.Context, roomID, key string) error {
	req := c.http.R().SetPathParams(map[string]string{"id": roomID, "key": key})
	return c.mutate(ctx, OpResolveSupply, req, resty.MethodPost, "/api/rooms/{id}/supply/{key}/resolve")
}

func (c *Client) mutate(ctx context.Context, op Op, req *resty.Request, method, path string) error {
	resp, err := req.SetContext(ctx).Execute(method, path)
	if err != nil {
		c.logger.Warn("api call failed", zap.String("op", string(op)), zap.Error(err))
		return &NetworkError{Op: op, Err: err}
	}
	if resp.IsError() {
		ferr := failed(op, resp)
		c.logger.Warn("api call rejected", zap.String("op", string(op)), zap.Int("status_code", resp.StatusCode()), zap.String("message", ferr.Message))
		return ferr
	}
	return nil
}

func failed(op Op, resp *resty.Response) *RequestFailed {
	out := &RequestFailed{Op: op, StatusCode: resp.StatusCode()}
	var body errorBody
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		out.Message = body.Error
	}
	return out
}
