package dashboard

import (
	"context"
	"errors"
	"sync"

	"github.com/zaqqye/restroom_monitor/internal/client"
	"github.com/zaqqye/restroom_monitor/internal/models"
)

// fakeAPI is an in-memory stand-in for the rooms API.
type fakeAPI struct {
	mu      sync.Mutex
	rooms   []models.Room
	nextID  int
	listErr error
	mutErr  error
	lists   int
	calls   []string
}

func newFakeAPI(rooms ...models.Room) *fakeAPI {
	return &fakeAPI{rooms: rooms}
}

func (f *fakeAPI) ListRooms(context.Context) ([]models.Room, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Room, len(f.rooms))
	for i, r := range f.rooms {
		out[i] = r.Clone()
	}
	return out, nil
}

func (f *fakeAPI) CreateRoom(_ context.Context, in client.RoomInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "create")
	if f.mutErr != nil {
		return f.mutErr
	}
	f.nextID++
	f.rooms = append(f.rooms, models.Room{
		ID:       string(rune('A' + f.nextID - 1)),
		Name:     in.Name,
		Type:     in.Type,
		Location: in.Location,
		Supplies: models.DefaultSupplies(),
	})
	return nil
}

func (f *fakeAPI) UpdateRoom(_ context.Context, id string, in client.RoomInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "update")
	if f.mutErr != nil {
		return f.mutErr
	}
	for i := range f.rooms {
		if f.rooms[i].ID == id {
			f.rooms[i].Name, f.rooms[i].Type, f.rooms[i].Location = in.Name, in.Type, in.Location
			return nil
		}
	}
	return &client.RequestFailed{Op: client.OpUpdateRoom, StatusCode: 404}
}

func (f *fakeAPI) DeleteRoom(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "delete")
	if f.mutErr != nil {
		return f.mutErr
	}
	for i := range f.rooms {
		if f.rooms[i].ID == id {
			f.rooms = append(f.rooms[:i], f.rooms[i+1:]...)
			return nil
		}
	}
	return &client.RequestFailed{Op: client.OpDeleteRoom, StatusCode: 404}
}

func (f *fakeAPI) ResolveSupply(_ context.Context, roomID, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "resolve")
	if f.mutErr != nil {
		return f.mutErr
	}
	for i := range f.rooms {
		if f.rooms[i].ID != roomID {
			continue
		}
		sup, ok := f.rooms[i].Supplies[key]
		if !ok {
			return &client.RequestFailed{Op: client.OpResolveSupply, StatusCode: 404}
		}
		sup.Status = models.SupplyFull
		f.rooms[i].Supplies[key] = sup
		return nil
	}
	return &client.RequestFailed{Op: client.OpResolveSupply, StatusCode: 404}
}

func (f *fakeAPI) listCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lists
}

var errBoom = errors.New("boom")

// recorder collects notifications and rendered views.
type recorder struct {
	mu       sync.Mutex
	messages []string
	views    []View
}

func (r *recorder) Notify(msg string) {
	r.mu.Lock()
	r.messages = append(r.messages, msg)
	r.mu.Unlock()
}

func (r *recorder) render(v View) {
	r.mu.Lock()
	r.views = append(r.views, v)
	r.mu.Unlock()
}

func (r *recorder) lastView() View {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.views) == 0 {
		return View{}
	}
	return r.views[len(r.views)-1]
}

func lobby() models.Room {
	return models.Room{
		ID:       "r1",
		Name:     "Lobby",
		Type:     "restroom",
		Location: "1F",
		Supplies: models.Supplies{
			"toilet_paper": {Name: "Toilet Paper", Status: models.SupplyEmpty},
			"soap":         {Name: "Soap", Status: models.SupplyFull},
		},
	}
}
