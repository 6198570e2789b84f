package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/zaqqye/restroom_monitor/internal/client"
)

// API is the part of the rooms API the dashboard drives.
type API interface {
	RoomLister
	CreateRoom(ctx context.Context, in client.RoomInput) error
	UpdateRoom(ctx context.Context, id string, in client.RoomInput) error
	DeleteRoom(ctx context.Context, id string) error
	ResolveSupply(ctx context.Context, roomID, key string) error
}

// Notifier shows a blocking message to the user.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }

// Confirmer asks the user to approve an irreversible action.
type Confirmer func(prompt string) bool

var (
	ErrFormClosed      = errors.New("form is not open")
	ErrMissingField    = errors.New("name and type are required")
	ErrDeleteCancelled = errors.New("delete cancelled")
)

// AddForm mirrors the "add room" modal.
type AddForm struct {
	Open     bool
	Name     string
	Type     string
	Location string
}

// EditForm mirrors the "edit room" modal. ID is shown read-only.
type EditForm struct {
	Open     bool
	ID       string
	Name     string
	Type     string
	Location string
}

// Dashboard ties the API, the cache and the two forms together. Mutations never
// touch the cache directly: on success they trigger a refresh, on failure they
// notify the user and leave the form open with what was typed.
type Dashboard struct {
	api       API
	cache     *Cache
	refresher *Refresher
	notifier  Notifier
	logger    *zap.Logger

	mu   sync.Mutex
	add  AddForm
	edit EditForm
}

// New builds a dashboard. onRender receives every View produced by a refresh.
func New(api API, notifier Notifier, onRender func(View), logger *zap.Logger) *Dashboard {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notifier == nil {
		notifier = NotifierFunc(func(string) {})
	}
	cache := NewCache()
	return &Dashboard{
		api:       api,
		cache:     cache,
		refresher: NewRefresher(api, cache, onRender, logger),
		notifier:  notifier,
		logger:    logger,
	}
}

func (d *Dashboard) Cache() *Cache         { return d.cache }
func (d *Dashboard) Refresher() *Refresher { return d.refresher }

// View renders the current snapshot.
func (d *Dashboard) View() View {
	return Render(d.cache.Snapshot())
}

// Refresh pulls the room list; failures are only logged.
func (d *Dashboard) Refresh(ctx context.Context) {
	_ = d.refresher.Refresh(ctx)
}

func (d *Dashboard) AddForm() AddForm {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.add
}

func (d *Dashboard) EditForm() EditForm {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.edit
}

func (d *Dashboard) OpenAdd() {
	d.mu.Lock()
	d.add.Open = true
	d.mu.Unlock()
}

// FillAdd stores what the user typed into the add form.
func (d *Dashboard) FillAdd(name, typ, location string) {
	d.mu.Lock()
	d.add.Name, d.add.Type, d.add.Location = name, typ, location
	d.mu.Unlock()
}

// DismissAdd closes the add form (outside click) and clears what was typed.
func (d *Dashboard) DismissAdd() {
	d.mu.Lock()
	d.add = AddForm{}
	d.mu.Unlock()
}

// SubmitAdd creates the room described by the add form.
func (d *Dashboard) SubmitAdd(ctx context.Context) error {
	d.mu.Lock()
	form := d.add
	d.mu.Unlock()
	if !form.Open {
		return ErrFormClosed
	}
	in, err := formInput(form.Name, form.Type, form.Location)
	if err != nil {
		d.notifier.Notify("Please fill in the room name and type.")
		return err
	}
	if err := d.api.CreateRoom(ctx, in); err != nil {
		d.logger.Warn("create room failed", zap.Error(err))
		d.notifier.Notify("Failed to create room.")
		return err
	}
	d.mu.Lock()
	d.add = AddForm{}
	d.mu.Unlock()
	d.Refresh(ctx)
	return nil
}

// OpenEdit fills the edit form from the cached room. It reports false and
// changes nothing when the room is no longer in the cache.
func (d *Dashboard) OpenEdit(id string) bool {
	room, ok := d.cache.Lookup(id)
	if !ok {
		d.logger.Debug("edit requested for unknown room", zap.String("room_id", id))
		return false
	}
	d.mu.Lock()
	d.edit = EditForm{
		Open:     true,
		ID:       room.ID,
		Name:     room.Name,
		Type:     room.Type,
		Location: room.Location,
	}
	d.mu.Unlock()
	return true
}

func (d *Dashboard) FillEdit(name, typ, location string) {
	d.mu.Lock()
	d.edit.Name, d.edit.Type, d.edit.Location = name, typ, location
	d.mu.Unlock()
}

func (d *Dashboard) DismissEdit() {
	d.mu.Lock()
	d.edit = EditForm{}
	d.mu.Unlock()
}

// SubmitEdit saves name, type and location of the room being edited.
func (d *Dashboard) SubmitEdit(ctx context.Context) error {
	d.mu.Lock()
	form := d.edit
	d.mu.Unlock()
	if !form.Open {
		return ErrFormClosed
	}
	in, err := formInput(form.Name, form.Type, form.Location)
	if err != nil {
		d.notifier.Notify("Please fill in the room name and type.")
		return err
	}
	if err := d.api.UpdateRoom(ctx, form.ID, in); err != nil {
		d.logger.Warn("update room failed", zap.String("room_id", form.ID), zap.Error(err))
		d.notifier.Notify("Failed to update room.")
		return err
	}
	d.closeEdit(form.ID)
	d.Refresh(ctx)
	return nil
}

// DeleteEditing deletes the room open in the edit form once confirm approves.
func (d *Dashboard) DeleteEditing(ctx context.Context, confirm Confirmer) error {
	d.mu.Lock()
	form := d.edit
	d.mu.Unlock()
	if !form.Open {
		return ErrFormClosed
	}
	if confirm == nil || !confirm(fmt.Sprintf("Delete room %q? This cannot be undone.", form.Name)) {
		return ErrDeleteCancelled
	}
	if err := d.api.DeleteRoom(ctx, form.ID); err != nil {
		d.logger.Warn("delete room failed", zap.String("room_id", form.ID), zap.Error(err))
		d.notifier.Notify("Failed to delete room.")
		return err
	}
	d.closeEdit(form.ID)
	d.Refresh(ctx)
	return nil
}

// Resolve marks an empty supply as full.
func (d *Dashboard) Resolve(ctx context.Context, roomID, key string) error {
	if err := d.api.ResolveSupply(ctx, roomID, key); err != nil {
		d.logger.Warn("resolve supply failed", zap.String("room_id", roomID), zap.String("item", key), zap.Error(err))
		d.notifier.Notify("Failed to resolve supply.")
		return err
	}
	d.Refresh(ctx)
	return nil
}

// closeEdit clears the edit form unless the user has since opened another room.
func (d *Dashboard) closeEdit(id string) {
	d.mu.Lock()
	if d.edit.ID == id {
		d.edit = EditForm{}
	}
	d.mu.Unlock()
}

func formInput(name, typ, location string) (client.RoomInput, error) {
	in := client.RoomInput{
		Name:     strings.TrimSpace(name),
		Type:     strings.TrimSpace(typ),
		Location: strings.TrimSpace(location),
	}
	if in.Name == "" || in.Type == "" {
		return in, ErrMissingField
	}
	return in, nil
}
