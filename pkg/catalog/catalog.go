package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nitj-exchange/hub/pkg/types"
)

// EntityKind selects a catalog collection for Query, Submit, and Delete.
type EntityKind string

// Entity kinds.
const (
	KindItem    EntityKind = "item"
	KindRequest EntityKind = "request"
)

// RelationKind names a foreign-key relation for Resolve.
type RelationKind string

// Relation kinds.
const (
	RelationOwner     RelationKind = "owner"
	RelationRequester RelationKind = "requester"
	RelationChat      RelationKind = "chat"
)

// Action advances the selection state machine.
type Action string

// Selection actions.
const (
	ActionContactSeller Action = "contact-seller"
	ActionContact       Action = "contact"
	ActionConfirm       Action = "confirm"
	ActionClose         Action = "close"
	ActionDismiss       Action = "dismiss"
)

// Facade errors.
var (
	ErrUnknownKind     = errors.New("unknown entity kind")
	ErrUnknownRelation = errors.New("unknown relation kind")
	ErrUnknownAction   = errors.New("unknown action")
)

// Catalog fronts the store, filter engine, resolver, validation pipeline,
// and selection state machine for a presentation layer. It is single-
// threaded like the rest of the core.
type Catalog struct {
	store    types.Store
	config   types.Config
	log      *zap.Logger
	notifier types.Notifier
	now      func() time.Time
	sel      Selection
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger installs a logger for operator diagnostics. Defaults to a nop
// logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Catalog) {
		c.log = log
	}
}

// WithNotifier installs the sink that receives success and failure signals.
// Defaults to discarding them.
func WithNotifier(n types.Notifier) Option {
	return func(c *Catalog) {
		c.notifier = n
	}
}

// New creates a Catalog over the given store. The config supplies the price
// ceiling and default image for the validation pipeline.
func New(store types.Store, cfg types.Config, opts ...Option) (*Catalog, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("catalog config: %w", err)
	}
	c := &Catalog{
		store:    store,
		config:   cfg,
		log:      zap.NewNop(),
		notifier: types.NopNotifier{},
		now:      time.Now,
		sel:      idle(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Query returns the ordered, filtered records of the given kind as
// []types.Item or []types.Request.
func (c *Catalog) Query(kind EntityKind, category, query string) (any, error) {
	switch kind {
	case KindItem:
		return FilterItems(c.store.Items(), category, query), nil
	case KindRequest:
		return FilterRequests(c.store.Requests(), category, query), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Mine returns the records of the given kind belonging to the current user.
func (c *Catalog) Mine(kind EntityKind) (any, error) {
	me := c.store.CurrentUser().ID
	switch kind {
	case KindItem:
		return ItemsOwnedBy(c.store.Items(), me), nil
	case KindRequest:
		return RequestsBy(c.store.Requests(), me), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Resolve looks up the related entity for the given relation and record id:
// the owner of an item, the requester of a request, or the chat thread of an
// item. Returns types.ErrNotFound when the record or its relation is
// missing.
func (c *Catalog) Resolve(rel RelationKind, id int) (any, error) {
	switch rel {
	case RelationOwner:
		item, err := c.itemByID(id)
		if err != nil {
			return nil, err
		}
		return c.Owner(item)
	case RelationRequester:
		request, err := c.requestByID(id)
		if err != nil {
			return nil, err
		}
		return c.Requester(request)
	case RelationChat:
		item, err := c.itemByID(id)
		if err != nil {
			return nil, err
		}
		return c.ChatForItem(item)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRelation, rel)
	}
}

// SubmitItem validates a listing draft and writes the normalized record to
// the store. New listings are stamped with the current user as owner; edits
// keep the stored record's verified flag. Validation failures are surfaced
// verbatim to the notification sink and returned.
func (c *Catalog) SubmitItem(d ItemDraft) (types.Item, error) {
	item, err := ValidateItemDraft(d, c.config)
	if err != nil {
		c.notifier.Notify(types.SeverityError, err.Error())
		return types.Item{}, err
	}

	creating := item.ID == 0
	if creating {
		if item.OwnerID == 0 {
			item.OwnerID = c.store.CurrentUser().ID
		}
	} else if existing, err := c.itemByID(item.ID); err == nil {
		item.Verified = existing.Verified
		if item.OwnerID == 0 {
			item.OwnerID = existing.OwnerID
		}
	}

	stored, err := c.store.UpsertItem(item)
	if err != nil {
		return types.Item{}, fmt.Errorf("upsert item: %w", err)
	}
	if creating {
		c.notifier.Notify(types.SeveritySuccess, "Listing added successfully!")
	} else {
		c.notifier.Notify(types.SeveritySuccess, "Listing updated successfully!")
	}
	return stored, nil
}

// SubmitRequest validates a request draft and writes the normalized record
// to the store. New requests are stamped with the current user as requester.
func (c *Catalog) SubmitRequest(d RequestDraft) (types.Request, error) {
	request, err := ValidateRequestDraft(d, c.config)
	if err != nil {
		c.notifier.Notify(types.SeverityError, err.Error())
		return types.Request{}, err
	}

	creating := request.ID == 0
	if creating {
		if request.RequesterID == 0 {
			request.RequesterID = c.store.CurrentUser().ID
		}
		if request.CreatedAt == "" {
			request.CreatedAt = "Just now"
		}
	} else if existing, err := c.requestByID(request.ID); err == nil {
		if request.RequesterID == 0 {
			request.RequesterID = existing.RequesterID
		}
		if request.CreatedAt == "" {
			request.CreatedAt = existing.CreatedAt
		}
	}

	stored, err := c.store.UpsertRequest(request)
	if err != nil {
		return types.Request{}, fmt.Errorf("upsert request: %w", err)
	}
	if creating {
		c.notifier.Notify(types.SeveritySuccess, "Request posted successfully!")
	} else {
		c.notifier.Notify(types.SeveritySuccess, "Request updated successfully!")
	}
	return stored, nil
}

// Delete removes the record of the given kind. Returns types.ErrNotFound for
// an unknown id.
func (c *Catalog) Delete(kind EntityKind, id int) error {
	switch kind {
	case KindItem:
		if err := c.store.DeleteItem(id); err != nil {
			return err
		}
		c.notifier.Notify(types.SeveritySuccess, "Listing deleted successfully!")
	case KindRequest:
		if err := c.store.DeleteRequest(id); err != nil {
			return err
		}
		c.notifier.Notify(types.SeveritySuccess, "Request deleted successfully!")
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return nil
}

// SendMessage appends a message from the current user to the chat with the
// given booking id. The message gets a UUID v7 and a wall-clock label.
func (c *Catalog) SendMessage(bookingID int, text string) (types.Message, error) {
	msg := types.Message{
		ID:        uuid.Must(uuid.NewV7()).String(),
		From:      types.SenderYou,
		Text:      text,
		Timestamp: c.now().Format("3:04 PM"),
	}
	if err := c.store.AppendMessage(bookingID, msg); err != nil {
		return types.Message{}, err
	}
	c.notifier.Notify(types.SeveritySuccess, "Message sent!")
	return msg, nil
}

// Select opens the detail view for the record of the given kind.
func (c *Catalog) Select(kind EntityKind, id int) (Selection, error) {
	switch kind {
	case KindItem:
		return c.SelectItem(id), nil
	case KindRequest:
		return c.SelectRequest(id), nil
	default:
		return c.sel, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Advance applies a user action to the selection state machine.
func (c *Catalog) Advance(action Action) (Selection, error) {
	switch action {
	case ActionContactSeller:
		return c.ContactSeller(), nil
	case ActionContact:
		return c.Contact(), nil
	case ActionConfirm:
		return c.Confirm(), nil
	case ActionClose:
		return c.Close(), nil
	case ActionDismiss:
		return c.Dismiss(), nil
	default:
		return c.sel, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
}

// Chats exposes the chat transcripts for list screens.
func (c *Catalog) Chats() []types.Chat {
	return c.store.Chats()
}

// ChatByBookingID returns the chat with the given booking id.
func (c *Catalog) ChatByBookingID(id int) (types.Chat, error) {
	return c.chatByBookingID(id)
}

// CurrentUser returns the injected current-user identity.
func (c *Catalog) CurrentUser() types.User {
	return c.store.CurrentUser()
}
