// Selection state machine: tracks which entity is the subject of a detail
// view and the legal transitions between views. This replaces the ad hoc
// per-screen open/close flags of earlier designs with one named machine.
package catalog

import "github.com/nitj-exchange/hub/pkg/types"

// SelectionState names the detail view currently displayed.
type SelectionState string

// Selection states.
const (
	StateIdle           SelectionState = "idle"
	StateViewingItem    SelectionState = "viewing_item"
	StateViewingRequest SelectionState = "viewing_request"
	StateChatting       SelectionState = "chatting"
)

// Selection is the current subject of the detail view. Exactly the fields
// relevant to State are set; the rest are nil.
type Selection struct {
	State       SelectionState
	Item        *types.Item
	Request     *types.Request
	Chat        *types.Chat
	Counterpart *types.User
}

// idle is the empty selection every degraded or closed transition lands on.
func idle() Selection {
	return Selection{State: StateIdle}
}

// Selection returns the machine's current state.
func (c *Catalog) Selection() Selection {
	return c.sel
}

// SelectItem opens the detail view for the item with the given id. Legal
// from Idle only; otherwise a no-op. If the item or its owner cannot be
// resolved the machine stays Idle with nothing to show.
func (c *Catalog) SelectItem(id int) Selection {
	if c.sel.State != StateIdle {
		return c.sel
	}
	item, err := c.itemByID(id)
	if err != nil {
		return c.sel
	}
	owner, err := c.Owner(item)
	if err != nil {
		c.sel = idle()
		return c.sel
	}
	c.sel = Selection{State: StateViewingItem, Item: &item, Counterpart: &owner}
	return c.sel
}

// SelectRequest opens the detail view for the request with the given id.
// Legal from Idle only. Degrades to Idle when the requester does not resolve.
func (c *Catalog) SelectRequest(id int) Selection {
	if c.sel.State != StateIdle {
		return c.sel
	}
	request, err := c.requestByID(id)
	if err != nil {
		return c.sel
	}
	requester, err := c.Requester(request)
	if err != nil {
		c.sel = idle()
		return c.sel
	}
	c.sel = Selection{State: StateViewingRequest, Request: &request, Counterpart: &requester}
	return c.sel
}

// ContactSeller moves from the item detail view into the chat with the
// item's owner. Degrades to Idle when the item has no chat thread or the
// owner does not resolve; no unrelated chat is ever substituted.
func (c *Catalog) ContactSeller() Selection {
	if c.sel.State != StateViewingItem || c.sel.Item == nil {
		return c.sel
	}
	item := *c.sel.Item
	chat, err := c.ChatForItem(item)
	if err != nil {
		c.sel = idle()
		return c.sel
	}
	owner, err := c.Owner(item)
	if err != nil {
		c.sel = idle()
		return c.sel
	}
	c.sel = Selection{State: StateChatting, Chat: &chat, Counterpart: &owner}
	return c.sel
}

// Contact moves from the request detail view into a conversation with the
// requester. Requests have no stored chat thread, so the transcript starts
// empty. Degrades to Idle when the requester does not resolve.
func (c *Catalog) Contact() Selection {
	if c.sel.State != StateViewingRequest || c.sel.Request == nil {
		return c.sel
	}
	requester, err := c.Requester(*c.sel.Request)
	if err != nil {
		c.sel = idle()
		return c.sel
	}
	c.sel = Selection{State: StateChatting, Chat: &types.Chat{}, Counterpart: &requester}
	return c.sel
}

// Confirm completes the action of the current detail view: a rent/buy
// request from an item view, a response offer from a request view. Emits a
// confirmation signal and returns to Idle. A no-op in any other state.
func (c *Catalog) Confirm() Selection {
	switch c.sel.State {
	case StateViewingItem:
		c.notifier.Notify(types.SeveritySuccess, "Request sent successfully!")
	case StateViewingRequest:
		c.notifier.Notify(types.SeveritySuccess, "Response sent! The requester will contact you soon.")
	default:
		return c.sel
	}
	c.sel = idle()
	return c.sel
}

// Close closes the current detail view and returns to Idle.
func (c *Catalog) Close() Selection {
	c.sel = idle()
	return c.sel
}

// Dismiss is the always-legal escape hatch back to Idle.
func (c *Catalog) Dismiss() Selection {
	c.sel = idle()
	return c.sel
}
