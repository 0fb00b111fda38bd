// Package journal provides the persisted journal document and its
// file store with backup-on-overwrite semantics.
package journal

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/oklog/ulid/v2"

	"hyperliquid-journal/internal/errors"
	"hyperliquid-journal/internal/models"
)

// Document is the root persisted object of a journal file.
//
// API-sourced trades and manual trades live in separate ordered
// lists that are only merged transiently for display and export.
// Unknown top-level keys (wallet address, account snapshot, save
// timestamp and whatever future versions add) pass through opaquely.
type Document struct {
	Trades       []models.Trade
	ManualTrades []models.Trade
	Reflections  models.Reflections
	Extra        map[string]json.RawMessage
}

// NewDocument returns an empty journal document.
func NewDocument() *Document {
	return &Document{
		Trades:       []models.Trade{},
		ManualTrades: []models.Trade{},
		Extra:        make(map[string]json.RawMessage),
	}
}

// MarshalJSON flattens the document into a single JSON object with
// the passthrough keys alongside the three core keys. Encoding goes
// through a map so keys come out sorted.
func (d *Document) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(d.Extra)+3)
	for k, v := range d.Extra {
		out[k] = v
	}

	trades := d.Trades
	if trades == nil {
		trades = []models.Trade{}
	}
	manual := d.ManualTrades
	if manual == nil {
		manual = []models.Trade{}
	}

	var err error
	if out["trades"], err = json.Marshal(trades); err != nil {
		return nil, err
	}
	if out["manual_trades"], err = json.Marshal(manual); err != nil {
		return nil, err
	}
	if out["reflections"], err = json.Marshal(d.Reflections); err != nil {
		return nil, err
	}
	return json.Marshal(out)
}

// UnmarshalJSON fills the document from a JSON object, backfilling
// absent core keys with empty defaults and keeping everything else
// as opaque passthrough data.
func (d *Document) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	d.Trades = []models.Trade{}
	d.ManualTrades = []models.Trade{}
	d.Reflections = models.Reflections{}
	d.Extra = make(map[string]json.RawMessage)

	for key, val := range raw {
		switch key {
		case "trades":
			if err := json.Unmarshal(val, &d.Trades); err != nil {
				return errors.Wrap(err, "parsing trades")
			}
		case "manual_trades":
			if err := json.Unmarshal(val, &d.ManualTrades); err != nil {
				return errors.Wrap(err, "parsing manual_trades")
			}
		case "reflections":
			if err := json.Unmarshal(val, &d.Reflections); err != nil {
				return errors.Wrap(err, "parsing reflections")
			}
		default:
			d.Extra[key] = val
		}
	}
	if d.Trades == nil {
		d.Trades = []models.Trade{}
	}
	if d.ManualTrades == nil {
		d.ManualTrades = []models.Trade{}
	}
	return nil
}

// SetExtra stores a passthrough value under key.
func (d *Document) SetExtra(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if d.Extra == nil {
		d.Extra = make(map[string]json.RawMessage)
	}
	d.Extra[key] = data
	return nil
}

// ExtraString reads a passthrough string value, empty when absent.
func (d *Document) ExtraString(key string) string {
	raw, ok := d.Extra[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// AllTrades returns both lists merged, newest entry time first. The
// merge is transient; the two lists are never persisted combined.
func (d *Document) AllTrades() []models.Trade {
	all := make([]models.Trade, 0, len(d.Trades)+len(d.ManualTrades))
	all = append(all, d.Trades...)
	all = append(all, d.ManualTrades...)
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Time > all[j].Time
	})
	return all
}

// FindTrade returns a pointer into whichever list holds the trade,
// or nil when the ID is unknown.
func (d *Document) FindTrade(id string) *models.Trade {
	for i := range d.Trades {
		if d.Trades[i].ID == id {
			return &d.Trades[i]
		}
	}
	for i := range d.ManualTrades {
		if d.ManualTrades[i].ID == id {
			return &d.ManualTrades[i]
		}
	}
	return nil
}

// HasTrade reports whether the ID exists in either list.
func (d *Document) HasTrade(id string) bool {
	return d.FindTrade(id) != nil
}

// NewManualID generates a fresh manual trade identifier, collision
// checked against every existing ID in both lists.
func (d *Document) NewManualID() string {
	for {
		id := "manual-" + strings.ToLower(ulid.Make().String())
		if !d.HasTrade(id) {
			return id
		}
	}
}

// AddManualTrade appends a manually entered trade. A blank ID gets a
// fresh one; a caller-supplied ID must not collide.
func (d *Document) AddManualTrade(t models.Trade) (string, error) {
	if t.ID == "" {
		t.ID = d.NewManualID()
	} else if d.HasTrade(t.ID) {
		return "", errors.Wrapf(errors.ErrDuplicateTradeID, "%s", t.ID)
	}
	t.Type = models.TradeTypeManual
	d.ManualTrades = append(d.ManualTrades, t)
	return t.ID, nil
}

// ReplaceAPITrades swaps the API trade list for freshly fetched
// records, carrying existing tag fields over by ID so tagging work
// survives a refetch.
func (d *Document) ReplaceAPITrades(fetched []models.Trade) {
	prev := make(map[string]models.Trade, len(d.Trades))
	for _, t := range d.Trades {
		prev[t.ID] = t
	}
	next := make([]models.Trade, 0, len(fetched))
	for _, t := range fetched {
		if old, ok := prev[t.ID]; ok {
			for _, c := range models.Categories() {
				t.SetTagField(c, old.TagField(c))
			}
			t.LastEdited = old.LastEdited
		}
		next = append(next, t)
	}
	d.Trades = next
}

// DeleteTrade removes the trade from whichever list contains it and
// reports whether anything was removed. Deleting an absent ID is a
// no-op, not an error.
func (d *Document) DeleteTrade(id string) bool {
	for i := range d.Trades {
		if d.Trades[i].ID == id {
			d.Trades = append(d.Trades[:i], d.Trades[i+1:]...)
			return true
		}
	}
	for i := range d.ManualTrades {
		if d.ManualTrades[i].ID == id {
			d.ManualTrades = append(d.ManualTrades[:i], d.ManualTrades[i+1:]...)
			return true
		}
	}
	return false
}
