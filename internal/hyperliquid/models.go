// Package hyperliquid is a read-only client for the Hyperliquid
// info API: user fills and account state for a wallet address.
package hyperliquid

import (
	"strconv"
	"time"

	"hyperliquid-journal/internal/models"
)

// Fill is one executed trade event as reported by the info API.
// Numeric fields arrive as strings on the wire.
type Fill struct {
	Coin      string `json:"coin"`
	Px        string `json:"px"`
	Sz        string `json:"sz"`
	Side      string `json:"side"` // "B" = buy, "A" = sell
	Time      int64  `json:"time"` // milliseconds
	ClosedPnl string `json:"closedPnl"`
	Fee       string `json:"fee"`
	Oid       int64  `json:"oid"`
	Hash      string `json:"hash"`
	Dir       string `json:"dir"`
}

// ID returns a stable identifier for the fill: the order ID when
// present, otherwise the transaction hash.
func (f Fill) ID() string {
	if f.Oid != 0 {
		return strconv.FormatInt(f.Oid, 10)
	}
	return f.Hash
}

// Trade converts the fill into a journal record with empty tag
// fields.
func (f Fill) Trade() models.Trade {
	side := models.SideShort
	if f.Side == "B" {
		side = models.SideLong
	}
	return models.Trade{
		ID:    f.ID(),
		Coin:  f.Coin,
		Side:  side,
		Size:  parseNum(f.Sz),
		Price: parseNum(f.Px),
		PnL:   parseNum(f.ClosedPnl),
		Fee:   parseNum(f.Fee),
		Time:  time.UnixMilli(f.Time).UTC().Format(models.TimeLayout),
		Type:  models.TradeTypeAPI,
	}
}

// UserState is the account-state snapshot for a wallet.
type UserState struct {
	MarginSummary  MarginSummary   `json:"marginSummary"`
	AssetPositions []AssetPosition `json:"assetPositions"`
}

// MarginSummary carries the account-level margin figures.
type MarginSummary struct {
	AccountValue string `json:"accountValue"`
}

// AccountValue returns the account equity as a number.
func (u *UserState) AccountValue() float64 {
	return parseNum(u.MarginSummary.AccountValue)
}

// AssetPosition wraps one open position.
type AssetPosition struct {
	Position Position `json:"position"`
}

// Position is one open position; Szi is signed size, negative for
// shorts.
type Position struct {
	Coin          string `json:"coin"`
	Szi           string `json:"szi"`
	UnrealizedPnl string `json:"unrealizedPnl"`
}

// Size returns the signed position size.
func (p Position) Size() float64 {
	return parseNum(p.Szi)
}

// Side derives the direction from the sign of the size.
func (p Position) Side() models.Side {
	if p.Size() < 0 {
		return models.SideShort
	}
	return models.SideLong
}

// PnL returns the unrealized profit or loss.
func (p Position) PnL() float64 {
	return parseNum(p.UnrealizedPnl)
}

func parseNum(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
