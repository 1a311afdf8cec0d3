package lootbox

import "time"

// ============================================================================
// Sessions
// ============================================================================

// DefaultSessionCacheSize bounds how many sessions are kept in memory.
const DefaultSessionCacheSize = 10000

// DefaultSessionTTL is how long an idle session survives.
const DefaultSessionTTL = 2 * time.Hour

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgDrawResolved     = "Lootbox draw resolved"
	LogMsgDrawEmpty        = "Lootbox draw landed on an empty tier"
	LogMsgDropRevealed     = "Drop revealed"
	LogMsgRevealScheduled  = "Reveal scheduled"
	LogMsgRevealFailed     = "Failed to reveal drop"
	LogMsgSessionCreated   = "Lootbox session created"
	LogMsgShuttingDown     = "Shutting down lootbox service"
	LogMsgCancelledReveal  = "Cancelled pending reveal"
	LogMsgInvalidOddsTable = "Probability table is invalid"
)

// Log field keys for structured logging
const (
	LogFieldSession = "session_id"
	LogFieldDraw    = "draw_id"
	LogFieldRarity  = "rarity"
	LogFieldSkin    = "skin"
	LogFieldWeapon  = "weapon"
	LogFieldDelay   = "delay"
	LogFieldError   = "error"
)
