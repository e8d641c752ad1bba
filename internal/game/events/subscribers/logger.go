package subscribers

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/ChessArena/internal/game/events"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	eventLogger := ls.logger.With().
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp()).
		Logger()

	var logEvent *zerolog.Event
	switch ls.logLevel {
	case zerolog.DebugLevel:
		logEvent = eventLogger.Debug()
	case zerolog.WarnLevel:
		logEvent = eventLogger.Warn()
	case zerolog.ErrorLevel:
		logEvent = eventLogger.Error()
	default:
		logEvent = eventLogger.Info()
	}

	switch e := event.(type) {
	case *events.ArenaCreatedEvent:
		logEvent.
			Int("width", e.Width).
			Int("height", e.Height)

	case *events.UnitRecruitedEvent:
		logEvent.
			Int("unit_id", int(e.UnitID)).
			Int("player_id", e.Metadata.PlayerID).
			Str("kind", e.Kind.String())
		if e.Square != nil {
			logEvent.Stringer("square", e.Square)
		}

	case *events.UnitMovedEvent:
		logEvent.
			Int("unit_id", int(e.UnitID)).
			Int("player_id", e.Metadata.PlayerID).
			Int("sequence", e.Metadata.Sequence).
			Str("kind", e.Kind.String()).
			Stringer("to", e.To)
		if e.From != nil {
			logEvent.Stringer("from", e.From)
		}

	case *events.UnitCapturedEvent:
		logEvent.
			Int("unit_id", int(e.UnitID)).
			Int("owner", int(e.Owner)).
			Str("kind", e.Kind.String()).
			Int("captured_by", int(e.CapturedBy)).
			Int("sequence", e.Metadata.Sequence).
			Stringer("square", e.Square)

	case *events.PawnPromotedEvent:
		logEvent.
			Int("unit_id", int(e.UnitID)).
			Int("player_id", e.Metadata.PlayerID).
			Stringer("square", e.Square)
	}

	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Arena event")
}
