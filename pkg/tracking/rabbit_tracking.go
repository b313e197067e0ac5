package tracking

import (
	"log"
	"net/http"

	"github.com/hopecreatives/officialhope/pkg/messaging"
	"github.com/hopecreatives/officialhope/pkg/types"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	trackingPrefix = "shop"
	trackingTopic  = messaging.Topic("tracking")
)

const (
	eventSession = uint16(iota)
	eventSearch
	eventProductView
	eventIntent
)

// RabbitTracking publishes storefront events to a RabbitMQ topic exchange.
type RabbitTracking struct {
	connection *amqp.Connection
}

func NewRabbitTracking(url string) (*RabbitTracking, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	defer ch.Close()
	if err := messaging.DefineTopic(ch, trackingPrefix, trackingTopic); err != nil {
		conn.Close()
		return nil, err
	}
	return &RabbitTracking{connection: conn}, nil
}

func (t *RabbitTracking) Close() error {
	return t.connection.Close()
}

func (t *RabbitTracking) send(data any) error {
	return messaging.Publish(t.connection, trackingPrefix, trackingTopic, data)
}

type BaseEvent struct {
	SessionId string `json:"session_id"`
	Event     uint16 `json:"event"`
}

type SessionEvent struct {
	*BaseEvent
	UserAgent string `json:"user_agent,omitempty"`
	Ip        string `json:"ip,omitempty"`
	Language  string `json:"language,omitempty"`
}

func (t *RabbitTracking) TrackSession(sessionId string, r *http.Request) {
	ip := r.Header.Get("X-Real-Ip")
	if ip == "" {
		ip = r.Header.Get("X-Forwarded-For")
	}
	if ip == "" {
		ip = r.RemoteAddr
	}

	err := t.send(SessionEvent{
		BaseEvent: &BaseEvent{Event: eventSession, SessionId: sessionId},
		UserAgent: r.UserAgent(),
		Ip:        ip,
		Language:  r.Header.Get("Accept-Language"),
	})
	if err != nil {
		log.Println("Error sending session event: ", err)
	}
}

type SearchEvent struct {
	*BaseEvent
	types.FilterSnapshot
	NumberOfResults int    `json:"noi"`
	Referer         string `json:"referer,omitempty"`
}

func (t *RabbitTracking) TrackSearch(sessionId string, filters types.FilterSnapshot, results int, r *http.Request) {
	err := t.send(SearchEvent{
		BaseEvent:       &BaseEvent{Event: eventSearch, SessionId: sessionId},
		FilterSnapshot:  filters,
		NumberOfResults: results,
		Referer:         r.Header.Get("Referer"),
	})
	if err != nil {
		log.Println("Error sending search event: ", err)
	}
}

type ProductEvent struct {
	*BaseEvent
	Slug     string `json:"slug"`
	Action   string `json:"action,omitempty"`
	Quantity int    `json:"qty,omitempty"`
}

func (t *RabbitTracking) TrackProductView(sessionId string, slug string) {
	err := t.send(ProductEvent{
		BaseEvent: &BaseEvent{Event: eventProductView, SessionId: sessionId},
		Slug:      slug,
	})
	if err != nil {
		log.Println("Error sending product view event: ", err)
	}
}

// TrackIntent records a buy or inquiry link click, the closest thing this
// storefront has to a conversion.
func (t *RabbitTracking) TrackIntent(sessionId string, slug string, action string, quantity int) {
	err := t.send(ProductEvent{
		BaseEvent: &BaseEvent{Event: eventIntent, SessionId: sessionId},
		Slug:      slug,
		Action:    action,
		Quantity:  quantity,
	})
	if err != nil {
		log.Println("Error sending intent event: ", err)
	}
}
