package messaging

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitConfig holds configuration for the RabbitMQ client.
type RabbitConfig struct {
	URL               string
	ReconnectDelay    time.Duration
	MaxReconnectDelay time.Duration
	HeartbeatTimeout  time.Duration
}

// DefaultRabbitConfig returns a default configuration.
func DefaultRabbitConfig(url string) RabbitConfig {
	return RabbitConfig{
		URL:               url,
		ReconnectDelay:    1 * time.Second,
		MaxReconnectDelay: 60 * time.Second,
		HeartbeatTimeout:  10 * time.Second,
	}
}

// RabbitMQClient wraps a connection and channel with automatic reconnect.
type RabbitMQClient struct {
	config RabbitConfig
	conn   *amqp.Connection
	ch     *amqp.Channel
	mu     sync.RWMutex

	notifyConnClose chan *amqp.Error
	isClosed        bool
}

func NewRabbitMQClient(config RabbitConfig) (*RabbitMQClient, error) {
	if config.ReconnectDelay == 0 {
		config.ReconnectDelay = time.Second
	}
	if config.MaxReconnectDelay == 0 {
		config.MaxReconnectDelay = 60 * time.Second
	}
	if config.HeartbeatTimeout == 0 {
		config.HeartbeatTimeout = 10 * time.Second
	}

	client := &RabbitMQClient{config: config}
	if err := client.connect(); err != nil {
		return nil, err
	}

	go client.handleReconnect()
	return client, nil
}

func (r *RabbitMQClient) connect() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	log.Printf("Connecting to RabbitMQ at %s", maskURL(r.config.URL))

	conn, err := amqp.DialConfig(r.config.URL, amqp.Config{
		Heartbeat: r.config.HeartbeatTimeout,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to open channel: %w", err)
	}

	r.conn = conn
	r.ch = ch
	r.notifyConnClose = make(chan *amqp.Error, 1)
	conn.NotifyClose(r.notifyConnClose)
	return nil
}

func (r *RabbitMQClient) handleReconnect() {
	for {
		amqpErr, ok := <-r.notifyConnClose
		if !ok {
			return
		}

		r.mu.RLock()
		closed := r.isClosed
		r.mu.RUnlock()
		if closed {
			return
		}

		log.Printf("RabbitMQ connection lost: %v, reconnecting", amqpErr)

		delay := r.config.ReconnectDelay
		for {
			time.Sleep(delay)
			if err := r.connect(); err == nil {
				log.Println("RabbitMQ reconnected")
				break
			}
			delay *= 2
			if delay > r.config.MaxReconnectDelay {
				delay = r.config.MaxReconnectDelay
			}
		}
	}
}

// DeclareQueue declares a durable queue with the given name.
func (r *RabbitMQClient) DeclareQueue(name string) (amqp.Queue, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.ch.QueueDeclare(name, true, false, false, false, nil)
}

// Publish sends a persistent message to the given queue.
func (r *RabbitMQClient) Publish(ctx context.Context, queue string, body []byte) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.ch.PublishWithContext(ctx, "", queue, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
}

// Consume delivers messages from the queue to the handler. A handler error
// nacks the message without requeue; success acks it.
func (r *RabbitMQClient) Consume(queue string, handler func(body []byte) error) error {
	r.mu.RLock()
	ch := r.ch
	r.mu.RUnlock()

	msgs, err := ch.Consume(queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to start consumer: %w", err)
	}

	go func() {
		for d := range msgs {
			if err := handler(d.Body); err != nil {
				log.Printf("Failed to handle message from %s: %v", queue, err)
				d.Nack(false, false)
				continue
			}
			d.Ack(false)
		}
	}()
	return nil
}

func (r *RabbitMQClient) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.isClosed = true
	if r.ch != nil {
		r.ch.Close()
	}
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}

// maskURL hides credentials in logged connection strings.
func maskURL(url string) string {
	at := strings.LastIndex(url, "@")
	scheme := strings.Index(url, "://")
	if at == -1 || scheme == -1 {
		return url
	}
	return url[:scheme+3] + "***" + url[at:]
}
